package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eeshamoona/thinklock/internal/store"
)

func (a *API) listThinkSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.store.ListThinkSessions()
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"thinksessions": sessions})
}

func (a *API) listThinkSessionsByFolder(w http.ResponseWriter, r *http.Request) {
	folderID, ok := a.pathID(w, r, "thinkfolder_id", "ThinkFolder")
	if !ok {
		return
	}
	sessions, err := a.store.ListThinkSessionsByThinkFolder(folderID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"thinksessions": sessions})
}

func (a *API) listThinkSessionsByDate(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.store.ListThinkSessionsByDate(r.PathValue("date"))
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"thinksessions": sessions})
}

func (a *API) heatmap(w http.ResponseWriter, r *http.Request) {
	folderID, ok := a.pathID(w, r, "thinkfolder_id", "ThinkFolder")
	if !ok {
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		a.badRequest(w, "invalid year %q", r.PathValue("year"))
		return
	}
	cells, err := a.store.Heatmap(folderID, year)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"heatmapData": cells,
		"max_hours":   store.MaxHours(cells),
	})
}

func (a *API) getThinkSession(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ThinkSession")
	if !ok {
		return
	}
	session, err := a.store.GetThinkSession(id)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"thinksession": session})
}

func (a *API) createThinkSession(w http.ResponseWriter, r *http.Request) {
	var p store.CreateThinkSessionParams
	if !a.decodeBody(w, r, &p) {
		return
	}
	if !a.checkClocks(w, &p.StartTime, &p.EndTime) {
		return
	}
	id, err := a.store.CreateThinkSession(p)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]any{"thinksession_id": id})
}

// thinkSessionUpdate is the wire form of a session patch. The dashboard
// grid posts layout either as an array or as a JSON-encoded string.
type thinkSessionUpdate struct {
	ThinkFolderID *int64          `json:"thinkfolder_id"`
	Title         *string         `json:"title"`
	Location      *string         `json:"location"`
	Date          *string         `json:"date"`
	StartTime     *string         `json:"start_time"`
	EndTime       *string         `json:"end_time"`
	Layout        json.RawMessage `json:"layout"`
}

func (a *API) updateThinkSession(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ThinkSession")
	if !ok {
		return
	}
	var body thinkSessionUpdate
	if !a.decodeBody(w, r, &body) {
		return
	}

	p := store.ThinkSessionPatch{
		ThinkFolderID: body.ThinkFolderID,
		Title:         body.Title,
		Location:      body.Location,
		Date:          body.Date,
		StartTime:     body.StartTime,
		EndTime:       body.EndTime,
	}
	if !a.checkClocks(w, p.StartTime, p.EndTime) {
		return
	}
	if raw := bytes.TrimSpace(body.Layout); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		layout, err := store.ParseLayout(raw)
		if err != nil {
			a.badRequest(w, "invalid layout: %v", err)
			return
		}
		p.Layout = &layout
	}

	if err := a.store.UpdateThinkSession(id, p); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"response": fmt.Sprintf("ThinkSession with id %d updated successfully", id),
	})
}

// checkClocks answers 400 when a supplied start or end time is not a time
// of day.
func (a *API) checkClocks(w http.ResponseWriter, times ...*string) bool {
	for _, t := range times {
		if t == nil {
			continue
		}
		if _, err := store.NormalizeClock(*t); err != nil {
			a.badRequest(w, "invalid time: %v", err)
			return false
		}
	}
	return true
}
