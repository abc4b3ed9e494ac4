package api

import (
	"fmt"
	"net/http"
)

func (a *API) getNotes(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	content, err := a.store.GetNotes(sessionID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"notes": content})
}

func (a *API) createNotes(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	created, err := a.store.CreateNotes(sessionID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	status := http.StatusCreated
	if created.Existed {
		status = http.StatusOK
	}
	a.writeJSON(w, status, map[string]any{
		"message":  created.Message,
		"notes_id": created.ID,
	})
}

func (a *API) updateNotes(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	var body struct {
		Content *string `json:"content"`
	}
	if !a.decodeBody(w, r, &body) {
		return
	}
	if body.Content == nil {
		a.badRequest(w, "content is required")
		return
	}
	if err := a.store.UpdateNotes(sessionID, *body.Content); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Notes for ThinkSession with id %d updated successfully", sessionID),
	})
}
