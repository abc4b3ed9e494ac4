package api

import (
	"net/http"

	"github.com/eeshamoona/thinklock/internal/store"
)

func (a *API) listStudyEvents(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	events, err := a.store.ListStudyEvents(sessionID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"studyEvents": events})
}

func (a *API) appendStudyEvent(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	var p store.AppendStudyEventParams
	if !a.decodeBody(w, r, &p) {
		return
	}
	event, err := a.store.AppendStudyEvent(sessionID, p)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, event)
}
