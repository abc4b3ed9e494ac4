package api

import (
	"fmt"
	"net/http"

	"github.com/eeshamoona/thinklock/internal/store"
)

func (a *API) listActionItems(w http.ResponseWriter, r *http.Request) {
	items, err := a.store.ListActionItems()
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"actionitems": items})
}

func (a *API) getActionItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ActionItem")
	if !ok {
		return
	}
	item, err := a.store.GetActionItem(id)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"actionitem": item})
}

func (a *API) listActionItemsByFolder(w http.ResponseWriter, r *http.Request) {
	folderID, ok := a.pathID(w, r, "thinkfolder_id", "ThinkFolder")
	if !ok {
		return
	}
	items, err := a.store.ListActionItemsByThinkFolder(folderID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"actionitems": items})
}

func (a *API) listActionItemsBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	items, err := a.store.ListActionItemsByThinkSession(sessionID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"actionitems": items})
}

func (a *API) createActionItem(w http.ResponseWriter, r *http.Request) {
	var p store.CreateActionItemParams
	if !a.decodeBody(w, r, &p) {
		return
	}
	id, err := a.store.CreateActionItem(p)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]any{"actionitem_id": id})
}

func (a *API) updateActionItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ActionItem")
	if !ok {
		return
	}
	var p store.ActionItemPatch
	if !a.decodeBody(w, r, &p) {
		return
	}
	if err := a.store.UpdateActionItem(id, p); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"response": fmt.Sprintf("ActionItem with id %d updated successfully", id),
	})
}

func (a *API) toggleActionItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ActionItem")
	if !ok {
		return
	}
	completed, err := a.store.ToggleActionItem(id)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"response":  fmt.Sprintf("ActionItem with id %d toggled successfully", id),
		"completed": completed,
	})
}
