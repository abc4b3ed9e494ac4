package api

import (
	"fmt"
	"net/http"

	"github.com/eeshamoona/thinklock/internal/store"
)

func (a *API) listThinkFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := a.store.ListThinkFolders()
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"thinkfolders": folders})
}

func (a *API) getThinkFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ThinkFolder")
	if !ok {
		return
	}
	folder, err := a.store.GetThinkFolder(id)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"thinkfolder": folder})
}

func (a *API) createThinkFolder(w http.ResponseWriter, r *http.Request) {
	var p store.CreateThinkFolderParams
	if !a.decodeBody(w, r, &p) {
		return
	}
	id, err := a.store.CreateThinkFolder(p)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]any{"thinkfolder": id})
}

func (a *API) updateThinkFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id", "ThinkFolder")
	if !ok {
		return
	}
	var p store.ThinkFolderPatch
	if !a.decodeBody(w, r, &p) {
		return
	}
	if err := a.store.UpdateThinkFolder(id, p); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"response": fmt.Sprintf("ThinkFolder with id %d updated successfully", id),
	})
}
