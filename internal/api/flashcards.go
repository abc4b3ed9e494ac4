package api

import (
	"net/http"

	"github.com/eeshamoona/thinklock/internal/store"
)

func (a *API) listFlashcards(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	cards, err := a.store.ListFlashcards(sessionID)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"flashcards": cards})
}

func (a *API) createFlashcard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := a.pathID(w, r, "thinksession_id", "ThinkSession")
	if !ok {
		return
	}
	var c store.FlashcardContent
	if !a.decodeBody(w, r, &c) {
		return
	}
	id, err := a.store.CreateFlashcard(sessionID, c)
	if err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]any{
		"message":      store.FlashcardMessage("created", id),
		"flashcard_id": id,
	})
}

func (a *API) updateFlashcard(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "flashcard_id", "Flashcard")
	if !ok {
		return
	}
	var c store.FlashcardContent
	if !a.decodeBody(w, r, &c) {
		return
	}
	if err := a.store.UpdateFlashcard(id, c); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"message": store.FlashcardMessage("updated", id)})
}

func (a *API) setFlashcardStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "flashcard_id", "Flashcard")
	if !ok {
		return
	}
	var body struct {
		Status store.FlashcardStatus `json:"status"`
	}
	if !a.decodeBody(w, r, &body) {
		return
	}
	if !body.Status.Valid() {
		a.badRequest(w, "status must be one of new, review, learned")
		return
	}
	if err := a.store.SetFlashcardStatus(id, body.Status); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"message": store.FlashcardMessage("status updated", id)})
}

func (a *API) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "flashcard_id", "Flashcard")
	if !ok {
		return
	}
	if err := a.store.DeleteFlashcard(id); err != nil {
		a.writeStoreError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"message": store.FlashcardMessage("deleted", id)})
}
