// Package api exposes the ThinkLock store as a JSON REST API.
//
// Handlers are thin: parse path and body, call one repository method, and
// translate the result. Repository errors carry their own HTTP status.
package api

import (
	"log"
	"net/http"
	"os"

	"github.com/eeshamoona/thinklock/internal/store"
)

// Options configures the HTTP layer.
type Options struct {
	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty disables CORS.
	CORSOrigin string
	// Logger receives request and panic logs. Defaults to stderr.
	Logger *log.Logger
}

// API serves the REST routes over a store.
type API struct {
	store *store.Store
	opts  Options
	log   *log.Logger
}

// New creates an API backed by s.
func New(s *store.Store, opts Options) *API {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "thinklock: ", log.LstdFlags)
	}
	return &API{store: s, opts: opts, log: logger}
}

// Handler returns the routed handler wrapped in middleware.
// Order, outermost first: request id + logging, CORS, panic recovery.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	a.routes(mux)

	var h http.Handler = mux
	h = a.recoverer(h)
	h = a.cors(h)
	h = a.requestLogger(h)
	return h
}

func (a *API) routes(mux *http.ServeMux) {
	// ─── Think folders ───
	mux.HandleFunc("GET /thinkfolders/all", a.listThinkFolders)
	mux.HandleFunc("GET /thinkfolders/{id}", a.getThinkFolder)
	mux.HandleFunc("POST /thinkfolders/create", a.createThinkFolder)
	mux.HandleFunc("PUT /thinkfolders/update/{id}", a.updateThinkFolder)

	// ─── Think sessions ───
	mux.HandleFunc("GET /thinksessions/all", a.listThinkSessions)
	mux.HandleFunc("GET /thinksessions/all/{thinkfolder_id}", a.listThinkSessionsByFolder)
	mux.HandleFunc("GET /thinksessions/all/date/{date}", a.listThinkSessionsByDate)
	mux.HandleFunc("GET /thinksessions/heatmap/{thinkfolder_id}/{year}", a.heatmap)
	mux.HandleFunc("GET /thinksessions/{id}", a.getThinkSession)
	mux.HandleFunc("POST /thinksessions/create", a.createThinkSession)
	mux.HandleFunc("PUT /thinksessions/update/{id}", a.updateThinkSession)

	// ─── Action items ───
	mux.HandleFunc("GET /actionitems/all", a.listActionItems)
	mux.HandleFunc("GET /actionitems/{id}", a.getActionItem)
	mux.HandleFunc("GET /actionitems/thinkfolder/{thinkfolder_id}", a.listActionItemsByFolder)
	mux.HandleFunc("GET /actionitems/thinksession/{thinksession_id}", a.listActionItemsBySession)
	mux.HandleFunc("POST /actionitems/create", a.createActionItem)
	mux.HandleFunc("PUT /actionitems/update/{id}", a.updateActionItem)
	mux.HandleFunc("PUT /actionitems/toggle/{id}", a.toggleActionItem)

	// ─── Flashcards ───
	mux.HandleFunc("GET /flashcards/{thinksession_id}", a.listFlashcards)
	mux.HandleFunc("POST /flashcards/{thinksession_id}", a.createFlashcard)
	mux.HandleFunc("PUT /flashcards/{flashcard_id}", a.updateFlashcard)
	mux.HandleFunc("PUT /flashcards/{flashcard_id}/status", a.setFlashcardStatus)
	mux.HandleFunc("DELETE /flashcards/{flashcard_id}", a.deleteFlashcard)

	// ─── Notes ───
	mux.HandleFunc("GET /notes/{thinksession_id}", a.getNotes)
	mux.HandleFunc("POST /notes/{thinksession_id}", a.createNotes)
	mux.HandleFunc("PUT /notes/{thinksession_id}", a.updateNotes)

	// ─── Study events ───
	mux.HandleFunc("GET /studyevents/{thinksession_id}", a.listStudyEvents)
	mux.HandleFunc("POST /studyevents/{thinksession_id}", a.appendStudyEvent)
}
