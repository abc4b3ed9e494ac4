package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/eeshamoona/thinklock/internal/store"
)

// maxBodyBytes caps request bodies; notes are the largest payload.
const maxBodyBytes = 4 << 20

type errorBody struct {
	Error string `json:"error"`
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Printf("WARNING: encode response: %v", err)
	}
}

// writeStoreError maps a repository error to its status and {error} body.
func (a *API) writeStoreError(w http.ResponseWriter, err error) {
	e := store.AsError(err)
	if e.Kind == store.KindFailure {
		a.log.Printf("ERROR: %s", e.Message)
	}
	a.writeJSON(w, e.Status(), errorBody{Error: e.Message})
}

func (a *API) badRequest(w http.ResponseWriter, format string, args ...any) {
	a.writeJSON(w, http.StatusBadRequest, errorBody{Error: fmt.Sprintf(format, args...)})
}

// decodeBody reads a JSON object into v. It reports false after writing a
// 400 response when the body is missing or malformed.
func (a *API) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			a.badRequest(w, "request body is empty")
			return false
		}
		a.badRequest(w, "invalid JSON body: %v", err)
		return false
	}
	return true
}

// pathID parses an integer path wildcard. A non-numeric value is answered
// the way a lookup of NaN would be: a 404 naming the entity.
func (a *API) pathID(w http.ResponseWriter, r *http.Request, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		a.writeStoreError(w, store.NewNotFound(entity, "NaN"))
		return 0, false
	}
	return id, true
}
