package store

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed repository operation.
type Kind int

const (
	// KindFailure covers driver errors and writes that generated nothing.
	KindFailure Kind = iota + 1
	// KindNotFound means a referenced entity id does not exist.
	KindNotFound
)

// Sentinels for errors.Is against a *Error.
var (
	ErrNotFound = errors.New("not found")
	ErrFailure  = errors.New("operation failed")
)

// Error is the failure half of every repository result.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrNotFound and ErrFailure by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrFailure:
		return e.Kind == KindFailure
	}
	return false
}

// Status is the HTTP status code carried by the error.
func (e *Error) Status() int {
	if e.Kind == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// NewNotFound builds the not-found error for entity with the given id.
// id is formatted with %v so callers may pass a non-numeric marker.
func NewNotFound(entity string, id any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with id %v not found", entity, id),
	}
}

// failure wraps a driver error at the repository boundary.
func failure(op string, err error) *Error {
	return &Error{
		Kind:    KindFailure,
		Message: fmt.Sprintf("%s: %v", op, err),
		Err:     err,
	}
}

// failuref reports a write that completed without effect.
func failuref(format string, args ...any) *Error {
	return &Error{Kind: KindFailure, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the *Error from err. Errors that did not come from this
// package are reported as failures.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindFailure, Message: err.Error(), Err: err}
}
