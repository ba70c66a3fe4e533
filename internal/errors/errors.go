package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAdNotFound is returned when an ad is not found.
	ErrAdNotFound = errors.New("Ad not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrNotOwner is returned when a caller tries to remove an ad it does not own.
	ErrNotOwner = errors.New("You can only remove your ad")
	// ErrAlreadyFavourite is returned when an ad is already on the favourites list.
	ErrAlreadyFavourite = errors.New("Ad is already in favourites")
	// ErrNotFavourite is returned when an ad is not on the favourites list.
	ErrNotFavourite = errors.New("Ad is not in favourites")
)

// HTTPError is the single error shape crossing the operation boundary.
// Kind is carried by Status/Code rather than a type hierarchy; Errors holds
// per-field validation messages when the failure is a validation one.
type HTTPError struct {
	Status  int               `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewValidation builds a 400 error carrying a field→message map.
func NewValidation(message string, fields map[string]string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
		Errors:  fields,
	}
}

// NewBadRequest builds a 400 error without field details.
func NewBadRequest(message string) *HTTPError {
	return NewValidation(message, nil)
}

// NewUnauthorized builds a 401 error.
func NewUnauthorized(message string) *HTTPError {
	if message == "" {
		message = "Unauthorized"
	}
	return &HTTPError{
		Status:  http.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewNotFound builds a 404 error.
func NewNotFound(message string) *HTTPError {
	if message == "" {
		message = "Not found"
	}
	return &HTTPError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: message,
	}
}

// NewApplication builds the generic 500 error. Collaborator failures are
// never detailed to the caller; the handler logs them server-side.
func NewApplication() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a generic application error.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case errors.Is(err, ErrAdNotFound), errors.Is(err, ErrUserNotFound):
		return NewNotFound(err.Error())
	case errors.Is(err, ErrNotOwner):
		return NewUnauthorized(err.Error())
	case errors.Is(err, ErrAlreadyFavourite), errors.Is(err, ErrNotFavourite):
		return NewBadRequest(err.Error())
	default:
		return NewApplication()
	}
}
