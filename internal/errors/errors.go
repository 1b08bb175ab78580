package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicatePhone is returned when a phone number is already registered.
	ErrDuplicatePhone = errors.New("phone number already registered")
	// ErrInvalidCredentials is returned when phone or PIN does not match.
	ErrInvalidCredentials = errors.New("invalid phone or pin")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrConsultationNotFound is returned when a consultation is not found.
	ErrConsultationNotFound = errors.New("consultation not found")
	// ErrMissingField is returned when a required field or file is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrStorage is returned when persisting an uploaded file fails.
	ErrStorage = errors.New("storage failure")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The status codes follow
// the original service: duplicate registrations surface as 500, credential
// mismatches as 401, absent fields or files as 400.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicatePhone):
		return NewHTTPError(http.StatusInternalServerError, "Efa misy mampiasa io laharana io")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Diso ny laharana na ny teny miafina")
	case errors.Is(err, ErrMissingField):
		return NewHTTPError(http.StatusBadRequest, "Fichier manquant")
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrConsultationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
