package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBody is returned when a request body is not a JSON object.
	ErrInvalidBody = errors.New("Invalid JSON body")
	// ErrMissingField is wrapped by MissingFieldError.
	ErrMissingField = errors.New("missing required field")
	// ErrDBConnect is returned when the database cannot be reached.
	ErrDBConnect = errors.New("DB connect error")
	// ErrInsertFailed is returned when a booking insert fails.
	ErrInsertFailed = errors.New("Insert failed")
	// ErrCredentialsRequired is returned when phone or password is absent.
	ErrCredentialsRequired = errors.New("Phone number and password are required")
	// ErrPhoneEmpty is returned when the phone is blank after trimming.
	ErrPhoneEmpty = errors.New("Phone number cannot be empty")
	// ErrInvalidCredentials covers both an unknown phone and a wrong password.
	ErrInvalidCredentials = errors.New("Invalid phone number or password")
	// ErrAccountInactive is returned when the user's active flag is not 1.
	ErrAccountInactive = errors.New("Your account is inactive. Please contact administrator.")
	// ErrMethodNotAllowed is returned for non-POST login requests.
	ErrMethodNotAllowed = errors.New("Method not allowed")
	// ErrDatabase is returned when a lookup fails for reasons other than no rows.
	ErrDatabase = errors.New("Database error")
)

// MissingFieldError names the first required field that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required: " + e.Field
}

// Unwrap lets errors.Is match ErrMissingField.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, detail string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
	}
}

// ToResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToResponse() Response {
	return Response{
		Success: false,
		Message: e.Message,
		Error:   e.Detail,
	}
}

// Wrap attaches an infrastructure cause to a sentinel so that the sentinel
// picks the status and message while the cause is reported as detail.
func Wrap(sentinel, cause error) error {
	return &wrapped{sentinel: sentinel, cause: cause}
}

type wrapped struct {
	sentinel error
	cause    error
}

func (w *wrapped) Error() string {
	return fmt.Sprintf("%s: %v", w.sentinel, w.cause)
}

func (w *wrapped) Unwrap() []error {
	return []error{w.sentinel, w.cause}
}

// Detail returns the message of the underlying cause of a Wrap error.
func Detail(err error) string {
	var w *wrapped
	if errors.As(err, &w) && w.cause != nil {
		return w.cause.Error()
	}
	return ""
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var missing *MissingFieldError
	switch {
	case errors.As(err, &missing):
		return NewHTTPError(http.StatusUnprocessableEntity, missing.Error(), "")
	case errors.Is(err, ErrInvalidBody):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidBody.Error(), "")
	case errors.Is(err, ErrCredentialsRequired):
		return NewHTTPError(http.StatusBadRequest, ErrCredentialsRequired.Error(), "")
	case errors.Is(err, ErrPhoneEmpty):
		return NewHTTPError(http.StatusBadRequest, ErrPhoneEmpty.Error(), "")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "")
	case errors.Is(err, ErrAccountInactive):
		return NewHTTPError(http.StatusForbidden, ErrAccountInactive.Error(), "")
	case errors.Is(err, ErrMethodNotAllowed):
		return NewHTTPError(http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error(), "")
	case errors.Is(err, ErrDBConnect):
		return NewHTTPError(http.StatusInternalServerError, ErrDBConnect.Error(), Detail(err))
	case errors.Is(err, ErrInsertFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrInsertFailed.Error(), Detail(err))
	case errors.Is(err, ErrDatabase):
		return NewHTTPError(http.StatusInternalServerError, ErrDatabase.Error()+": "+Detail(err), "")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "")
	}
}
