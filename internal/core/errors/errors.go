package errors

import (
	"errors"
	"fmt"
)

// Domain errors - these represent failures the orchestration layer must
// distinguish when talking to the platform backend.
var (
	// Session & authentication
	ErrSessionExpired = errors.New("session expired")
	ErrLoginRequired  = errors.New("login required")

	// Lookup
	ErrNotFound = errors.New("resource not found")

	// Citizen resolution
	ErrCitizenResolutionFailed = errors.New("citizen resolution failed")

	// Submission lifecycle
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// Local validation (pre-submission, never reaches the network)
	ErrRatingUnset         = errors.New("rating has not been selected")
	ErrNameRequired        = errors.New("name is required")
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrRatingOutOfRange    = errors.New("rating must be between 1 and 5")
	ErrTrackingNumberEmpty = errors.New("tracking number is required")

	// Report generation (admin-gated endpoint)
	ErrReportForbidden = errors.New("report generation requires admin access")

	// Chart lifecycle
	ErrSurfaceOccupied = errors.New("draw surface already hosts a live widget")
)

// HTTPError is returned by the gateway for any non-2xx response that is not
// a session expiry. Body carries the raw response payload for diagnostics
// only; it is never rendered to the user.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// NewHTTPError creates an HTTPError for the given status and raw body.
func NewHTTPError(status int, body string) *HTTPError {
	return &HTTPError{Status: status, Body: body}
}

// TransportError wraps network-level failures and malformed response
// payloads. The wrapped error is operator detail, not user-facing.
type TransportError struct {
	Op  string // "GET /analytics/dashboard" etc.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a transport-level failure for the given operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// ValidationError is a local, pre-submission failure. It never reaches the
// network layer and is rendered verbatim to the user.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError with a user-facing message.
func NewValidationError(err error, message string) *ValidationError {
	return &ValidationError{Err: err, Message: message}
}

// IsNotFound reports whether err is a not-found signal, either the sentinel
// or a raw 404 from the backend.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == 404
}

// IsValidation reports whether err is a local pre-submission validation
// failure, as opposed to a terminal submission error.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
