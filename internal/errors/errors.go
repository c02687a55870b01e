package errors

import (
	"github.com/cockroachdb/errors"
)

// Kind discriminates the closed set of client error variants
type Kind string

const (
	// KindArgument is raised synchronously for invalid construction input or credentials
	KindArgument Kind = "argument_error"
	// KindFetch is raised when the transport fails before a response is received
	KindFetch Kind = "fetch_error"
	// KindAuthorization is raised when the remote service rejects the credential
	KindAuthorization Kind = "authorization_error"
	// KindResponse is raised when the remote service responds with anything but a usable success
	KindResponse Kind = "response_error"
)

// Sentinels used with Mark and errors.Is. The messages are never shown to callers,
// the builder always supplies its own.
var (
	ErrArgument      = new(KindArgument, "flexpay: argument error")
	ErrFetch         = new(KindFetch, "flexpay: fetch error")
	ErrAuthorization = new(KindAuthorization, "flexpay: authorization error")
	ErrResponse      = new(KindResponse, "flexpay: response error")
)

const (
	MsgAuthorizationFailed    = "Authorization Failed"
	MsgResourceNotFound       = "Resource not found"
	MsgInvalidResponseContent = "Invalid response content"
)

// InternalError is the single error type returned by the client
type InternalError struct {
	Kind       Kind   // Discriminator
	Message    string // Human-readable error message
	StatusCode int    // HTTP status, zero when no response was received
	Body       string // Raw response body, if any
	Err        error  // Underlying cause
}

func (e *InternalError) Error() string {
	return e.Message
}

func (e *InternalError) DisplayError() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches any error of the same kind
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

func new(kind Kind, message string) *InternalError {
	return &InternalError{
		Kind:    kind,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// KindOf returns the kind of a client error or an empty kind for foreign errors
func KindOf(err error) Kind {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

// IsArgument checks if an error is an argument error
func IsArgument(err error) bool {
	return errors.Is(err, ErrArgument)
}

// IsFetch checks if an error is a transport error
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsAuthorization checks if an error is an authorization error
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrAuthorization)
}

// IsResponse checks if an error is a response error
func IsResponse(err error) bool {
	return errors.Is(err, ErrResponse)
}

// Hints returns every hint attached to the cause chain
func Hints(err error) []string {
	return errors.GetAllHints(err)
}
