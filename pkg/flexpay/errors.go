package flexpay

import (
	ierr "github.com/flexpay/flexpay-go/internal/errors"
)

// Error is the only error type returned by the client. Use errors.As to inspect
// the status code and raw body of a failed call.
type Error = ierr.InternalError

// ErrorKind discriminates the error variants
type ErrorKind = ierr.Kind

const (
	KindArgument      = ierr.KindArgument
	KindFetch         = ierr.KindFetch
	KindAuthorization = ierr.KindAuthorization
	KindResponse      = ierr.KindResponse
)

// Sentinels for errors.Is. Matching is by kind only.
var (
	ErrArgument      = ierr.ErrArgument
	ErrFetch         = ierr.ErrFetch
	ErrAuthorization = ierr.ErrAuthorization
	ErrResponse      = ierr.ErrResponse
)

// IsArgumentError reports invalid configuration or credentials
func IsArgumentError(err error) bool {
	return ierr.IsArgument(err)
}

// IsFetchError reports a transport failure where no response was received
func IsFetchError(err error) bool {
	return ierr.IsFetch(err)
}

// IsAuthorizationError reports a rejected credential
func IsAuthorizationError(err error) bool {
	return ierr.IsAuthorization(err)
}

// IsResponseError reports an unusable response
func IsResponseError(err error) bool {
	return ierr.IsResponse(err)
}

// KindOf returns the kind of err, or "" when err did not come from this package
func KindOf(err error) ErrorKind {
	return ierr.KindOf(err)
}
