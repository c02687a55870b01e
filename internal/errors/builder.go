package errors

import (
	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorBuilder provides a fluent interface for building errors
// but does not implement the error interface. This is intentional.
// Mark must be the last call in the chain when using the builder.
type ErrorBuilder struct {
	msg    string
	err    error
	status int
	body   string
}

// NewError starts a new error builder chain
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{msg: msg}
}

// WithError starts a builder chain with an existing error as the cause.
// The cause's text becomes the message.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{msg: err.Error(), err: errors.WithStack(err)}
}

// WithCause attaches an underlying error
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	if err != nil {
		b.err = errors.WithStack(err)
	}
	return b
}

// WithMessage adds context to the cause
// this is for the internal error messages
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.carrier(), msg)
	return b
}

// WithHint adds a caller facing hint to the cause
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.carrier(), hint)
	return b
}

// WithHintf is a helper for WithHint that allows for formatting
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.carrier(), format, args...)
	return b
}

// WithResponse records the HTTP status and raw body the error was derived from
func (b *ErrorBuilder) WithResponse(status int, body string) *ErrorBuilder {
	b.status = status
	b.body = body
	return b
}

// WithReportableDetails adds structured details
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	marshaled, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.carrier(), "__json__:%s", errors.Safe(string(marshaled)))
	return b
}

// Mark gives the error the kind of the reference sentinel
// should be the last call in the chain
func (b *ErrorBuilder) Mark(reference *InternalError) error {
	return &InternalError{
		Kind:       reference.Kind,
		Message:    b.msg,
		StatusCode: b.status,
		Body:       b.body,
		Err:        b.err,
	}
}

// carrier returns the cause, creating one from the message when there is none
// so hints and details have something to attach to.
func (b *ErrorBuilder) carrier() error {
	if b.err == nil {
		return errors.New(b.msg)
	}
	return b.err
}
