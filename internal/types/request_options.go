package types

import "github.com/samber/lo"

// APIVersion is prepended to every enveloped resource path
const APIVersion = "/v1"

// RequestOptions describes how a call is addressed and how its response is unwrapped
type RequestOptions struct {
	// PrefixAPIVersion prepends APIVersion to the path
	PrefixAPIVersion bool
	// EntityContainer names the top level property (or list element property) holding the payload
	EntityContainer string
	// ListContainer names the top level array holding a page of items
	ListContainer string
	// TransactionResponse is false for endpoints that do not use the response envelope
	TransactionResponse bool
	// Headers are extra per call request headers
	Headers map[string]string
}

// RequestOption overrides a single field of the defaults
type RequestOption func(*RequestOptions)

// DefaultRequestOptions returns a fresh copy of the defaults
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		PrefixAPIVersion:    true,
		TransactionResponse: true,
	}
}

// NewRequestOptions merges the overrides onto the defaults
func NewRequestOptions(opts ...RequestOption) RequestOptions {
	o := DefaultRequestOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithEntityContainer(name string) RequestOption {
	return func(o *RequestOptions) {
		o.EntityContainer = name
	}
}

func WithListContainer(name string) RequestOption {
	return func(o *RequestOptions) {
		o.ListContainer = name
	}
}

func WithoutAPIVersion() RequestOption {
	return func(o *RequestOptions) {
		o.PrefixAPIVersion = false
	}
}

// WithoutEnvelope marks the response as a plain JSON document
func WithoutEnvelope() RequestOption {
	return func(o *RequestOptions) {
		o.TransactionResponse = false
	}
}

func WithHeaders(headers map[string]string) RequestOption {
	return func(o *RequestOptions) {
		o.Headers = lo.Assign(o.Headers, headers)
	}
}
