package client

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/flexpay/flexpay-go/internal/types"
	"github.com/flexpay/flexpay-go/internal/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeJSON keeps numbers as json.Number so amounts survive untouched
var decodeJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// sensitiveFieldRE matches card and card holder values that must not reach debug
// output, quoted (escapes included) or bare numbers
var sensitiveFieldRE = regexp.MustCompile(
	`("(?:creditCardNumber|cvv|expiryMonth|expiryYear|fullName|firstName|lastName)"\s*:\s*)(?:"(?:[^"\\]|\\.)*"|-?\d+)`)

// Do executes the call and converts the result into T. Nothing beyond JSON
// decoding checks that the payload matches T.
func Do[T any](ctx context.Context, e RequestExecutor, call Call) (T, error) {
	var out T

	v, err := e.Execute(ctx, call)
	if err != nil {
		return out, err
	}

	if typed, ok := v.(T); ok {
		return typed, nil
	}

	out, err = utils.ToStruct[T](v)
	if err != nil {
		return out, ierr.NewError(ierr.MsgInvalidResponseContent).
			WithCause(err).
			WithHintf("The response could not be decoded into %T", out).
			Mark(ierr.ErrResponse)
	}
	return out, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	default:
		return json.Marshal(b)
	}
}

// classifyStatus maps a response status onto the error taxonomy, first match wins
func classifyStatus(status int, body string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		// API gateways may answer 403 instead of 401 for rejected credentials
		return ierr.NewError(ierr.MsgAuthorizationFailed).
			WithResponse(status, body).
			Mark(ierr.ErrAuthorization)
	case status == http.StatusNotFound:
		return ierr.NewError(ierr.MsgResourceNotFound).
			WithResponse(status, body).
			Mark(ierr.ErrResponse)
	case status != http.StatusOK:
		return ierr.NewError(body).
			WithResponse(status, body).
			Mark(ierr.ErrResponse)
	}
	return nil
}

// decodeBody parses the body and normalizes every timestamp string in it
func decodeBody(text string) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ierr.NewError(ierr.MsgInvalidResponseContent).
			WithCause(errors.New("empty response body")).
			WithResponse(http.StatusOK, text).
			Mark(ierr.ErrResponse)
	}

	var v any
	if err := decodeJSON.UnmarshalFromString(text, &v); err != nil {
		return nil, ierr.NewError(ierr.MsgInvalidResponseContent).
			WithCause(err).
			WithResponse(http.StatusOK, text).
			Mark(ierr.ErrResponse)
	}

	if v == nil {
		return nil, ierr.NewError(ierr.MsgInvalidResponseContent).
			WithCause(errors.New("null response body")).
			WithResponse(http.StatusOK, text).
			Mark(ierr.ErrResponse)
	}

	return types.NormalizeValue(v), nil
}

// unwrap pulls the requested entity out of the response envelope
func unwrap(v any, opts types.RequestOptions) (any, error) {
	if !opts.TransactionResponse {
		return v, nil
	}

	if opts.ListContainer != "" {
		items, ok := property(v, opts.ListContainer).([]any)
		if !ok {
			return nil, ierr.NewError(ierr.MsgInvalidResponseContent).
				WithHintf("The response has no %q list", opts.ListContainer).
				Mark(ierr.ErrResponse)
		}
		if opts.EntityContainer == "" {
			return items, nil
		}
		return lo.Map(items, func(item any, _ int) any {
			return property(item, opts.EntityContainer)
		}), nil
	}

	if opts.EntityContainer != "" {
		return property(v, opts.EntityContainer), nil
	}

	return v, nil
}

// property returns the named member of a JSON object, or nil
func property(v any, name string) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return obj[name]
}

func redact(body string) string {
	return sensitiveFieldRE.ReplaceAllString(body, `${1}"[REDACTED]"`)
}
