package client

import (
	"context"
	"net/http"
	"net/url"

	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/flexpay/flexpay-go/internal/httpclient"
	"github.com/flexpay/flexpay-go/internal/logger"
	"github.com/flexpay/flexpay-go/internal/types"
	"github.com/samber/lo"
)

// DefaultBaseURL is the production API host
const DefaultBaseURL = "https://api.flexpay.io"

// Transparent gateway headers carrying the intended call
const (
	HeaderGatewayURL       = "TX_URL"
	HeaderGatewayTokenExID = "TX_TokenExID"
	HeaderGatewayAPIKey    = "TX_APIKey"
)

// Config holds everything needed to build an Executor
type Config struct {
	BaseURL    string
	Auth       AuthConfig
	Debug      bool
	Headers    map[string]string
	HTTPClient httpclient.Client
	Logger     *logger.Logger
}

// Executor implements RequestExecutor.
//
// The credential is the only mutable state. SetAuthentication is not synchronized
// with calls in flight; callers that rotate credentials concurrently must
// coordinate themselves.
type Executor struct {
	baseURL    string
	auth       AuthConfig
	debug      bool
	headers    map[string]string
	httpClient httpclient.Client
	logger     *logger.Logger
}

// New validates the configuration and creates an Executor
func New(cfg Config) (*Executor, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if err := validateAuth(cfg.Auth); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = httpclient.NewDefaultClient(nil)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Executor{
		baseURL:    baseURL,
		auth:       cfg.Auth,
		debug:      cfg.Debug,
		headers:    canonicalHeaders(cfg.Headers),
		httpClient: httpClient,
		logger:     log,
	}, nil
}

// GetBaseURL returns the base URL
func (e *Executor) GetBaseURL() string {
	return e.baseURL
}

// SetAuthentication validates and replaces the credential used by all future requests
func (e *Executor) SetAuthentication(auth AuthConfig) error {
	if err := validateAuth(auth); err != nil {
		return err
	}
	e.auth = auth
	return nil
}

// Execute performs exactly one request. No retries are attempted.
func (e *Executor) Execute(ctx context.Context, call Call) (any, error) {
	opts := types.NewRequestOptions(call.Options...)
	auth := e.auth

	path := call.Path
	if opts.PrefixAPIVersion {
		path = types.APIVersion + path
	}
	target := e.baseURL + path + encodeQuery(call.Query)

	body, err := encodeBody(call.Body)
	if err != nil {
		return nil, ierr.NewError("request body could not be encoded").
			WithCause(err).
			Mark(ierr.ErrArgument)
	}

	req := &httpclient.Request{
		Method:  call.Method,
		URL:     target,
		Headers: e.requestHeaders(auth, opts),
		Body:    body,
	}

	delegated := call.Proxy && auth.Type == AuthTypeAPIKey && auth.Gateway != nil
	if delegated {
		req.URL = auth.Gateway.URL
		req.Headers = lo.Assign(req.Headers, canonicalHeaders(map[string]string{
			HeaderGatewayURL:       target,
			HeaderGatewayTokenExID: auth.Gateway.TokenExID,
			HeaderGatewayAPIKey:    auth.Gateway.APIKey,
		}))
	}

	if e.debug {
		e.logger.Debugw("flexpay request",
			"method", req.Method,
			"url", target,
			"delegated", delegated,
			"body", redact(string(body)))
	}

	resp, err := e.httpClient.Send(ctx, req)
	if err != nil {
		if e.debug {
			e.logger.Debugw("flexpay request failed",
				"url", target,
				"error", err.Error())
		}
		if ierr.IsFetch(err) {
			return nil, err
		}
		return nil, ierr.WithError(err).Mark(ierr.ErrFetch)
	}

	text := string(resp.Body)

	if e.debug {
		e.logger.Debugw("flexpay response",
			"url", target,
			"status", resp.StatusCode,
			"body", redact(text))
		if delegated {
			e.logger.Debugw("transparent gateway response",
				"tx_code", resp.Header("tx_code"),
				"tx_message", resp.Header("tx_message"))
		}
	}

	if err := classifyStatus(resp.StatusCode, text); err != nil {
		return nil, err
	}

	decoded, err := decodeBody(text)
	if err != nil {
		return nil, err
	}

	return unwrap(decoded, opts)
}

// requestHeaders layers default, per call and fixed headers. Fixed headers always win.
// Keys are canonical so a differently cased caller key cannot survive the merge.
func (e *Executor) requestHeaders(auth AuthConfig, opts types.RequestOptions) map[string]string {
	return lo.Assign(e.headers, canonicalHeaders(opts.Headers), map[string]string{
		"Content-Type":  "application/json",
		"Authorization": authorizationHeader(auth),
	})
}

func canonicalHeaders(headers map[string]string) map[string]string {
	return lo.MapKeys(headers, func(_ string, key string) string {
		return http.CanonicalHeaderKey(key)
	})
}

func authorizationHeader(auth AuthConfig) string {
	switch auth.Type {
	case AuthTypeBearer:
		return "Bearer " + auth.Token
	default:
		return "Basic " + auth.APIKey
	}
}

// encodeQuery drops nil parameters and returns "" when nothing survives
func encodeQuery(params map[string]*string) string {
	defined := lo.OmitBy(params, func(_ string, v *string) bool {
		return v == nil
	})
	if len(defined) == 0 {
		return ""
	}

	values := url.Values{}
	for k, v := range defined {
		values.Set(k, *v)
	}
	return "?" + values.Encode()
}
