package client

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/flexpay/flexpay-go/internal/logger"
	"github.com/flexpay/flexpay-go/internal/testutil"
	"github.com/flexpay/flexpay-go/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testAPIKey = "dGVzdGFwaWtleQ=="

type ExecutorTestSuite struct {
	suite.Suite
	ctx       context.Context
	transport *testutil.MockHTTPClient
	executor  *Executor
}

func TestExecutor(t *testing.T) {
	suite.Run(t, new(ExecutorTestSuite))
}

func (s *ExecutorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.transport = testutil.NewMockHTTPClient()
	s.transport.SetDefaultResponse(testutil.JSONResponse(http.StatusOK, `{"message":"ok"}`))
	s.executor = s.newExecutor(AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey})
}

func (s *ExecutorTestSuite) newExecutor(auth AuthConfig) *Executor {
	e, err := New(Config{
		BaseURL:    "https://example.com",
		Auth:       auth,
		HTTPClient: s.transport,
	})
	s.Require().NoError(err)
	return e
}

func (s *ExecutorTestSuite) respond(status int, body string) {
	s.transport.SetDefaultResponse(testutil.JSONResponse(status, body))
}

func (s *ExecutorTestSuite) TestReturnsUnenvelopedBodyVerbatim() {
	got, err := s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/transactions/abc"})
	s.Require().NoError(err)
	s.Equal(map[string]any{"message": "ok"}, got)
}

func (s *ExecutorTestSuite) TestStatusClassification() {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    ierr.Kind
		message string
	}{
		{name: "401", status: 401, body: "Test content", kind: ierr.KindAuthorization, message: "Authorization Failed"},
		{name: "403", status: 403, body: "Test content", kind: ierr.KindAuthorization, message: "Authorization Failed"},
		{name: "404", status: 404, body: "Not Found", kind: ierr.KindResponse, message: "Resource not found"},
		{name: "201", status: 201, body: "Test content", kind: ierr.KindResponse, message: "Test content"},
		{name: "301", status: 301, body: "Test content", kind: ierr.KindResponse, message: "Test content"},
		{name: "302", status: 302, body: "Test content", kind: ierr.KindResponse, message: "Test content"},
		{name: "409", status: 409, body: "Test content", kind: ierr.KindResponse, message: "Test content"},
		{name: "500", status: 500, body: `{"error":"boom"}`, kind: ierr.KindResponse, message: `{"error":"boom"}`},
		{name: "200 unparseable", status: 200, body: "Not Found", kind: ierr.KindResponse, message: "Invalid response content"},
		{name: "200 empty", status: 200, body: "", kind: ierr.KindResponse, message: "Invalid response content"},
		{name: "200 null", status: 200, body: "null", kind: ierr.KindResponse, message: "Invalid response content"},
		{name: "200 trailing garbage", status: 200, body: `{"a":1} x`, kind: ierr.KindResponse, message: "Invalid response content"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.respond(tt.status, tt.body)

			_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/transactions/abc"})
			s.Require().Error(err)

			var ie *ierr.InternalError
			s.Require().True(errors.As(err, &ie))
			s.Equal(tt.kind, ie.Kind)
			s.Equal(tt.message, err.Error())
			s.Equal(tt.status, ie.StatusCode)
			s.Equal(tt.body, ie.Body)
		})
	}
}

func (s *ExecutorTestSuite) TestTransportFailureIsFetchError() {
	cause := fmt.Errorf("simulated network error")
	s.transport.SetError(cause)

	_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/transactions/abc"})
	s.Require().Error(err)
	s.True(ierr.IsFetch(err))
	s.False(ierr.IsResponse(err))
	s.Equal("simulated network error", err.Error())
	s.True(errors.Is(err, cause))
}

func (s *ExecutorTestSuite) TestFetchErrorFromTransportIsPassedThrough() {
	refused := ierr.NewError("dial tcp: connection refused").Mark(ierr.ErrFetch)
	s.transport.SetError(refused)

	_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Same(refused, err)
}

func (s *ExecutorTestSuite) TestURLBuilding() {
	tests := []struct {
		name string
		call Call
		want string
	}{
		{
			name: "version prefix by default",
			call: Call{Method: http.MethodGet, Path: "/transactions"},
			want: "https://example.com/v1/transactions",
		},
		{
			name: "version prefix disabled",
			call: Call{Method: http.MethodGet, Path: "/api/test", Options: []types.RequestOption{types.WithoutAPIVersion()}},
			want: "https://example.com/api/test",
		},
		{
			name: "nil query values are dropped",
			call: Call{Method: http.MethodGet, Path: "/transactions", Query: map[string]*string{
				"order":      lo.ToPtr("asc"),
				"count":      lo.ToPtr("20"),
				"sinceToken": nil,
			}},
			want: "https://example.com/v1/transactions?count=20&order=asc",
		},
		{
			name: "no question mark when nothing survives",
			call: Call{Method: http.MethodGet, Path: "/transactions", Query: map[string]*string{"sinceToken": nil}},
			want: "https://example.com/v1/transactions",
		},
		{
			name: "query values are escaped",
			call: Call{Method: http.MethodGet, Path: "/transactions", Query: map[string]*string{"sinceToken": lo.ToPtr("a b&c")}},
			want: "https://example.com/v1/transactions?sinceToken=a+b%26c",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.executor.Execute(s.ctx, tt.call)
			s.Require().NoError(err)
			s.Equal(tt.want, s.transport.LastRequest().URL)
			s.Equal(tt.call.Method, s.transport.LastRequest().Method)
		})
	}
}

func (s *ExecutorTestSuite) TestAuthorizationHeaders() {
	_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)
	s.Equal("Basic "+testAPIKey, s.transport.LastRequest().Header("Authorization"))
	s.Equal("application/json", s.transport.LastRequest().Header("Content-Type"))

	bearer := s.newExecutor(AuthConfig{Type: AuthTypeBearer, Token: "hello world"})
	_, err = bearer.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)
	s.Equal("Bearer hello world", s.transport.LastRequest().Header("Authorization"))
}

func (s *ExecutorTestSuite) TestExtraHeadersCannotOverrideFixedHeaders() {
	e, err := New(Config{
		BaseURL:    "https://example.com",
		Auth:       AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey},
		HTTPClient: s.transport,
		Headers:    map[string]string{"X-Client": "tests", "Authorization": "spoofed"},
	})
	s.Require().NoError(err)

	_, err = e.Execute(s.ctx, Call{
		Method:  http.MethodGet,
		Path:    "/x",
		Options: []types.RequestOption{types.WithHeaders(map[string]string{"X-Call": "1", "Content-Type": "text/plain"})},
	})
	s.Require().NoError(err)

	req := s.transport.LastRequest()
	s.Equal("tests", req.Header("X-Client"))
	s.Equal("1", req.Header("X-Call"))
	s.Equal("Basic "+testAPIKey, req.Header("Authorization"))
	s.Equal("application/json", req.Header("Content-Type"))
}

func (s *ExecutorTestSuite) TestDifferentlyCasedHeadersCannotOverrideFixedHeaders() {
	gateway := &GatewayConfig{URL: "https://tgapi.example.net/Detokenize", TokenExID: "tokenex-id", APIKey: "secondary"}
	e, err := New(Config{
		BaseURL:    "https://example.com",
		Auth:       AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey, Gateway: gateway},
		HTTPClient: s.transport,
		Headers:    map[string]string{"authorization": "spoofed", "tx_url": "https://elsewhere.example.net"},
	})
	s.Require().NoError(err)

	_, err = e.Execute(s.ctx, Call{
		Method:  http.MethodPost,
		Path:    "/gateways/charge",
		Proxy:   true,
		Options: []types.RequestOption{types.WithHeaders(map[string]string{"content-type": "text/plain", "TX_APIKEY": "other"})},
	})
	s.Require().NoError(err)

	req := s.transport.LastRequest()
	s.Len(req.Headers, 5)
	s.Equal("Basic "+testAPIKey, req.Header("Authorization"))
	s.Equal("application/json", req.Header("Content-Type"))
	s.Equal("https://example.com/v1/gateways/charge", req.Header(HeaderGatewayURL))
	s.Equal("tokenex-id", req.Header(HeaderGatewayTokenExID))
	s.Equal("secondary", req.Header(HeaderGatewayAPIKey))
	for key := range req.Headers {
		s.Equal(http.CanonicalHeaderKey(key), key)
	}
}

func (s *ExecutorTestSuite) TestTransparentGatewayDelegation() {
	gateway := &GatewayConfig{URL: "https://tgapi.example.net/TransparentGatewayAPI/Detokenize", TokenExID: "tokenex-id", APIKey: "secondary"}
	e := s.newExecutor(AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey, Gateway: gateway})

	_, err := e.Execute(s.ctx, Call{Method: http.MethodPost, Path: "/gateways/charge", Body: map[string]any{"a": 1}, Proxy: true})
	s.Require().NoError(err)

	req := s.transport.LastRequest()
	s.Equal(gateway.URL, req.URL)
	s.Equal("https://example.com/v1/gateways/charge", req.Header(HeaderGatewayURL))
	s.Equal("tokenex-id", req.Header(HeaderGatewayTokenExID))
	s.Equal("secondary", req.Header(HeaderGatewayAPIKey))
	s.Equal("Basic "+testAPIKey, req.Header("Authorization"))

	// calls that are not proxy eligible go straight to the API
	_, err = e.Execute(s.ctx, Call{Method: http.MethodPost, Path: "/gateways/charge", Body: map[string]any{"a": 1}})
	s.Require().NoError(err)

	req = s.transport.LastRequest()
	s.Equal("https://example.com/v1/gateways/charge", req.URL)
	s.Empty(req.Header(HeaderGatewayURL))
	s.Empty(req.Header(HeaderGatewayAPIKey))
}

func (s *ExecutorTestSuite) TestProxyCallWithoutGatewayGoesDirect() {
	_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodPost, Path: "/gateways/authorize", Proxy: true})
	s.Require().NoError(err)
	s.Equal("https://example.com/v1/gateways/authorize", s.transport.LastRequest().URL)
	s.Empty(s.transport.LastRequest().Header(HeaderGatewayURL))
}

func (s *ExecutorTestSuite) TestBodyEncoding() {
	_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodPost, Path: "/x", Body: `{"already":"encoded"}`})
	s.Require().NoError(err)
	s.Equal(`{"already":"encoded"}`, string(s.transport.LastRequest().Body))

	_, err = s.executor.Execute(s.ctx, Call{Method: http.MethodPost, Path: "/x", Body: map[string]any{"transaction": map[string]any{"amount": 1000}}})
	s.Require().NoError(err)
	s.JSONEq(`{"transaction":{"amount":1000}}`, string(s.transport.LastRequest().Body))

	_, err = s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)
	s.Nil(s.transport.LastRequest().Body)
}

func (s *ExecutorTestSuite) TestUnencodableBodyIsArgumentError() {
	_, err := s.executor.Execute(s.ctx, Call{Method: http.MethodPost, Path: "/x", Body: map[string]any{"fn": func() {}}})
	s.Require().Error(err)
	s.True(ierr.IsArgument(err))
	s.Empty(s.transport.Requests())
}

func (s *ExecutorTestSuite) TestEnvelopeUnwrapping() {
	s.Run("entity container", func() {
		s.respond(200, `{"transaction":{"transactionId":"t1"},"other":true}`)
		got, err := s.executor.Execute(s.ctx, Call{
			Method:  http.MethodGet,
			Path:    "/transactions/t1",
			Options: []types.RequestOption{types.WithEntityContainer("transaction")},
		})
		s.Require().NoError(err)
		s.Equal(map[string]any{"transactionId": "t1"}, got)
	})

	s.Run("missing entity is nil", func() {
		s.respond(200, `{"other":true}`)
		got, err := s.executor.Execute(s.ctx, Call{
			Method:  http.MethodGet,
			Path:    "/transactions/t1",
			Options: []types.RequestOption{types.WithEntityContainer("transaction")},
		})
		s.Require().NoError(err)
		s.Nil(got)
	})

	s.Run("list and entity containers", func() {
		s.respond(200, `{"paymentMethods":[{"paymentMethod":{"paymentMethodId":"a"}},{"paymentMethod":{"paymentMethodId":"b"}}]}`)
		got, err := s.executor.Execute(s.ctx, Call{
			Method: http.MethodGet,
			Path:   "/paymentmethods",
			Options: []types.RequestOption{
				types.WithListContainer("paymentMethods"),
				types.WithEntityContainer("paymentMethod"),
			},
		})
		s.Require().NoError(err)
		s.Equal([]any{
			map[string]any{"paymentMethodId": "a"},
			map[string]any{"paymentMethodId": "b"},
		}, got)
	})

	s.Run("list container only", func() {
		s.respond(200, `{"transactions":[{"transactionId":"a"},{"transactionId":"b"}]}`)
		got, err := s.executor.Execute(s.ctx, Call{
			Method:  http.MethodGet,
			Path:    "/transactions",
			Options: []types.RequestOption{types.WithListContainer("transactions")},
		})
		s.Require().NoError(err)
		s.Equal([]any{
			map[string]any{"transactionId": "a"},
			map[string]any{"transactionId": "b"},
		}, got)
	})

	s.Run("missing list is a response error", func() {
		s.respond(200, `{"message":"ok"}`)
		_, err := s.executor.Execute(s.ctx, Call{
			Method:  http.MethodGet,
			Path:    "/transactions",
			Options: []types.RequestOption{types.WithListContainer("transactions")},
		})
		s.Require().Error(err)
		s.True(ierr.IsResponse(err))
		s.Equal("Invalid response content", err.Error())
	})

	s.Run("containers ignored without envelope", func() {
		s.respond(200, `{"message":"ok"}`)
		got, err := s.executor.Execute(s.ctx, Call{
			Method: http.MethodGet,
			Path:   "/api/test",
			Options: []types.RequestOption{
				types.WithoutEnvelope(),
				types.WithEntityContainer("transaction"),
			},
		})
		s.Require().NoError(err)
		s.Equal(map[string]any{"message": "ok"}, got)
	})
}

func (s *ExecutorTestSuite) TestTimestampsAreNormalized() {
	s.respond(200, `{"transactionDate":"2022-12-01T22:00:00","amount":1000,"note":"hello"}`)

	got, err := s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)

	obj := got.(map[string]any)
	date, ok := obj["transactionDate"].(time.Time)
	s.Require().True(ok)
	s.True(date.Equal(time.Date(2022, 12, 1, 22, 0, 0, 0, time.UTC)))
	s.Equal("hello", obj["note"])
}

func (s *ExecutorTestSuite) TestSetAuthentication() {
	err := s.executor.SetAuthentication(AuthConfig{Type: AuthTypeAPIKey, APIKey: "not base64!"})
	s.Require().Error(err)
	s.True(ierr.IsArgument(err))

	_, err = s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)
	s.Equal("Basic "+testAPIKey, s.transport.LastRequest().Header("Authorization"))

	s.Require().NoError(s.executor.SetAuthentication(AuthConfig{Type: AuthTypeBearer, Token: "rotated"}))
	_, err = s.executor.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)
	s.Equal("Bearer rotated", s.transport.LastRequest().Header("Authorization"))
}

func (s *ExecutorTestSuite) TestDebugOutput() {
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := New(Config{
		BaseURL:    "https://example.com",
		Auth:       AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey},
		HTTPClient: s.transport,
		Debug:      true,
		Logger:     logger.NewFromZap(zap.New(core)),
	})
	s.Require().NoError(err)

	_, err = e.Execute(s.ctx, Call{
		Method: http.MethodPost,
		Path:   "/gateways/charge",
		Body:   map[string]any{"paymentMethod": map[string]any{"creditCardNumber": "4920201996449560", "cvv": "879"}},
	})
	s.Require().NoError(err)

	entries := logs.All()
	s.Require().Len(entries, 2)
	s.Equal("flexpay request", entries[0].Message)
	s.Equal("https://example.com/v1/gateways/charge", entries[0].ContextMap()["url"])

	for _, entry := range entries {
		for _, v := range entry.ContextMap() {
			text := fmt.Sprint(v)
			s.NotContains(text, testAPIKey)
			s.NotContains(text, "4920201996449560")
		}
	}
}

func (s *ExecutorTestSuite) TestDebugOutputOnTransportFailure() {
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := New(Config{
		BaseURL:    "https://example.com",
		Auth:       AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey},
		HTTPClient: s.transport,
		Debug:      true,
		Logger:     logger.NewFromZap(zap.New(core)),
	})
	s.Require().NoError(err)
	s.transport.SetError(fmt.Errorf("dial tcp: connection refused"))

	_, err = e.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/transactions/t1"})
	s.Require().Error(err)
	s.True(ierr.IsFetch(err))

	entries := logs.All()
	s.Require().Len(entries, 2)
	s.Equal("flexpay request", entries[0].Message)
	s.Equal("flexpay request failed", entries[1].Message)
	s.Equal("https://example.com/v1/transactions/t1", entries[1].ContextMap()["url"])
	s.Equal("dial tcp: connection refused", entries[1].ContextMap()["error"])
}

func (s *ExecutorTestSuite) TestNoDebugOutputByDefault() {
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := New(Config{
		BaseURL:    "https://example.com",
		Auth:       AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey},
		HTTPClient: s.transport,
		Logger:     logger.NewFromZap(zap.New(core)),
	})
	s.Require().NoError(err)

	_, err = e.Execute(s.ctx, Call{Method: http.MethodGet, Path: "/x"})
	s.Require().NoError(err)
	s.Zero(logs.Len())
}

func TestNew_Validation(t *testing.T) {
	validKey := AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "ftp scheme", cfg: Config{BaseURL: "ftp://thisisnt.the.url", Auth: validKey}, wantErr: "baseUrl is invalid."},
		{name: "missing scheme", cfg: Config{BaseURL: "example.com", Auth: validKey}, wantErr: "baseUrl is invalid."},
		{name: "bare slash", cfg: Config{BaseURL: "/", Auth: validKey}, wantErr: "baseUrl is invalid."},
		{name: "missing credential", cfg: Config{BaseURL: "https://example.com"}, wantErr: "apiKey or authorizationToken is required"},
		{name: "invalid api key", cfg: Config{Auth: AuthConfig{Type: AuthTypeAPIKey, APIKey: "hello world"}}, wantErr: "apiKey is invalid"},
		{name: "empty api key", cfg: Config{Auth: AuthConfig{Type: AuthTypeAPIKey}}, wantErr: "apiKey is invalid"},
		{name: "empty token", cfg: Config{Auth: AuthConfig{Type: AuthTypeBearer}}, wantErr: "authorizationToken is invalid"},
		{name: "token with newline", cfg: Config{Auth: AuthConfig{Type: AuthTypeBearer, Token: "abc\r\nX-Evil: 1"}}, wantErr: "authorizationToken is invalid"},
		{
			name:    "gateway with bearer token",
			cfg:     Config{Auth: AuthConfig{Type: AuthTypeBearer, Token: "abc", Gateway: &GatewayConfig{URL: "https://tg.example.net", TokenExID: "id", APIKey: "k"}}},
			wantErr: "transparentGateway requires apiKey authentication",
		},
		{
			name:    "gateway with invalid url",
			cfg:     Config{Auth: AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey, Gateway: &GatewayConfig{URL: "tg.example.net", TokenExID: "id", APIKey: "k"}}},
			wantErr: "transparentGateway url is invalid",
		},
		{
			name:    "gateway without id",
			cfg:     Config{Auth: AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey, Gateway: &GatewayConfig{URL: "https://tg.example.net", APIKey: "k"}}},
			wantErr: "transparentGateway tokenExId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := testutil.NewMockHTTPClient()
			transport.SetDefaultResponse(testutil.JSONResponse(http.StatusOK, `{}`))
			tt.cfg.HTTPClient = transport

			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.True(t, ierr.IsArgument(err))
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Empty(t, transport.Requests())
		})
	}
}

func TestNew_BaseURL(t *testing.T) {
	e, err := New(Config{BaseURL: "https://example.com/", Auth: AuthConfig{Type: AuthTypeBearer, Token: "t"}})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", e.GetBaseURL())

	e, err = New(Config{Auth: AuthConfig{Type: AuthTypeBearer, Token: "t"}})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, e.GetBaseURL())
}

type transactionShape struct {
	TransactionID   string    `json:"transactionId"`
	TransactionDate time.Time `json:"transactionDate"`
	Amount          int       `json:"amount"`
}

func TestDo(t *testing.T) {
	transport := testutil.NewMockHTTPClient()
	transport.RegisterResponse("/v1/transactions/t1", testutil.JSONResponse(http.StatusOK,
		`{"transaction":{"transactionId":"t1","transactionDate":"2022-12-01T22:00:00","amount":1000}}`))
	e, err := New(Config{Auth: AuthConfig{Type: AuthTypeAPIKey, APIKey: testAPIKey}, HTTPClient: transport})
	require.NoError(t, err)

	call := Call{
		Method:  http.MethodGet,
		Path:    "/transactions/t1",
		Options: []types.RequestOption{types.WithEntityContainer("transaction")},
	}

	got, err := Do[transactionShape](context.Background(), e, call)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.TransactionID)
	assert.Equal(t, 1000, got.Amount)
	assert.True(t, got.TransactionDate.Equal(time.Date(2022, 12, 1, 22, 0, 0, 0, time.UTC)))

	asMap, err := Do[map[string]any](context.Background(), e, call)
	require.NoError(t, err)
	assert.Equal(t, "t1", asMap["transactionId"])

	transport.RegisterResponse("/v1/transactions/t1", testutil.JSONResponse(http.StatusOK, `{"transaction":{"transactionId":42}}`))
	_, err = Do[transactionShape](context.Background(), e, call)
	require.Error(t, err)
	assert.True(t, ierr.IsResponse(err))

	transport.RegisterResponse("/v1/transactions/t1", testutil.JSONResponse(http.StatusOK, `{"other":{}}`))
	empty, err := Do[transactionShape](context.Background(), e, call)
	require.NoError(t, err)
	assert.Equal(t, transactionShape{}, empty)
}

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "card fields",
			body: `{"creditCard":{"creditCardNumber":"4920201996449560","cvv":"879","expiryMonth":"10","expiryYear":"2030","fullName":"Jane Doe","city":"Austin"}}`,
			want: `{"creditCard":{"creditCardNumber":"[REDACTED]","cvv":"[REDACTED]","expiryMonth":"[REDACTED]","expiryYear":"[REDACTED]","fullName":"[REDACTED]","city":"Austin"}}`,
		},
		{
			name: "escaped quotes",
			body: `{"fullName":"Jane \"JD\" Doe","firstName":"Jane"}`,
			want: `{"fullName":"[REDACTED]","firstName":"[REDACTED]"}`,
		},
		{
			name: "numbers and spacing",
			body: `{"cvv" : 879, "expiryYear": 2030, "amount": 1000}`,
			want: `{"cvv" : "[REDACTED]", "expiryYear": "[REDACTED]", "amount": 1000}`,
		},
		{
			name: "null stays null",
			body: `{"lastName":null}`,
			want: `{"lastName":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redact(tt.body))
		})
	}
}
