package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/flexpay/flexpay-go/internal/httpclient"
)

// MockHTTPClient implements httpclient.Client for tests. It records every
// request and answers from the registered routes.
type MockHTTPClient struct {
	mu       sync.RWMutex
	routes   map[string]MockResponse
	fallback *MockResponse
	err      error
	requests []*httpclient.Request
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// JSONResponse builds a MockResponse with a JSON content type
func JSONResponse(status int, body string) MockResponse {
	return MockResponse{
		StatusCode: status,
		Body:       []byte(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

// RegisterResponse registers a mock response for URLs ending in route.
// The query string is part of the URL.
func (m *MockHTTPClient) RegisterResponse(route string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[route] = resp
}

// SetDefaultResponse answers requests that match no route
func (m *MockHTTPClient) SetDefaultResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = &resp
}

// SetError makes Send fail with err, nil restores normal behaviour
func (m *MockHTTPClient) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Send implements the httpclient.Client interface
func (m *MockHTTPClient) Send(_ context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}

	// Longest matching route wins
	var matched string
	var found bool
	for route := range m.routes {
		if strings.HasSuffix(req.URL, route) && len(route) >= len(matched) {
			matched = route
			found = true
		}
	}

	var resp MockResponse
	switch {
	case found:
		resp = m.routes[matched]
	case m.fallback != nil:
		resp = *m.fallback
	default:
		return &httpclient.Response{
			StatusCode: http.StatusNotFound,
			Body:       []byte("Not Found"),
			Headers:    map[string]string{},
		}, nil
	}

	return &httpclient.Response{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
	}, nil
}

// Requests returns the requests sent so far, oldest first
func (m *MockHTTPClient) Requests() []*httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*httpclient.Request(nil), m.requests...)
}

// LastRequest returns the most recent request, or nil
func (m *MockHTTPClient) LastRequest() *httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Clear removes all registered responses and recorded requests
func (m *MockHTTPClient) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = make(map[string]MockResponse)
	m.fallback = nil
	m.err = nil
	m.requests = nil
}
