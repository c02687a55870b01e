package flexpay

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testAPIKey = "dGVzdGFwaWtleQ=="

type recordedRequest struct {
	Method  string
	URI     string
	Query   map[string][]string
	Headers http.Header
	Body    string
}

// fakeAPI is an httptest server answering every request with a fixed response
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	headers  map[string]string
	requests []recordedRequest
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()

	api := &fakeAPI{status: status, body: body}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		api.mu.Lock()
		defer api.mu.Unlock()

		api.requests = append(api.requests, recordedRequest{
			Method:  r.Method,
			URI:     r.RequestURI,
			Query:   r.URL.Query(),
			Headers: r.Header.Clone(),
			Body:    string(raw),
		})
		for k, v := range api.headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(api.status)
		_, _ = w.Write([]byte(api.body))
	}))
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) respond(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
	a.body = body
}

func (a *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	require.NotEmpty(t, a.requests, "no request reached the server")
	return a.requests[len(a.requests)-1]
}

func (a *fakeAPI) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests)
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	c, err := NewClient(Options{
		BaseURL:    api.URL,
		APIKey:     testAPIKey,
		HTTPClient: api.Client(),
	})
	require.NoError(t, err)
	return c
}

const transactionBody = `{"transaction":{
	"transactionId":"Ygp3xYx2cEM0sQWQNQJ6m",
	"transactionDate":"2022-12-01T22:00:00",
	"transactionStatus":1,
	"message":"Approved",
	"responseCode":"10000",
	"transactionType":"Charge",
	"merchantTransactionId":"mtx_1",
	"currencyCode":"USD",
	"amount":1000,
	"retryCount":0,
	"dateFirstAttempt":"2022-12-01T22:00:00.123+10:11",
	"disableCustomerRecovery":false,
	"paymentMethod":{"paymentMethodId":"pm_1","creditCardNumber":"492020******9560","lastFourDigits":"9560","firstSixDigits":"492020","paymentMethodType":"CreditCard","cardType":"VISA","dateCreated":null}
}}`
