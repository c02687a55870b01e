package flexpay

import (
	"context"
	"net/http"

	"github.com/flexpay/flexpay-go/internal/client"
	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/flexpay/flexpay-go/internal/httpclient"
	"github.com/flexpay/flexpay-go/internal/logger"
	"github.com/flexpay/flexpay-go/internal/types"
)

// DefaultBaseURL is the production API host
const DefaultBaseURL = client.DefaultBaseURL

// healthyMessage is what /api/test answers when the client is configured correctly
const healthyMessage = "Your client successfully connects with FlexPay!"

// Client is the FlexPay API client. It is safe for concurrent use as long as
// credentials are not rotated while calls are in flight.
type Client struct {
	executor client.RequestExecutor
	gateway  *client.GatewayConfig

	Transactions   *TransactionService
	PaymentMethods *PaymentMethodService
	Gateways       *GatewayService
}

// NewClient validates the options and creates a Client. No request is made.
func NewClient(opts Options) (*Client, error) {
	auth, err := authConfig(opts)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(opts)
	if err != nil {
		return nil, err
	}

	var transport httpclient.Client
	if opts.HTTPClient != nil {
		transport = httpclient.NewDefaultClient(opts.HTTPClient)
	}

	executor, err := client.New(client.Config{
		BaseURL:    opts.BaseURL,
		Auth:       auth,
		Debug:      opts.DebugOutput,
		Headers:    opts.RequestHeaders,
		HTTPClient: transport,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	return newClient(executor, auth.Gateway), nil
}

func newClient(executor client.RequestExecutor, gateway *client.GatewayConfig) *Client {
	return &Client{
		executor:       executor,
		gateway:        gateway,
		Transactions:   &TransactionService{executor: executor},
		PaymentMethods: &PaymentMethodService{executor: executor},
		Gateways:       &GatewayService{executor: executor},
	}
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.executor.GetBaseURL()
}

// SetAPIKey switches to API key authentication. Transparent gateway settings
// given at construction stay in effect.
func (c *Client) SetAPIKey(apiKey string) error {
	return c.executor.SetAuthentication(client.AuthConfig{
		Type:    client.AuthTypeAPIKey,
		APIKey:  apiKey,
		Gateway: c.gateway,
	})
}

// SetAuthorizationToken switches to bearer token authentication. Transparent
// gateway delegation is not available in this mode.
func (c *Client) SetAuthorizationToken(token string) error {
	return c.executor.SetAuthentication(client.AuthConfig{
		Type:  client.AuthTypeBearer,
		Token: token,
	})
}

// HealthCheck reports whether the API accepts the configured credential
func (c *Client) HealthCheck(ctx context.Context) (bool, error) {
	resp, err := client.Do[HealthCheckResponse](ctx, c.executor, client.Call{
		Method: http.MethodGet,
		Path:   "/api/test",
		Options: []types.RequestOption{
			types.WithoutAPIVersion(),
			types.WithoutEnvelope(),
		},
	})
	if err != nil {
		return false, err
	}
	return resp.Message == healthyMessage, nil
}

// HealthCheckResponse is the body of /api/test
type HealthCheckResponse struct {
	Message string `json:"message"`
}

// NewMerchantTransactionID returns a unique, time ordered merchant transaction id
func NewMerchantTransactionID() string {
	return types.GenerateUUIDWithPrefix("mtx")
}

func authConfig(opts Options) (client.AuthConfig, error) {
	if opts.APIKey != "" && opts.AuthorizationToken != "" {
		return client.AuthConfig{}, ierr.NewError("apiKey and authorizationToken are mutually exclusive").
			WithHint("Configure exactly one authentication mode").
			Mark(ierr.ErrArgument)
	}

	var gateway *client.GatewayConfig
	if tg := opts.TransparentGateway; tg != nil {
		gateway = &client.GatewayConfig{URL: tg.URL, TokenExID: tg.TokenExID, APIKey: tg.APIKey}
	}

	switch {
	case opts.APIKey != "":
		return client.AuthConfig{Type: client.AuthTypeAPIKey, APIKey: opts.APIKey, Gateway: gateway}, nil
	case opts.AuthorizationToken != "":
		return client.AuthConfig{Type: client.AuthTypeBearer, Token: opts.AuthorizationToken, Gateway: gateway}, nil
	default:
		// left to the validator so the message matches credential rotation
		return client.AuthConfig{Gateway: gateway}, nil
	}
}

func newLogger(opts Options) (*logger.Logger, error) {
	if opts.Logger != nil {
		return logger.NewFromZap(opts.Logger), nil
	}
	if !opts.DebugOutput {
		return logger.NewNopLogger(), nil
	}
	return logger.NewLogger(types.LogLevelDebug)
}
