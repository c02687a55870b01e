package client

import (
	"context"

	"github.com/flexpay/flexpay-go/internal/types"
)

// RequestExecutor turns one logical operation into one remote call
type RequestExecutor interface {
	// Execute performs the call and returns the decoded, normalized and unwrapped body
	Execute(ctx context.Context, call Call) (any, error)

	// Configuration
	GetBaseURL() string

	// Authentication
	SetAuthentication(auth AuthConfig) error
}

// Call describes a single request
type Call struct {
	Method string
	// Path is the resource path without the API version prefix
	Path string
	// Query parameters; nil values are dropped
	Query map[string]*string
	// Body is sent verbatim when it is a string or []byte and JSON encoded otherwise
	Body any
	// Options override the default response shape
	Options []types.RequestOption
	// Proxy marks the call as eligible for transparent gateway delegation
	Proxy bool
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Type    AuthType       `validate:"required,oneof=api_key bearer"`
	APIKey  string         `validate:"required_if=Type api_key,omitempty,flexpay_apikey"`
	Token   string         `validate:"required_if=Type bearer,omitempty,flexpay_token"`
	Gateway *GatewayConfig `validate:"omitempty"`
}

// GatewayConfig holds the transparent gateway delegation settings. Proxy calls
// are sent to URL and the intended URL travels in a header.
type GatewayConfig struct {
	URL       string `validate:"required,http_or_https"`
	TokenExID string `validate:"required"`
	APIKey    string `validate:"required"`
}

type AuthType string

const (
	AuthTypeAPIKey AuthType = "api_key"
	AuthTypeBearer AuthType = "bearer"
)
