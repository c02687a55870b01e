package flexpay

import (
	"net/http"

	"go.uber.org/zap"
)

// Options configures a Client. Exactly one of APIKey and AuthorizationToken must be set.
type Options struct {
	// BaseURL defaults to https://api.flexpay.io
	BaseURL string

	// APIKey authenticates with Basic authorization. It must be base64 encoded.
	APIKey string

	// AuthorizationToken authenticates with Bearer authorization
	AuthorizationToken string

	// TransparentGateway routes raw card charges and authorizations through a
	// detokenizing proxy. Only valid with APIKey.
	TransparentGateway *TransparentGatewayOptions

	// DebugOutput logs every request and response at debug level
	DebugOutput bool

	// RequestHeaders are attached to every request
	RequestHeaders map[string]string

	// HTTPClient controls timeouts and transport. Defaults to a client with a 30 second timeout.
	HTTPClient *http.Client

	// Logger receives debug output. A development logger is created when
	// DebugOutput is set and Logger is nil.
	Logger *zap.Logger
}

// TransparentGatewayOptions are the delegation settings for raw card operations
type TransparentGatewayOptions struct {
	URL       string
	TokenExID string
	APIKey    string
}
