package client

import (
	"strings"

	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/flexpay/flexpay-go/internal/validator"
)

const msgInvalidBaseURL = "baseUrl is invalid."

// authMessages maps a failing AuthConfig field to the message callers see
var authMessages = map[string]string{
	"Type":              "apiKey or authorizationToken is required",
	"APIKey":            "apiKey is invalid",
	"Token":             "authorizationToken is invalid",
	"Gateway.URL":       "transparentGateway url is invalid",
	"Gateway.TokenExID": "transparentGateway tokenExId is required",
	"Gateway.APIKey":    "transparentGateway apiKey is required",
}

// normalizeBaseURL removes a trailing slash and validates the result
func normalizeBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return DefaultBaseURL, nil
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if err := validator.ValidateVar(baseURL, "required,http_or_https", msgInvalidBaseURL); err != nil {
		return "", err
	}
	return baseURL, nil
}

// validateAuth checks the credential format. It never contacts the API.
func validateAuth(auth AuthConfig) error {
	if auth.Type == AuthTypeBearer && auth.Gateway != nil {
		return ierr.NewError("transparentGateway requires apiKey authentication").
			Mark(ierr.ErrArgument)
	}
	return validator.ValidateRequest(auth, authMessages, "invalid authentication configuration")
}
