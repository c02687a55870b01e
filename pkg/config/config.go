package config

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/flexpay/flexpay-go/internal/logger"
	"github.com/flexpay/flexpay-go/internal/types"
	"github.com/flexpay/flexpay-go/internal/validator"
	"github.com/flexpay/flexpay-go/pkg/flexpay"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, FLEXPAY_API_KEY sets api_key
const EnvPrefix = "FLEXPAY"

// DefaultPaths are searched for config.yaml and .env when Load gets no paths
var DefaultPaths = []string{".", "./config", "/etc/flexpay"}

var configMessages = map[string]string{
	"BaseURL":                      "base_url is invalid",
	"Timeout":                      "timeout must not be negative",
	"TransparentGateway.URL":       "transparent_gateway.url is invalid",
	"TransparentGateway.TokenExID": "transparent_gateway.token_ex_id is required",
	"TransparentGateway.APIKey":    "transparent_gateway.api_key is required",
	"Logging.Level":                "logging.level is invalid",
}

type Configuration struct {
	BaseURL            string                   `mapstructure:"base_url" validate:"omitempty,http_or_https"`
	APIKey             string                   `mapstructure:"api_key"`
	AuthorizationToken string                   `mapstructure:"authorization_token"`
	Debug              bool                     `mapstructure:"debug"`
	Timeout            time.Duration            `mapstructure:"timeout" validate:"gte=0"`
	Headers            map[string]string        `mapstructure:"headers"`
	TransparentGateway TransparentGatewayConfig `mapstructure:"transparent_gateway"`
	Logging            LoggingConfig            `mapstructure:"logging" validate:"required"`
	Sandbox            SandboxConfig            `mapstructure:"sandbox"`
}

// TransparentGatewayConfig enables delegation when URL is set
type TransparentGatewayConfig struct {
	URL       string `mapstructure:"url" validate:"omitempty,http_or_https"`
	TokenExID string `mapstructure:"token_ex_id" validate:"required_with=URL"`
	APIKey    string `mapstructure:"api_key" validate:"required_with=URL"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SandboxConfig holds the fixtures used by the sandbox integration tests
type SandboxConfig struct {
	GatewayToken               string `mapstructure:"gateway_token"`
	MerchantAccountReferenceID string `mapstructure:"merchant_account_reference_id"`
}

// Load reads config.yaml and .env from the given paths, then the environment.
// Environment variables win over the file.
func Load(paths ...string) (*Configuration, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	if err := loadDotEnv(paths); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, ierr.WithError(err).
				WithHint("config.yaml could not be parsed").
				Mark(ierr.ErrArgument)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Check the types of the configuration values").
			Mark(ierr.ErrArgument)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", flexpay.DefaultBaseURL)
	v.SetDefault("api_key", "")
	v.SetDefault("authorization_token", "")
	v.SetDefault("debug", false)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("transparent_gateway.url", "")
	v.SetDefault("transparent_gateway.token_ex_id", "")
	v.SetDefault("transparent_gateway.api_key", "")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("sandbox.gateway_token", "")
	v.SetDefault("sandbox.merchant_account_reference_id", "")
}

// loadDotEnv loads the first .env found. Variables already set are kept.
func loadDotEnv(paths []string) error {
	for _, p := range paths {
		file := filepath.Join(p, ".env")
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return ierr.WithError(err).
				WithHintf("%s could not be parsed", file).
				Mark(ierr.ErrArgument)
		}
		return nil
	}
	return nil
}

func (c Configuration) Validate() error {
	return validator.ValidateRequest(c, configMessages, "invalid configuration")
}

// GetDefaultConfig returns the configuration used when nothing is configured
func GetDefaultConfig() *Configuration {
	return &Configuration{
		BaseURL: flexpay.DefaultBaseURL,
		Timeout: 30 * time.Second,
		Logging: LoggingConfig{Level: types.LogLevelInfo},
	}
}

// Options converts the configuration into client options. Debug output is
// written by a logger at the configured level.
func (c Configuration) Options() (flexpay.Options, error) {
	debug := c.Debug || c.Logging.Level == types.LogLevelDebug
	opts := flexpay.Options{
		BaseURL:            c.BaseURL,
		APIKey:             c.APIKey,
		AuthorizationToken: c.AuthorizationToken,
		DebugOutput:        debug,
		RequestHeaders:     c.Headers,
	}

	if c.Timeout > 0 {
		opts.HTTPClient = &http.Client{Timeout: c.Timeout}
	}

	if c.TransparentGateway.URL != "" {
		opts.TransparentGateway = &flexpay.TransparentGatewayOptions{
			URL:       c.TransparentGateway.URL,
			TokenExID: c.TransparentGateway.TokenExID,
			APIKey:    c.TransparentGateway.APIKey,
		}
	}

	// request and response entries are written at debug level
	if debug {
		log, err := logger.NewLogger(types.LogLevelDebug)
		if err != nil {
			return flexpay.Options{}, err
		}
		opts.Logger = log.Desugar()
	}

	return opts, nil
}

// NewClient builds a client from the configuration
func (c Configuration) NewClient() (*flexpay.Client, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return flexpay.NewClient(opts)
}
