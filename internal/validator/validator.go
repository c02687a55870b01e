package validator

import (
	"net/url"
	"regexp"
	"strings"

	ierr "github.com/flexpay/flexpay-go/internal/errors"
	"github.com/go-playground/validator/v10"
)

// apiKeyRE is a simple (incomplete) base64 check to fail early on invalid api keys
var apiKeyRE = regexp.MustCompile(`^[a-zA-Z0-9+/]+(==?)?$`)

var validate = NewValidator()

// NewValidator returns a validator with the flexpay rules registered:
// flexpay_apikey, flexpay_token and http_or_https.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("flexpay_apikey", func(fl validator.FieldLevel) bool {
		return apiKeyRE.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("flexpay_token", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.TrimSpace(s) != "" && !strings.ContainsAny(s, "\r\n")
	})
	_ = v.RegisterValidation("http_or_https", func(fl validator.FieldLevel) bool {
		return IsHTTPURL(fl.Field().String())
	})
	return v
}

func GetValidator() *validator.Validate {
	return validate
}

// IsHTTPURL reports whether value is an absolute http or https URL
func IsHTTPURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ValidateRequest validates req and returns an argument error. The message is
// taken from messages, keyed by the struct namespace of the first failing
// field without the root type name, falling back to fallback.
func ValidateRequest(req any, messages map[string]string, fallback string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	msg := fallback
	details := make(map[string]any)
	var validateErrs validator.ValidationErrors
	if ierr.As(err, &validateErrs) {
		for i, fe := range validateErrs {
			field := trimRoot(fe.StructNamespace())
			details[field] = fe.Tag()
			if i == 0 {
				if m, ok := messages[field]; ok {
					msg = m
				}
			}
		}
	}

	return ierr.NewError(msg).
		WithCause(err).
		WithHint("Request validation failed").
		WithReportableDetails(details).
		Mark(ierr.ErrArgument)
}

// ValidateVar validates a single value against tag
func ValidateVar(value any, tag, msg string) error {
	if err := validate.Var(value, tag); err != nil {
		return ierr.NewError(msg).
			WithCause(err).
			Mark(ierr.ErrArgument)
	}
	return nil
}

func trimRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
