package httpclient

import (
	"context"
	"net"

	"github.com/cockroachdb/errors"
)

// transportHint describes a transport failure for the error hint
func transportHint(err error) string {
	var dnsErr *net.DNSError
	var opErr *net.OpError
	var netErr net.Error

	switch {
	case errors.Is(err, context.Canceled):
		return "The request was canceled by the caller"
	case errors.Is(err, context.DeadlineExceeded):
		return "The request deadline was exceeded"
	case errors.As(err, &dnsErr):
		return "The API host could not be resolved"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "The request timed out"
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return "Unable to connect to the API host"
	default:
		return "Unable to reach the FlexPay API"
	}
}
