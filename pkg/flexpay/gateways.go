package flexpay

import (
	"context"
	"net/http"

	"github.com/flexpay/flexpay-go/internal/client"
	"github.com/flexpay/flexpay-go/internal/types"
)

// GatewayService charges and authorizes payments
type GatewayService struct {
	executor client.RequestExecutor
}

// ChargeCreditCard charges raw card data. The call goes through the
// transparent gateway when one is configured.
func (s *GatewayService) ChargeCreditCard(ctx context.Context, req ChargeCreditCardRequest) (*Transaction, error) {
	return s.send(ctx, "/gateways/charge", req, true)
}

// ChargeGatewayPaymentMethod charges a payment method stored at a gateway
func (s *GatewayService) ChargeGatewayPaymentMethod(ctx context.Context, req ChargeGatewayPaymentMethodRequest) (*Transaction, error) {
	return s.send(ctx, "/gateways/charge", req, false)
}

// ChargeTokenizedPaymentMethod charges a previously tokenized payment method
func (s *GatewayService) ChargeTokenizedPaymentMethod(ctx context.Context, req ChargeTokenizedPaymentMethodRequest) (*Transaction, error) {
	return s.send(ctx, "/gateways/charge", req, false)
}

// AuthorizeCreditCard authorizes raw card data. The call goes through the
// transparent gateway when one is configured.
func (s *GatewayService) AuthorizeCreditCard(ctx context.Context, req AuthorizeCreditCardRequest) (*Transaction, error) {
	return s.send(ctx, "/gateways/authorize", req, true)
}

func (s *GatewayService) AuthorizeGatewayPaymentMethod(ctx context.Context, req AuthorizeGatewayPaymentMethodRequest) (*Transaction, error) {
	return s.send(ctx, "/gateways/authorize", req, false)
}

func (s *GatewayService) AuthorizeTokenizedPaymentMethod(ctx context.Context, req AuthorizeTokenizedPaymentMethodRequest) (*Transaction, error) {
	return s.send(ctx, "/gateways/authorize", req, false)
}

func (s *GatewayService) send(ctx context.Context, path string, req any, proxy bool) (*Transaction, error) {
	return client.Do[*Transaction](ctx, s.executor, client.Call{
		Method:  http.MethodPost,
		Path:    path,
		Body:    map[string]any{transactionContainer: req},
		Options: []types.RequestOption{types.WithEntityContainer(transactionContainer)},
		Proxy:   proxy,
	})
}
