package flexpay

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flexpay/flexpay-go/internal/client"
	"github.com/flexpay/flexpay-go/internal/types"
)

// PaymentMethodService stores and manages payment methods
type PaymentMethodService struct {
	executor client.RequestExecutor
}

// TokenizeCreditCard stores raw card data and returns the new payment method
func (s *PaymentMethodService) TokenizeCreditCard(ctx context.Context, req TokenizeCreditCardRequest) (*PaymentMethodTransaction, error) {
	return s.change(ctx, http.MethodPost, "/paymentmethods", wrapPaymentMethod(req))
}

// TokenizeGatewayPaymentMethod registers a payment method already stored at a gateway
func (s *PaymentMethodService) TokenizeGatewayPaymentMethod(ctx context.Context, req TokenizeGatewayPaymentMethodRequest) (*PaymentMethodTransaction, error) {
	return s.change(ctx, http.MethodPost, "/paymentmethods", wrapPaymentMethod(req))
}

// List returns one page of payment methods
func (s *PaymentMethodService) List(ctx context.Context, params ListParams) ([]PaymentMethod, error) {
	return client.Do[[]PaymentMethod](ctx, s.executor, client.Call{
		Method: http.MethodGet,
		Path:   "/paymentmethods",
		Query:  params.query(),
		Options: []types.RequestOption{
			types.WithListContainer("paymentMethods"),
			types.WithEntityContainer("paymentMethod"),
		},
	})
}

func (s *PaymentMethodService) Get(ctx context.Context, paymentMethodID string) (*PaymentMethod, error) {
	return client.Do[*PaymentMethod](ctx, s.executor, client.Call{
		Method:  http.MethodGet,
		Path:    paymentMethodPath(paymentMethodID),
		Options: []types.RequestOption{types.WithEntityContainer("paymentMethod")},
	})
}

// Update changes billing details and expiry. Card numbers cannot be changed.
func (s *PaymentMethodService) Update(ctx context.Context, paymentMethodID string, req UpdatePaymentMethodRequest) (*PaymentMethodTransaction, error) {
	return s.change(ctx, http.MethodPut, paymentMethodPath(paymentMethodID), wrapPaymentMethod(req))
}

// Redact permanently removes the card data of a payment method
func (s *PaymentMethodService) Redact(ctx context.Context, paymentMethodID string) (*PaymentMethodTransaction, error) {
	return s.change(ctx, http.MethodPut, paymentMethodPath(paymentMethodID)+"/redact", nil)
}

// RecacheCVV stores a fresh CVV for the next transaction on the payment method
func (s *PaymentMethodService) RecacheCVV(ctx context.Context, paymentMethodID, cvv string) (*PaymentMethodTransaction, error) {
	var req recacheRequest
	req.PaymentMethod.CreditCard.CVV = cvv
	return s.change(ctx, http.MethodPut, paymentMethodPath(paymentMethodID)+"/recache", req)
}

func (s *PaymentMethodService) change(ctx context.Context, method, path string, body any) (*PaymentMethodTransaction, error) {
	return client.Do[*PaymentMethodTransaction](ctx, s.executor, client.Call{
		Method:  method,
		Path:    path,
		Body:    body,
		Options: []types.RequestOption{types.WithEntityContainer(transactionContainer)},
	})
}

func paymentMethodPath(id string) string {
	return "/paymentmethods/" + url.PathEscape(id)
}

func wrapPaymentMethod(req any) map[string]any {
	return map[string]any{"paymentMethod": req}
}
