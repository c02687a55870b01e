package flexpay

import (
	"context"
	"net/http"
	"net/url"

	"github.com/flexpay/flexpay-go/internal/client"
	"github.com/flexpay/flexpay-go/internal/types"
)

const transactionContainer = "transaction"

// TransactionService reads and settles existing transactions
type TransactionService struct {
	executor client.RequestExecutor
}

// Get returns a transaction by its FlexPay id
func (s *TransactionService) Get(ctx context.Context, transactionID string) (*Transaction, error) {
	return s.get(ctx, "/transactions/"+url.PathEscape(transactionID))
}

// GetByMerchantTransactionID returns a transaction by the id the merchant assigned
func (s *TransactionService) GetByMerchantTransactionID(ctx context.Context, merchantTransactionID string) (*Transaction, error) {
	return s.get(ctx, "/transactions/byMerchantTransactionId/"+url.PathEscape(merchantTransactionID))
}

// List returns one page of transactions
func (s *TransactionService) List(ctx context.Context, params ListParams) ([]TransactionListItem, error) {
	return client.Do[[]TransactionListItem](ctx, s.executor, client.Call{
		Method:  http.MethodGet,
		Path:    "/transactions",
		Query:   params.query(),
		Options: []types.RequestOption{types.WithListContainer("transactions")},
	})
}

// Capture settles an authorization
func (s *TransactionService) Capture(ctx context.Context, transactionID string, req CaptureRequest) (*Transaction, error) {
	return s.post(ctx, transactionID, "capture", req)
}

// Void cancels a transaction before settlement
func (s *TransactionService) Void(ctx context.Context, transactionID string, req VoidRequest) (*Transaction, error) {
	return s.post(ctx, transactionID, "void", req)
}

// Refund returns a full or partial amount of a settled transaction
func (s *TransactionService) Refund(ctx context.Context, transactionID string, req RefundRequest) (*Transaction, error) {
	return s.post(ctx, transactionID, "refund", req)
}

func (s *TransactionService) get(ctx context.Context, path string) (*Transaction, error) {
	return client.Do[*Transaction](ctx, s.executor, client.Call{
		Method:  http.MethodGet,
		Path:    path,
		Options: []types.RequestOption{types.WithEntityContainer(transactionContainer)},
	})
}

func (s *TransactionService) post(ctx context.Context, transactionID, action string, body any) (*Transaction, error) {
	return client.Do[*Transaction](ctx, s.executor, client.Call{
		Method:  http.MethodPost,
		Path:    "/transactions/" + url.PathEscape(transactionID) + "/" + action,
		Body:    map[string]any{transactionContainer: body},
		Options: []types.RequestOption{types.WithEntityContainer(transactionContainer)},
	})
}
