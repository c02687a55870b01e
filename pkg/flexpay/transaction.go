package flexpay

import "time"

// Transaction is the result of every transaction producing operation. A
// decline is a Transaction with a non approved ResponseCode, not an error.
type Transaction struct {
	Response                      *GatewayResponse       `json:"response"`
	PaymentMethod                 *PaymentMethod         `json:"paymentMethod"`
	TransactionID                 string                 `json:"transactionId"`
	TransactionDate               time.Time              `json:"transactionDate"`
	TransactionStatus             TransactionStatus      `json:"transactionStatus"`
	Message                       string                 `json:"message"`
	ResponseCode                  ResponseCode           `json:"responseCode"`
	TransactionType               TransactionType        `json:"transactionType"`
	MerchantTransactionID         string                 `json:"merchantTransactionId"`
	CustomerID                    *string                `json:"customerId"`
	CurrencyCode                  string                 `json:"currencyCode"`
	Amount                        Amount                 `json:"amount"`
	GatewayToken                  *string                `json:"gatewayToken"`
	GatewayType                   *GatewayType           `json:"gatewayType"`
	GatewayTransactionID          *string                `json:"gatewayTransactionId"`
	MerchantAccountReferenceID    *string                `json:"merchantAccountReferenceId"`
	AssignedGatewayToken          *string                `json:"assignedGatewayToken"`
	OrderID                       *string                `json:"orderId"`
	RetryDate                     *time.Time             `json:"retryDate"`
	RetryCount                    int                    `json:"retryCount"`
	DateFirstAttempt              *time.Time             `json:"dateFirstAttempt"`
	Description                   *string                `json:"description"`
	ProductSKU                    *string                `json:"productSku,omitempty"`
	SubscriptionID                *string                `json:"subscriptionId,omitempty"`
	CustomerIP                    *string                `json:"customerIp"`
	ShippingAddress               *Address               `json:"shippingAddress"`
	ReferenceData                 *string                `json:"referenceData"`
	DisableCustomerRecovery       bool                   `json:"disableCustomerRecovery"`
	CustomVariable1               *string                `json:"customVariable1"`
	CustomVariable2               *string                `json:"customVariable2"`
	CustomVariable3               *string                `json:"customVariable3"`
	CustomVariable4               *string                `json:"customVariable4"`
	CustomVariable5               *string                `json:"customVariable5"`
	PaymentModel                  *PaymentModel          `json:"paymentModel,omitempty"`
	GatewaySpecificFields         *GatewaySpecificFields `json:"gatewaySpecificFields,omitempty"`
	GatewaySpecificResponseFields *GatewaySpecificFields `json:"gatewaySpecificResponseFields,omitempty"`
}

// Approved reports whether the gateway approved the transaction
func (t *Transaction) Approved() bool {
	return t.ResponseCode.IsApproved()
}

// TransactionListItem is the summary returned by Transactions.List. The
// gateway properties are top level, not nested.
type TransactionListItem struct {
	TransactionID                 string                 `json:"transactionId"`
	TransactionDate               time.Time              `json:"transactionDate"`
	TransactionStatus             TransactionStatus      `json:"transactionStatus"`
	TransactionType               TransactionType        `json:"transactionType"`
	Message                       string                 `json:"message"`
	Token                         *string                `json:"token,omitempty"`
	GatewayType                   *GatewayType           `json:"gatewayType,omitempty"`
	Name                          *string                `json:"name,omitempty"`
	ReferenceID                   *string                `json:"referenceId,omitempty"`
	GatewaySpecificFields         *GatewaySpecificFields `json:"gatewaySpecificFields,omitempty"`
	GatewaySpecificResponseFields *GatewaySpecificFields `json:"gatewaySpecificResponseFields,omitempty"`
}

// CaptureRequest settles a previous authorization. A nil Amount captures the
// authorized amount.
type CaptureRequest struct {
	MerchantTransactionID   string  `json:"merchantTransactionId"`
	Amount                  *Amount `json:"amount,omitempty"`
	DisableCustomerRecovery *bool   `json:"disableCustomerRecovery,omitempty"`
}

// VoidRequest cancels an unsettled transaction
type VoidRequest struct {
	MerchantTransactionID   string `json:"merchantTransactionId"`
	DisableCustomerRecovery *bool  `json:"disableCustomerRecovery,omitempty"`
}

// RefundRequest refunds a settled transaction. A nil Amount refunds in full.
type RefundRequest struct {
	MerchantTransactionID   string  `json:"merchantTransactionId"`
	Amount                  *Amount `json:"amount,omitempty"`
	DisableCustomerRecovery *bool   `json:"disableCustomerRecovery,omitempty"`
}
