package flexpay

import "time"

// TransactionOptions are the optional fields shared by charge and authorize requests
type TransactionOptions struct {
	Description             *string       `json:"description,omitempty"`
	CustomerID              *string       `json:"customerId,omitempty"`
	CustomerIP              *string       `json:"customerIp,omitempty"`
	ShippingAddress         *Address      `json:"shippingAddress,omitempty"`
	GatewayToken            *string       `json:"gatewayToken,omitempty"`
	PaymentPlan             *PaymentPlan  `json:"paymentPlan,omitempty"`
	RetryCount              int           `json:"retryCount"`
	DateFirstAttempt        *time.Time    `json:"dateFirstAttempt,omitempty"`
	DisableCustomerRecovery *bool         `json:"disableCustomerRecovery,omitempty"`
	ReferenceData           *string       `json:"referenceData,omitempty"`
	CustomVariable1         *string       `json:"customVariable1,omitempty"`
	CustomVariable2         *string       `json:"customVariable2,omitempty"`
	CustomVariable3         *string       `json:"customVariable3,omitempty"`
	CustomVariable4         *string       `json:"customVariable4,omitempty"`
	CustomVariable5         *string       `json:"customVariable5,omitempty"`
	PaymentModel            *PaymentModel `json:"paymentModel,omitempty"`
	References              *References   `json:"References,omitempty"`
}

// CardDetails is raw card data sent with a charge or authorization
type CardDetails struct {
	MerchantAccountReferenceID *string `json:"merchantAccountReferenceId,omitempty"`
	CreditCardNumber           string  `json:"creditCardNumber"`
	ExpiryMonth                string  `json:"expiryMonth"`
	ExpiryYear                 string  `json:"expiryYear"`
	CVV                        *string `json:"cvv,omitempty"`
	FirstName                  *string `json:"firstName,omitempty"`
	LastName                   *string `json:"lastName,omitempty"`
	FullName                   *string `json:"fullName,omitempty"`
	Address1                   *string `json:"address1,omitempty"`
	Address2                   *string `json:"address2,omitempty"`
	PostalCode                 string  `json:"postalCode"`
	City                       string  `json:"city"`
	State                      string  `json:"state"`
	Country                    *string `json:"country,omitempty"`
	Email                      *string `json:"email,omitempty"`
	PhoneNumber                *string `json:"phoneNumber,omitempty"`
}

// GatewayCardDetails references card data stored at a gateway
type GatewayCardDetails struct {
	GatewayPaymentMethodID     *string `json:"gatewayPaymentMethodId,omitempty"`
	MerchantAccountReferenceID *string `json:"merchantAccountReferenceId,omitempty"`
	FirstSixDigits             *string `json:"firstSixDigits,omitempty"`
	LastFourDigits             *string `json:"lastFourDigits,omitempty"`
	FirstName                  *string `json:"firstName,omitempty"`
	LastName                   *string `json:"lastName,omitempty"`
	FullName                   *string `json:"fullName,omitempty"`
	Address1                   *string `json:"address1,omitempty"`
	Address2                   *string `json:"address2,omitempty"`
	PostalCode                 string  `json:"postalCode"`
	City                       string  `json:"city"`
	State                      string  `json:"state"`
	Country                    *string `json:"country,omitempty"`
	Email                      *string `json:"email,omitempty"`
	PhoneNumber                *string `json:"phoneNumber,omitempty"`
}

// CreditCardTransactionRequest charges or authorizes raw card data. These
// calls are routed through the transparent gateway when one is configured.
type CreditCardTransactionRequest struct {
	MerchantTransactionID string      `json:"merchantTransactionId"`
	OrderID               string      `json:"orderId"`
	CurrencyCode          string      `json:"currencyCode"`
	Amount                Amount      `json:"amount"`
	RetainOnSuccess       bool        `json:"retainOnSuccess"`
	PaymentMethod         CardDetails `json:"paymentMethod"`
	TransactionOptions
}

// TokenizedTransactionRequest charges or authorizes a tokenized payment method
type TokenizedTransactionRequest struct {
	MerchantTransactionID string `json:"merchantTransactionId"`
	OrderID               string `json:"orderId"`
	CurrencyCode          string `json:"currencyCode"`
	Amount                Amount `json:"amount"`
	PaymentMethodID       string `json:"paymentMethodId"`
	TransactionOptions
}

// GatewayTransactionRequest charges or authorizes a payment method stored at a gateway
type GatewayTransactionRequest struct {
	MerchantTransactionID string             `json:"merchantTransactionId"`
	OrderID               string             `json:"orderId"`
	CurrencyCode          string             `json:"currencyCode"`
	Amount                Amount             `json:"amount"`
	PaymentMethod         GatewayCardDetails `json:"paymentMethod"`
	TransactionOptions
}

type (
	ChargeCreditCardRequest             = CreditCardTransactionRequest
	ChargeTokenizedPaymentMethodRequest = TokenizedTransactionRequest
	ChargeGatewayPaymentMethodRequest   = GatewayTransactionRequest

	AuthorizeCreditCardRequest             = CreditCardTransactionRequest
	AuthorizeTokenizedPaymentMethodRequest = TokenizedTransactionRequest
	AuthorizeGatewayPaymentMethodRequest   = GatewayTransactionRequest
)
