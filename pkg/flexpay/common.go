package flexpay

import "time"

// Address is a postal address. Nil fields are omitted.
type Address struct {
	Address1   *string `json:"address1"`
	Address2   *string `json:"address2"`
	PostalCode *string `json:"postalCode"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
}

// PaymentPlan describes a recurring billing plan
type PaymentPlan struct {
	SKU          *string `json:"sku"`
	Category     *string `json:"category"`
	BillingPlan  *string `json:"billingPlan"`
	BillingCycle *int    `json:"billingCycle"`
}

// References links a transaction to one processed outside FlexPay
type References struct {
	PreviousTransaction *PreviousTransaction `json:"PreviousTransaction,omitempty"`
}

type PreviousTransaction struct {
	MerchantAccountReferenceID *string    `json:"merchantAccountReferenceId"`
	GatewayCode                *string    `json:"gatewayCode"`
	GatewayMessage             *string    `json:"gatewayMesage"`
	TransactionDate            *time.Time `json:"transactionDate"`
}

// GatewayResponse carries the processor verification results
type GatewayResponse struct {
	AvsCode     AvsResponseCode `json:"avsCode"`
	AvsMessage  string          `json:"avsMessage"`
	CvvCode     CvvResponseCode `json:"cvvCode"`
	CvvMessage  string          `json:"cvvMessage"`
	ErrorCode   string          `json:"errorCode"`
	ErrorDetail string          `json:"errorDetail"`
}

// GatewaySpecificFields holds free form processor data. The API nests a
// property of the same name inside.
type GatewaySpecificFields struct {
	GatewaySpecificFields map[string]any `json:"gatewaySpecificFields"`
}

// PaymentMethod is a stored payment method. Card numbers are always masked.
type PaymentMethod struct {
	PaymentMethodID   *string           `json:"paymentMethodId"`
	CreditCardNumber  string            `json:"creditCardNumber"`
	ExpiryMonth       string            `json:"expiryMonth"`
	ExpiryYear        string            `json:"expiryYear"`
	CVV               *string           `json:"cvv"`
	FirstName         *string           `json:"firstName"`
	LastName          *string           `json:"lastName"`
	FullName          *string           `json:"fullName"`
	CustomerID        *string           `json:"customerId"`
	Address1          string            `json:"address1"`
	Address2          *string           `json:"address2"`
	PostalCode        string            `json:"postalCode"`
	City              string            `json:"city"`
	State             string            `json:"state"`
	Country           string            `json:"country"`
	Email             *string           `json:"email"`
	PhoneNumber       *string           `json:"phoneNumber"`
	PaymentMethodType PaymentMethodType `json:"paymentMethodType"`
	Fingerprint       *string           `json:"fingerprint"`
	LastFourDigits    string            `json:"lastFourDigits"`
	FirstSixDigits    string            `json:"firstSixDigits"`
	CardType          *CardType         `json:"cardType"`
	DateCreated       *time.Time        `json:"dateCreated"`
	StorageState      *StorageState     `json:"storageState"`

	// Set for payment methods stored at a gateway
	GatewayPaymentMethodID     *string `json:"gatewayPaymentMethodId,omitempty"`
	MerchantAccountReferenceID *string `json:"merchantAccountReferenceId,omitempty"`
}
