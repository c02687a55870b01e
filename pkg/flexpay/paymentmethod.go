package flexpay

import "time"

// CreditCard is raw card data sent for tokenization
type CreditCard struct {
	CreditCardNumber string  `json:"creditCardNumber"`
	ExpiryMonth      string  `json:"expiryMonth"`
	ExpiryYear       string  `json:"expiryYear"`
	CVV              *string `json:"cvv"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	FullName         *string `json:"fullName"`
	Address1         string  `json:"address1"`
	Address2         *string `json:"address2"`
	PostalCode       string  `json:"postalCode"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Country          string  `json:"country"`
	Email            *string `json:"email"`
	PhoneNumber      *string `json:"phoneNumber"`
}

// GatewayPaymentMethodDetails references a payment method already stored at a gateway
type GatewayPaymentMethodDetails struct {
	GatewayPaymentMethodID     string  `json:"gatewayPaymentMethodId"`
	MerchantAccountReferenceID string  `json:"merchantAccountReferenceId"`
	FirstName                  string  `json:"firstName"`
	LastName                   string  `json:"lastName"`
	FullName                   *string `json:"fullName"`
	Address1                   string  `json:"address1"`
	Address2                   *string `json:"address2"`
	PostalCode                 string  `json:"postalCode"`
	City                       string  `json:"city"`
	State                      string  `json:"state"`
	Country                    string  `json:"country"`
	Email                      *string `json:"email"`
	PhoneNumber                *string `json:"phoneNumber"`
	ExpiryMonth                string  `json:"expiryMonth"`
	ExpiryYear                 string  `json:"expiryYear"`
	FirstSixDigits             *string `json:"firstSixDigits"`
	LastFourDigits             *string `json:"lastFourDigits"`
}

type TokenizeCreditCardRequest struct {
	CustomerID *string    `json:"customerId"`
	CreditCard CreditCard `json:"creditCard"`
}

type TokenizeGatewayPaymentMethodRequest struct {
	CustomerID           string                      `json:"customerId"`
	GatewayPaymentMethod GatewayPaymentMethodDetails `json:"gatewayPaymentMethod"`
}

// UpdatePaymentMethodRequest changes the mutable fields of a payment method.
// Nil fields are left unchanged.
type UpdatePaymentMethodRequest struct {
	ExpiryMonth *string `json:"expiryMonth,omitempty"`
	ExpiryYear  *string `json:"expiryYear,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	FullName    *string `json:"fullName,omitempty"`
	Address1    *string `json:"address1,omitempty"`
	Address2    *string `json:"address2,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Country     *string `json:"country,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// PaymentMethodTransaction is returned by every operation that changes a payment method
type PaymentMethodTransaction struct {
	TransactionID     string            `json:"transactionId"`
	TransactionDate   time.Time         `json:"transactionDate"`
	TransactionStatus TransactionStatus `json:"transactionStatus"`
	Message           string            `json:"message"`
	ResponseCode      ResponseCode      `json:"responseCode"`
	TransactionType   TransactionType   `json:"transactionType"`
	CustomerID        *string           `json:"customerId"`
	PaymentMethod     *PaymentMethod    `json:"paymentMethod"`
}

type recacheRequest struct {
	PaymentMethod struct {
		CreditCard struct {
			CVV string `json:"cvv"`
		} `json:"creditCard"`
	} `json:"paymentMethod"`
}
