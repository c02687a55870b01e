package flexpay

// TransactionStatus is the numeric outcome of a transaction
type TransactionStatus int

const (
	TransactionStatusApproved TransactionStatus = 1
	TransactionStatusDeclined TransactionStatus = 2
)

type TransactionType string

const (
	TransactionTypeAuthorize                  TransactionType = "Authorize"
	TransactionTypeCharge                     TransactionType = "Charge"
	TransactionTypeCapture                    TransactionType = "Capture"
	TransactionTypeCreateGatewayPaymentMethod TransactionType = "CreateGatewayPaymentMethod"
	TransactionTypeVoid                       TransactionType = "Void"
	TransactionTypeRefund                     TransactionType = "Refund"
)

type PaymentMethodType string

const (
	PaymentMethodTypeCreditCard             PaymentMethodType = "CreditCard"
	PaymentMethodTypeGatewayPaymentMethodID PaymentMethodType = "GatewayPaymentMethodId"
)

type GatewayType string

const (
	GatewayTypeUSAePay    GatewayType = "usa_epay"
	GatewayTypeCheckoutV2 GatewayType = "checkout_v2"
	GatewayTypeTest       GatewayType = "test"
)

type CardType string

const (
	CardTypeAmericanExpress CardType = "AMERICAN EXPRESS"
	CardTypeVisa            CardType = "VISA"
)

type StorageState string

const (
	StorageStateStored StorageState = "Stored"
	StorageStateCached StorageState = "Cached"
)

type PaymentModel string

const (
	PaymentModelOneTime      PaymentModel = "onetime"
	PaymentModelSubscription PaymentModel = "subscription"
	PaymentModelInstallment  PaymentModel = "installment"
)

// AvsResponseCode is the address verification result
type AvsResponseCode string

const (
	AvsZipCodeDoesNotMatch AvsResponseCode = "A"
	AvsUnsupportedIndustry AvsResponseCode = "E"
	AvsAddressDoesNotMatch AvsResponseCode = "N"
	AvsNotSupported        AvsResponseCode = "S"
	AvsNineDigitMatch      AvsResponseCode = "X"
	AvsFiveDigitMatch      AvsResponseCode = "Y"
)

// CvvResponseCode is the card verification result
type CvvResponseCode string

const (
	CvvIssuerNotCertified CvvResponseCode = "U"
	CvvMismatch           CvvResponseCode = "N"
	CvvMatch              CvvResponseCode = "M"
	CvvNoResults          CvvResponseCode = "Q"
	CvvNotProcessed       CvvResponseCode = "P"
	CvvShouldBePresent    CvvResponseCode = "S"
)

// ResponseCode is the business outcome code of a transaction. Declines are
// reported here on a successful response, never as errors.
type ResponseCode string

const (
	ResponseCodeApproved        ResponseCode = "10000"
	ResponseCodeReversalSuccess ResponseCode = "10001"
)

// ResponseCategory groups response codes by their leading digit
type ResponseCategory string

const (
	ResponseCategorySuccess       ResponseCategory = "success"
	ResponseCategorySoftDecline   ResponseCategory = "soft_decline"
	ResponseCategoryHardDecline   ResponseCategory = "hard_decline"
	ResponseCategoryRisk          ResponseCategory = "risk"
	ResponseCategoryAPIValidation ResponseCategory = "api_validation"
	ResponseCategoryUnknown       ResponseCategory = "unknown"
)

// Category classifies the code. Soft declines may succeed when retried later,
// hard declines will not.
func (c ResponseCode) Category() ResponseCategory {
	if len(c) == 0 {
		return ResponseCategoryUnknown
	}
	switch c[0] {
	case '1':
		return ResponseCategorySuccess
	case '2':
		return ResponseCategorySoftDecline
	case '3':
		return ResponseCategoryHardDecline
	case '4':
		return ResponseCategoryRisk
	case '5':
		return ResponseCategoryAPIValidation
	default:
		return ResponseCategoryUnknown
	}
}

func (c ResponseCode) IsApproved() bool {
	return c.Category() == ResponseCategorySuccess
}
