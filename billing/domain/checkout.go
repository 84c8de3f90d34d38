package domain

// PaymentInput is the flat single-amount checkout request.
type PaymentInput struct {
	AccountID       string
	PaymentMethodID string
	Currency        string
	Amount          int64
	Description     string
	SaveMethod      bool
	IdempotencyKey  string
}

// ItemsPaymentInput is the multi-item checkout request.
type ItemsPaymentInput struct {
	AccountID       string
	PaymentMethodID string
	Currency        string
	Items           []LineItem
	SaveMethod      bool
	IdempotencyKey  string
}
