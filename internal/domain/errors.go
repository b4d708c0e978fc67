package domain

import "errors"

var (
	// ErrInvalidPurchase - базовая (sentinel) ошибка отказа в покупке.
	ErrInvalidPurchase = errors.New("invalid purchase")

	// ErrMalformedRequest - входные данные транспорта не разобраны (битый JSON, неизвестная категория).
	ErrMalformedRequest = errors.New("malformed purchase request")
)

// Reason - машиночитаемая причина отказа.
type Reason string

const (
	ReasonInvalidAccount   Reason = "invalid_account"
	ReasonNegativeQuantity Reason = "negative_quantity"
	ReasonTooManyTickets   Reason = "too_many_tickets"
	ReasonAdultRequired    Reason = "adult_required"
	ReasonTooManyInfants   Reason = "too_many_infants"
	ReasonEmptyOrder       Reason = "empty_order"
)

// PurchaseError - отказ в покупке с причиной и человекочитаемым сообщением.
// Error() возвращает сообщение как есть; errors.Is(err, ErrInvalidPurchase) == true.
type PurchaseError struct {
	Reason  Reason
	Message string
}

func NewPurchaseError(reason Reason, message string) *PurchaseError {
	return &PurchaseError{Reason: reason, Message: message}
}

func (e *PurchaseError) Error() string { return e.Message }

func (e *PurchaseError) Unwrap() error { return ErrInvalidPurchase }

// ReasonOf - причина отказа, если err (или обёрнутая в нём ошибка) - PurchaseError.
func ReasonOf(err error) (Reason, bool) {
	var pe *PurchaseError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return "", false
}
