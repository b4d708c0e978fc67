package domain

// PurchaseRequest - заявка на покупку от одного аккаунта.
// RequestID необязателен; консьюмер Kafka использует его для отсечения дублей.
type PurchaseRequest struct {
	RequestID string              `json:"request_id,omitempty"`
	AccountID int64               `json:"account_id"`
	Tickets   []TicketTypeRequest `json:"tickets"`
}

// ValidateAccountID - идентификатор аккаунта должен быть положительным (0 = не передан).
func ValidateAccountID(accountID int64) error {
	if accountID <= 0 {
		return NewPurchaseError(ReasonInvalidAccount, "Account ID is invalid")
	}
	return nil
}
