package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// QuoteLine - каноническая строка вывода для валидной заявки.
type QuoteLine struct {
	RequestID string `json:"request_id"`
	AccountID int64  `json:"account_id"`
	Seats     int    `json:"seats"`
	Cost      int    `json:"cost"`
}

// ValidatePurchaseFromJSON - строгий разбор заявки из JSON, проверка аккаунта и расчёт.
// Ошибки разбора оборачивают domain.ErrMalformedRequest, отказы - *domain.PurchaseError.
func ValidatePurchaseFromJSON(ctx context.Context, pricer ports.OrderPricer, raw []byte) (QuoteLine, error) {
	var req domain.PurchaseRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return QuoteLine{}, fmt.Errorf("%w: invalid json: %v", domain.ErrMalformedRequest, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return QuoteLine{}, fmt.Errorf("%w: invalid json: trailing data", domain.ErrMalformedRequest)
	}

	if err := domain.ValidateAccountID(req.AccountID); err != nil {
		return QuoteLine{}, err
	}
	summary, err := pricer.Price(ctx, req.Tickets)
	if err != nil {
		return QuoteLine{}, err
	}

	return QuoteLine{
		RequestID: req.RequestID,
		AccountID: req.AccountID,
		Seats:     summary.Seats,
		Cost:      summary.Cost,
	}, nil
}

// describe - короткое описание причины отбраковки для stderr.
func describe(err error) string {
	if reason, ok := domain.ReasonOf(err); ok {
		return fmt.Sprintf("%s: %v", reason, err)
	}
	return err.Error()
}
