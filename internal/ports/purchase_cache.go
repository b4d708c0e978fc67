package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
)

// PurchaseCache - уже обработанные заявки (по request_id).
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1).
type PurchaseCache interface {
	// Get - (summary, true), если заявка уже обработана и запись не истекла.
	Get(ctx context.Context, requestID string) (domain.OrderSummary, bool)

	// Set - запомнить обработанную заявку.
	Set(ctx context.Context, requestID string, summary domain.OrderSummary) error
}
