package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
)

// OrderPricer - проверка правил покупки и расчёт стоимости/мест.
// Ошибки отказа - *domain.PurchaseError (errors.Is(err, domain.ErrInvalidPurchase)).
type OrderPricer interface {
	Price(ctx context.Context, requests []domain.TicketTypeRequest) (domain.OrderSummary, error)
}
