package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
)

// TicketService - сервис покупки билетов, как его видят транспорты.
type TicketService interface {
	QuoteTickets(ctx context.Context, requests []domain.TicketTypeRequest) (domain.OrderSummary, error)
	PurchaseTickets(ctx context.Context, accountID int64, requests []domain.TicketTypeRequest) (domain.OrderSummary, error)
}
