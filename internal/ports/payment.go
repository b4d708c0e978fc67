package ports

import "context"

// TicketPaymentService - внешний платёжный шлюз. Ошибки пробрасываются вызывающему как есть.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error
}
