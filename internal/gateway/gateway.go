// Пакет gateway - внешние сервисы оплаты и бронирования по умолчанию:
// только пишут в лог и всегда отвечают успехом.
package gateway

import (
	"context"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

var (
	_ ports.TicketPaymentService   = (*LogPaymentService)(nil)
	_ ports.SeatReservationService = (*LogSeatReservationService)(nil)
)

type LogPaymentService struct {
	log ports.Logger
}

func NewLogPaymentService(log ports.Logger) *LogPaymentService {
	return &LogPaymentService{log: log}
}

// MakePayment - пишет в лог сумму к оплате и возвращает nil.
func (p *LogPaymentService) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.log.Infof(ctx, "payment accepted account_id=%d amount=%d", accountID, totalAmountToPay)
	return nil
}

type LogSeatReservationService struct {
	log ports.Logger
}

func NewLogSeatReservationService(log ports.Logger) *LogSeatReservationService {
	return &LogSeatReservationService{log: log}
}

// ReserveSeat - пишет в лог число мест и возвращает nil.
func (s *LogSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Infof(ctx, "seats reserved account_id=%d seats=%d", accountID, totalSeatsToAllocate)
	return nil
}
