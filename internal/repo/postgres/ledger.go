package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ ports.TicketPaymentService   = (*Ledger)(nil)
	_ ports.SeatReservationService = (*Ledger)(nil)
)

// Ledger - оплата и бронирование как записи в Postgres.
// Каждый вызов - отдельная строка; request_id берётся из контекста, если он есть.
type Ledger struct {
	pool *pgxpool.Pool
}

func NewLedger(pool *pgxpool.Pool) *Ledger { return &Ledger{pool: pool} }

func (l *Ledger) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	if _, err := l.pool.Exec(ctx, `
		INSERT INTO ticket_payments (account_id, amount, request_id)
		VALUES ($1, $2, $3)
	`, accountID, totalAmountToPay, requestID(ctx)); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (l *Ledger) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	if _, err := l.pool.Exec(ctx, `
		INSERT INTO seat_reservations (account_id, seats, request_id)
		VALUES ($1, $2, $3)
	`, accountID, totalSeatsToAllocate, requestID(ctx)); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// AccountTotals - суммарно оплачено и забронировано по аккаунту.
type AccountTotals struct {
	Paid  int64
	Seats int64
}

// Totals - агрегаты журнала по аккаунту (нули, если записей нет).
func (l *Ledger) Totals(ctx context.Context, accountID int64) (AccountTotals, error) {
	var t AccountTotals
	err := l.pool.QueryRow(ctx, `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM ticket_payments WHERE account_id = $1),
			(SELECT COALESCE(SUM(seats), 0) FROM seat_reservations WHERE account_id = $1)
	`, accountID).Scan(&t.Paid, &t.Seats)
	if err != nil {
		return AccountTotals{}, fmt.Errorf("select totals: %w", err)
	}
	return t, nil
}

func requestID(ctx context.Context) *string {
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		return &rid
	}
	return nil
}
