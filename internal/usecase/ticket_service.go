package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Gunvolt24/wb_tickets/internal/usecase"

var _ ports.TicketService = (*TicketService)(nil)

// TicketService - покупка билетов: проверка аккаунта, расчёт, оплата, бронирование мест.
type TicketService struct {
	pricer    ports.OrderPricer
	payments  ports.TicketPaymentService
	seats     ports.SeatReservationService
	processed ports.PurchaseCache
	log       ports.Logger
	tracer    trace.Tracer
}

// NewTicketService - DI-конструктор.
func NewTicketService(
	pricer ports.OrderPricer,
	payments ports.TicketPaymentService,
	seats ports.SeatReservationService,
	processed ports.PurchaseCache,
	log ports.Logger,
) *TicketService {
	return &TicketService{
		pricer:    pricer,
		payments:  payments,
		seats:     seats,
		processed: processed,
		log:       log,
		tracer:    otel.Tracer(tracerName),
	}
}

// QuoteTickets - только расчёт, без проверки аккаунта и без внешних вызовов.
func (s *TicketService) QuoteTickets(ctx context.Context, requests []domain.TicketTypeRequest) (domain.OrderSummary, error) {
	return s.pricer.Price(ctx, requests)
}

// PurchaseTickets - проверяет аккаунт и заявку, затем списывает оплату и бронирует места.
// Ошибки отказа - *domain.PurchaseError; ошибки платёжного шлюза и бронирования
// возвращаются как есть. Если бронирование упало после оплаты, оплата не откатывается.
func (s *TicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests []domain.TicketTypeRequest,
) (summary domain.OrderSummary, err error) {
	ctx, span := s.tracer.Start(ctx, "PurchaseTickets", trace.WithAttributes(
		attribute.Int64("account.id", accountID),
		attribute.Int("tickets.entries", len(requests)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err = domain.ValidateAccountID(accountID); err != nil {
		s.reject(ctx, err)
		return domain.OrderSummary{}, err
	}
	ctx = ctxmeta.WithAccountID(ctx, accountID)

	summary, err = s.pricer.Price(ctx, requests)
	if err != nil {
		s.reject(ctx, err)
		return domain.OrderSummary{}, err
	}
	span.SetAttributes(attribute.Int("order.seats", summary.Seats), attribute.Int("order.cost", summary.Cost))

	s.log.Infof(ctx, "requesting payment account_id=%d amount=%d", accountID, summary.Cost)
	if err = s.payments.MakePayment(ctx, accountID, summary.Cost); err != nil {
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomePaymentFailed).Inc()
		s.log.Errorf(ctx, "payment failed account_id=%d amount=%d err=%v", accountID, summary.Cost, err)
		return domain.OrderSummary{}, err
	}
	metrics.PaymentAmountTotal.Add(float64(summary.Cost))

	s.log.Infof(ctx, "reserving %d seats account_id=%d", summary.Seats, accountID)
	if err = s.seats.ReserveSeat(ctx, accountID, summary.Seats); err != nil {
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeReservationFailed).Inc()
		s.log.Errorf(ctx, "seat reservation failed after payment account_id=%d seats=%d err=%v",
			accountID, summary.Seats, err)
		return domain.OrderSummary{}, err
	}

	metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	countSold(requests)
	return summary, nil
}

// PurchaseFromMessage - покупка по заявке из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields, без хвоста) -> иначе domain.ErrMalformedRequest;
//  2. заявка с уже обработанным request_id пропускается;
//  3. PurchaseTickets;
//  4. request_id запоминается в кэше.
func (s *TicketService) PurchaseFromMessage(ctx context.Context, raw []byte) error {
	var req domain.PurchaseRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		if errors.Is(err, domain.ErrMalformedRequest) {
			return err
		}
		return fmt.Errorf("%w: invalid json: %v", domain.ErrMalformedRequest, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", domain.ErrMalformedRequest)
	}

	ctx = ctxmeta.WithRequestID(ctx, req.RequestID)

	if req.RequestID != "" {
		if prev, seen := s.processed.Get(ctx, req.RequestID); seen {
			s.log.Infof(ctx, "duplicate purchase request skipped request_id=%s seats=%d cost=%d",
				req.RequestID, prev.Seats, prev.Cost)
			return nil
		}
	}

	summary, err := s.PurchaseTickets(ctx, req.AccountID, req.Tickets)
	if err != nil {
		return fmt.Errorf("purchase request_id=%s: %w", req.RequestID, err)
	}

	if req.RequestID != "" {
		if err := s.processed.Set(ctx, req.RequestID, summary); err != nil {
			s.log.Warnf(ctx, "cache.Set failed request_id=%s err=%v", req.RequestID, err)
		}
	}

	s.log.Infof(ctx, "purchase completed request_id=%s seats=%d cost=%d", req.RequestID, summary.Seats, summary.Cost)
	return nil
}

// reject - учёт и лог отказа в покупке.
func (s *TicketService) reject(ctx context.Context, err error) {
	reason, _ := domain.ReasonOf(err)
	metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
	metrics.PurchaseRejections.WithLabelValues(string(reason)).Inc()
	s.log.Infof(ctx, "purchase rejected reason=%s: %v", reason, err)
}

func countSold(requests []domain.TicketTypeRequest) {
	for _, req := range requests {
		if req.Type.Valid() && req.Quantity > 0 {
			metrics.TicketsSold.WithLabelValues(req.Type.String()).Add(float64(req.Quantity))
		}
	}
}
