package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var (
	_ ports.TicketPaymentService   = (*CommandPublisher)(nil)
	_ ports.SeatReservationService = (*CommandPublisher)(nil)
)

// writer - минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig - куда отправлять команды оплаты и бронирования.
type PublisherConfig struct {
	Brokers           []string
	PaymentsTopic     string
	ReservationsTopic string
	WriteTimeout      time.Duration
}

// Writer - kafka.Writer без топика по умолчанию: топик задаётся в каждом сообщении.
// Hash-балансер: команды одного аккаунта попадают в одну партицию.
func (c *PublisherConfig) Writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           wt,
		AllowAutoTopicCreation: true,
	}
}

// PaymentCommand - команда на списание суммы с аккаунта.
type PaymentCommand struct {
	AccountID int64 `json:"account_id"`
	Amount    int   `json:"amount"`
}

// ReservationCommand - команда на бронирование мест для аккаунта.
type ReservationCommand struct {
	AccountID int64 `json:"account_id"`
	Seats     int   `json:"seats"`
}

// CommandPublisher - оплата и бронирование через публикацию команд в Kafka.
// Вызов успешен, когда брокер подтвердил запись (RequireAll).
type CommandPublisher struct {
	writer            writer
	paymentsTopic     string
	reservationsTopic string
	log               ports.Logger
	closeOnce         sync.Once
}

func NewCommandPublisher(cfg *PublisherConfig, log ports.Logger) *CommandPublisher {
	return newCommandPublisher(cfg.Writer(), cfg, log)
}

func newCommandPublisher(w writer, cfg *PublisherConfig, log ports.Logger) *CommandPublisher {
	return &CommandPublisher{
		writer:            w,
		paymentsTopic:     cfg.PaymentsTopic,
		reservationsTopic: cfg.ReservationsTopic,
		log:               log,
	}
}

func (p *CommandPublisher) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	return p.publish(ctx, p.paymentsTopic, accountID, PaymentCommand{AccountID: accountID, Amount: totalAmountToPay})
}

func (p *CommandPublisher) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	return p.publish(ctx, p.reservationsTopic, accountID, ReservationCommand{AccountID: accountID, Seats: totalSeatsToAllocate})
}

func (p *CommandPublisher) publish(ctx context.Context, topic string, accountID int64, cmd any) error {
	value, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal command: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(accountID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	metrics.KafkaMessagesPublished.WithLabelValues(topic).Inc()
	p.log.Infof(ctx, "command published topic=%s account_id=%d", topic, accountID)
	return nil
}

// Close - закрывает writer (дожидается отправки буфера).
func (p *CommandPublisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
