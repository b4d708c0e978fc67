package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/wb_tickets/config"
	"github.com/Gunvolt24/wb_tickets/internal/gateway"
	"github.com/Gunvolt24/wb_tickets/internal/kafka"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/internal/repo/postgres"
)

// Драйверы внешних сервисов оплаты и бронирования.
const (
	DriverLog      = "log"
	DriverKafka    = "kafka"
	DriverPostgres = "postgres"
)

// collaborators - сервисы оплаты и бронирования и функция освобождения их ресурсов.
type collaborators struct {
	payments ports.TicketPaymentService
	seats    ports.SeatReservationService
	close    func()
}

func buildCollaborators(ctx context.Context, cfg *config.Config, logg ports.Logger) (collaborators, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Gateway.Driver)) {
	case "", DriverLog:
		return collaborators{
			payments: gateway.NewLogPaymentService(logg),
			seats:    gateway.NewLogSeatReservationService(logg),
			close:    func() {},
		}, nil

	case DriverKafka:
		pub := kafka.NewCommandPublisher(&kafka.PublisherConfig{
			Brokers:           cfg.Kafka.Brokers,
			PaymentsTopic:     cfg.Kafka.PaymentsTopic,
			ReservationsTopic: cfg.Kafka.ReservationsTopic,
			WriteTimeout:      cfg.Kafka.WriteTimeout,
		}, logg)
		return collaborators{
			payments: pub,
			seats:    pub,
			close: func() {
				if err := pub.Close(); err != nil {
					logg.Warnf(ctx, "kafka publisher close error: %v", err)
				}
			},
		}, nil

	case DriverPostgres:
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
				return collaborators{}, fmt.Errorf("migrate ledger: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return collaborators{}, fmt.Errorf("postgres pool: %w", err)
		}
		ledger := postgres.NewLedger(pool)
		return collaborators{payments: ledger, seats: ledger, close: pool.Close}, nil

	default:
		return collaborators{}, fmt.Errorf("unknown gateway driver %q (want %s|%s|%s)",
			cfg.Gateway.Driver, DriverLog, DriverKafka, DriverPostgres)
	}
}
