//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/wb_tickets/internal/cache/memory"
	"github.com/Gunvolt24/wb_tickets/internal/domain"
	ikafka "github.com/Gunvolt24/wb_tickets/internal/kafka"
	"github.com/Gunvolt24/wb_tickets/internal/pricing"
	pgrepo "github.com/Gunvolt24/wb_tickets/internal/repo/postgres"
	"github.com/Gunvolt24/wb_tickets/internal/testutil"
	"github.com/Gunvolt24/wb_tickets/internal/usecase"
	"github.com/Gunvolt24/wb_tickets/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

type stack struct {
	ctx    context.Context
	ledger *pgrepo.Ledger
	kf     *testutil.KafkaEnv
	svc    *usecase.TicketService
	log    *logger.ZapLogger
}

// newStack - Postgres (журнал) + Redpanda + сервис покупки поверх журнала.
func newStack(t *testing.T) *stack {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, pgrepo.Migrate(ctxStart, pg.DSN))

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "purchases-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	ledger := pgrepo.NewLedger(pg.Pool)
	svc := usecase.NewTicketService(pricing.NewPricer(), ledger, ledger, cachemem.NewLRUCacheTTL(100, time.Minute), logg)

	return &stack{ctx: ctx, ledger: ledger, kf: kf, svc: svc, log: logg}
}

func (s *stack) startConsumer(t *testing.T, topic, group, startOffset string) {
	t.Helper()

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    startOffset,
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, s.svc, s.log)

	runCtx, cancelRun := context.WithCancel(s.ctx)
	t.Cleanup(func() {
		cancelRun()
		_ = consumer.Close()
	})
	go func() { _ = consumer.Run(runCtx) }()
}

// waitTotals - ждёт, пока журнал по аккаунту не станет равен want.
func (s *stack) waitTotals(t *testing.T, accountID int64, want pgrepo.AccountTotals) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for {
		got, err := s.ledger.Totals(s.ctx, accountID)
		require.NoError(t, err)
		if got == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("account %d: want %+v, got %+v", accountID, want, got)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func TestKafka_ValidPurchase_Recorded_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group, "first")

	p := testutil.MakePurchase()
	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, testutil.MustJSON(p)))

	s.waitTotals(t, p.AccountID, pgrepo.AccountTotals{Paid: 50, Seats: 3})
}

// Мусор и отказ в покупке коммитятся и пропускаются, следующая заявка проходит
func TestKafka_SkipInvalid_ThenRecordValid_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group, "first")

	account := testutil.NewAccountID()

	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, []byte("not-a-json")))

	infantsOnly := testutil.MakePurchase(
		testutil.WithAccount(account),
		testutil.WithTickets(domain.NewTicketTypeRequest(domain.TicketTypeInfant, 1)),
	)
	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, testutil.MustJSON(infantsOnly)))

	ok := testutil.MakePurchase(
		testutil.WithAccount(account),
		testutil.WithTickets(domain.NewTicketTypeRequest(domain.TicketTypeAdult, 1)),
	)
	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, testutil.MustJSON(ok)))

	s.waitTotals(t, account, pgrepo.AccountTotals{Paid: 20, Seats: 1})
}

// Повтор заявки с тем же request_id не списывает оплату второй раз
func TestKafka_DuplicateRequestID_ChargedOnce_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group, "first")

	p := testutil.MakePurchase()
	raw := testutil.MustJSON(p)
	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, raw))
	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, raw))

	// маркер: следующая заявка того же аккаунта без повтора
	marker := testutil.MakePurchase(
		testutil.WithAccount(p.AccountID),
		testutil.WithTickets(domain.NewTicketTypeRequest(domain.TicketTypeAdult, 1)),
	)
	require.NoError(t, testutil.WriteMessage(s.ctx, s.kf.Brokers, topic, testutil.MustJSON(marker)))

	s.waitTotals(t, p.AccountID, pgrepo.AccountTotals{Paid: 70, Seats: 4})
}

// Публикация команд оплаты/бронирования в свои топики с ключом = account_id
func TestCommandPublisher_Publishes_TC(t *testing.T) {
	s := newStack(t)

	payments, _ := testutil.UniqueTopicAndGroup("ticket-payments-" + safe(t))
	reservations, _ := testutil.UniqueTopicAndGroup("seat-reservations-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], payments))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], reservations))

	pub := ikafka.NewCommandPublisher(&ikafka.PublisherConfig{
		Brokers:           s.kf.Brokers,
		PaymentsTopic:     payments,
		ReservationsTopic: reservations,
	}, s.log)
	t.Cleanup(func() { _ = pub.Close() })

	svc := usecase.NewTicketService(pricing.NewPricer(), pub, pub, cachemem.NewLRUCacheTTL(10, time.Minute), s.log)
	summary, err := svc.PurchaseTickets(s.ctx, 12345, testutil.MakePurchase().Tickets)
	require.NoError(t, err)
	require.Equal(t, domain.OrderSummary{Seats: 3, Cost: 50}, summary)

	pm, err := testutil.ReadN(s.ctx, s.kf.Brokers, payments, 1)
	require.NoError(t, err)
	require.Equal(t, "12345", string(pm[0].Key))
	require.JSONEq(t, `{"account_id":12345,"amount":50}`, string(pm[0].Value))

	rm, err := testutil.ReadN(s.ctx, s.kf.Brokers, reservations, 1)
	require.NoError(t, err)
	require.JSONEq(t, `{"account_id":12345,"seats":3}`, string(rm[0].Value))
}
