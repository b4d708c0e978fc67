package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader - минимальный контракт над kafka.Reader, чтобы подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageHandler - покупка по сырому сообщению (usecase.TicketService).
type messageHandler interface {
	PurchaseFromMessage(ctx context.Context, raw []byte) error
}

// Consumer - чтение заявок на покупку из топика.
// Покупки не повторяются: оффсет коммитится после любой обработки сообщения.
type Consumer struct {
	reader         reader
	handler        messageHandler
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer - конструктор. ReaderConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, handler messageHandler, log ports.Logger) *Consumer {
	c := newConsumer(kafka.NewReader(cfg.ReaderConfig()), handler, log, cfg)
	c.jitterRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	return c
}

func newConsumer(r reader, handler messageHandler, log ports.Logger, cfg *ConsumerConfig) *Consumer {
	return &Consumer{
		reader:         r,
		handler:        handler,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, 5*time.Second),
		retryInitial:   orDefault(cfg.RetryInitial, time.Second),
		retryMax:       orDefault(cfg.RetryMax, 30*time.Second),
		jitterRand:     rand.New(rand.NewSource(1)),
	}
}

// Run - основной цикл:
// 1) читаем сообщение без авто-коммита;
// 2) передаём его в сервис покупки (с таймаутом);
// 3) коммитим оффсет при любом исходе - повторной покупки по тому же сообщению не будет.
// Ошибки FetchMessage (брокер/сеть) повторяются с экспоненциальным backoff.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		c.handleMessage(ctx, rc.Topic, &msg)
		c.commitSafely(ctx, &msg)
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
