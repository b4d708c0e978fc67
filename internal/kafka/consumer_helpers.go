package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// handleMessage обрабатывает одно сообщение: исход только логируется и считается в метриках.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.PurchaseFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
	case errors.Is(err, domain.ErrMalformedRequest), errors.Is(err, domain.ErrInvalidPurchase):
		// Битое сообщение или отказ в покупке
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "purchase rejected offset=%d: %v (skipped)", msg.Offset, err)
	default:
		// Сбой оплаты/бронирования/таймаут: повтор мог бы списать деньги дважды
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "purchase failed offset=%d: %v (not retried)", msg.Offset, err)
	}
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual - половина задержки фиксирована, вторая половина случайная.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
