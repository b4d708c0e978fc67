package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы покупки для PurchasesTotal.
const (
	OutcomeSuccess           = "success"
	OutcomeRejected          = "rejected"
	OutcomePaymentFailed     = "payment_failed"
	OutcomeReservationFailed = "reservation_failed"
)

var (
	PurchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Ticket purchase attempts by outcome",
		},
		[]string{"outcome"},
	)
	PurchaseRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchase_rejections_total",
			Help: "Rejected ticket purchases by reason",
		},
		[]string{"reason"},
	)
	TicketsSold = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Tickets sold by ticket type",
		},
		[]string{"type"},
	)
	PaymentAmountTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_payment_amount_total",
			Help: "Sum of amounts sent to the payment gateway",
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of commands published to Kafka",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_cache_operations_total",
			Help: "Processed-request cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "purchase_cache_size",
			Help: "Number of request ids currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister - регистрирует метрики в глобальном реестре (повторный вызов безопасен).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			PurchasesTotal, PurchaseRejections, TicketsSold, PaymentAmountTotal,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesPublished,
			CacheOps, CacheSize,
		)
	})
}
