package ports

import "context"

// MessageConsumer - входящий поток заявок на покупку (Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
