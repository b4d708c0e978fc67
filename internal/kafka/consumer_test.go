package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/kafka/mocks"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "purchases", GroupID: "g1", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, h messageHandler) *Consumer {
	return newConsumer(r, h, nopLogger{}, &ConsumerConfig{
		ProcessTimeout: 30 * time.Millisecond,
		RetryInitial:   5 * time.Millisecond,
		RetryMax:       10 * time.Millisecond,
	})
}

// runOneMessage: первый fetch отдаёт msg, второй блокируется до отмены; ждём выхода Run.
func runOneMessage(t *testing.T, r *mocks.Mockreader, c *Consumer, msg kafka.Message) {
	t.Helper()

	reached := make(chan struct{})
	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	first := r.EXPECT().FetchMessage(gomock.Any()).Return(msg, nil)
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			close(reached)
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).After(first)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	select {
	case <-reached:
	case <-time.After(time.Second):
		t.Fatal("second fetch not reached")
	}
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func TestRun_Commits_WhateverTheOutcome(t *testing.T) {
	tests := []struct {
		name   string
		result error
	}{
		{"success", nil},
		{"malformed", fmt.Errorf("%w: invalid json", domain.ErrMalformedRequest)},
		{"rejected", fmt.Errorf("purchase request_id=r1: %w",
			domain.NewPurchaseError(domain.ReasonTooManyInfants, "Cannot have more infant tickets than adult tickets"))},
		{"payment failed", errors.New("payment gateway down")},
		{"timeout", context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			h := mocks.NewMockmessageHandler(ctrl)

			msg := kafka.Message{Topic: "purchases", Offset: 7, Value: []byte(`{"account_id":1}`)}
			h.EXPECT().PurchaseFromMessage(gomock.Any(), msg.Value).Return(tt.result)
			r.EXPECT().CommitMessages(gomock.Any(), msg).Return(nil).Times(1)

			runOneMessage(t, r, newTestConsumer(r, h), msg)
		})
	}
}

func TestRun_HandlerGetsProcessTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	msg := kafka.Message{Offset: 1, Value: []byte("slow")}
	h.EXPECT().PurchaseFromMessage(gomock.Any(), msg.Value).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		})
	r.EXPECT().CommitMessages(gomock.Any(), msg).Return(nil)

	runOneMessage(t, r, newTestConsumer(r, h), msg)
}

func TestRun_CommitWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	msg := kafka.Message{Offset: 3, Value: []byte("ok")}
	h.EXPECT().PurchaseFromMessage(gomock.Any(), msg.Value).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary"))

	runOneMessage(t, r, newTestConsumer(r, h), msg)
}

// Ошибки FetchMessage ретраятся; по отмене контекста - корректный выход
func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).
		MinTimes(2)

	c := newTestConsumer(r, h)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, c.Run(ctx), context.DeadlineExceeded)
}

func TestClose_DelegatesToReaderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, h)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestBackoff(t *testing.T) {
	c := newTestConsumer(nil, nil)

	assert.Equal(t, 10*time.Millisecond, c.nextBackoff(5*time.Millisecond))
	assert.Equal(t, 10*time.Millisecond, c.nextBackoff(10*time.Millisecond))

	for i := 0; i < 100; i++ {
		d := c.withJitterEqual(10 * time.Millisecond)
		assert.GreaterOrEqual(t, d, 5*time.Millisecond)
		assert.LessOrEqual(t, d, 10*time.Millisecond)
	}
	assert.Zero(t, c.withJitterEqual(0))
}

func TestNewConsumer_Defaults(t *testing.T) {
	c := newConsumer(nil, nil, nopLogger{}, &ConsumerConfig{})

	assert.Equal(t, 5*time.Second, c.processTimeout)
	assert.Equal(t, time.Second, c.retryInitial)
	assert.Equal(t, 30*time.Second, c.retryMax)
}
