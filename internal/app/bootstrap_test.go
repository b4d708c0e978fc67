package app_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_tickets/config"
	"github.com/Gunvolt24/wb_tickets/internal/app"
	"github.com/Gunvolt24/wb_tickets/internal/ports/mocks"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumer := mocks.NewMockMessageConsumer(ctrl)

	// консьюмер работает до отмены контекста
	consumer.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	consumer.EXPECT().Close().Return(nil).MinTimes(1)

	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: consumer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func TestAppRun_WithoutKafka(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func TestAppRun_ListenError_Returned(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: busy.Addr().String(), Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.Error(t, a.Run(ctx))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix("TICKETS_APP_TEST")
	require.NoError(t, err)
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.GinMode = "test"
	cfg.Kafka.Enabled = false
	return &cfg
}

func TestBootstrap_LogDriver(t *testing.T) {
	cfg := testConfig(t)

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.HTTPServer)
	require.Nil(t, a.KafkaConsumer)
}

func TestBootstrap_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Gateway.Driver = "carrier-pigeon"

	_, cleanup, err := app.Bootstrap(context.Background(), cfg)
	defer cleanup()
	require.ErrorContains(t, err, `unknown gateway driver "carrier-pigeon"`)
}

func TestBootstrap_KafkaConsumerAndPublisher(t *testing.T) {
	cfg := testConfig(t)
	cfg.Kafka.Enabled = true
	cfg.Kafka.Brokers = []string{"127.0.0.1:1"}
	cfg.Gateway.Driver = app.DriverKafka

	// kafka.Reader/Writer создаются лениво, брокер не нужен
	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.KafkaConsumer)
}
