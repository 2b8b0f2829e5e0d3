// Command notifier consumes write notifications from RabbitMQ and appends
// them to logs/notifications.log.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iliyamo/showbook/internal/config"
	"github.com/iliyamo/showbook/internal/queue"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("reading .env failed", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	notify := config.LoadNotifyConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("consuming notifications", "queue", notify.Queue)
	err := queue.StartNotificationConsumer(ctx, queue.ConsumerConfig{
		URL:     notify.URL,
		Queue:   notify.Queue,
		LogPath: os.Getenv("NOTIFY_LOG_PATH"),
		Log:     logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("consumer stopped")
}
