package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumerConfig configures StartNotificationConsumer.
type ConsumerConfig struct {
	URL     string
	Queue   string // defaults to NotificationQueue
	LogPath string // defaults to logs/notifications.log
	Log     *slog.Logger
}

// StartNotificationConsumer connects to RabbitMQ, declares the durable
// notification queue and appends one line per event to the log file.  It
// reconnects with exponential backoff (capped at 30s) until ctx is
// cancelled, then returns ctx.Err().  A message that cannot be handled is
// rejected without requeue so it cannot block the queue.
func StartNotificationConsumer(ctx context.Context, cfg ConsumerConfig) error {
	if cfg.Queue == "" {
		cfg.Queue = NotificationQueue
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join("logs", "notifications.log")
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	backoff := time.Second
	for {
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			cfg.Log.Warn("notification consumer: dial failed", "err", err, "retry_in", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, cfg)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cfg.Log.Warn("notification consumer: consume loop ended, reconnecting", "err", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, cfg ConsumerConfig) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		cfg.Log.Warn("notification consumer: set QoS failed", "err", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := appendEvent(cfg.LogPath, d.Body); err != nil {
			cfg.Log.Error("notification consumer: handle message failed", "err", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// appendEvent decodes a NotificationEvent and appends its line to path,
// creating the directory and file when needed.
func appendEvent(path string, body []byte) error {
	var ev NotificationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Entity == "" || ev.Action == "" {
		return errors.New("event without entity or action")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(FormatEvent(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatEvent renders ev as a single log line ending in a newline.
func FormatEvent(ev NotificationEvent) string {
	msg := strings.ReplaceAll(ev.Message, "\n", " ")
	return fmt.Sprintf("[%s] %s %s %s | id=%d | %q\n",
		ev.At, ev.Entity, ev.Action, ev.Status, ev.EntityID, msg)
}
