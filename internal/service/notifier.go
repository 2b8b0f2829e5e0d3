package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/showbook/internal/queue"
)

// Notifier receives a NotificationEvent for every write.  Delivery is
// best effort: the directory logs a returned error and carries on.
type Notifier interface {
	Notify(ctx context.Context, ev queue.NotificationEvent) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, ev queue.NotificationEvent) error

func (f NotifierFunc) Notify(ctx context.Context, ev queue.NotificationEvent) error {
	return f(ctx, ev)
}

// AMQPNotifier publishes notifications to a durable RabbitMQ queue.  Each
// publish opens its own connection, so nothing is kept between requests.
type AMQPNotifier struct {
	URL         string
	Queue       string
	DialTimeout time.Duration
}

// NewAMQPNotifier returns a notifier for url.  An empty queue name selects
// queue.NotificationQueue.
func NewAMQPNotifier(url, queueName string) *AMQPNotifier {
	if queueName == "" {
		queueName = queue.NotificationQueue
	}
	return &AMQPNotifier{URL: url, Queue: queueName, DialTimeout: 2 * time.Second}
}

// Notify publishes ev as a persistent JSON message.
func (n *AMQPNotifier) Notify(ctx context.Context, ev queue.NotificationEvent) error {
	conn, err := amqp.DialConfig(n.URL, amqp.Config{Dial: amqp.DefaultDial(n.DialTimeout)})
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(n.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", n.Queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
