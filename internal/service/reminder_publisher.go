// Package service holds outbound integrations used by handlers.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/cinema-billboard/internal/queue"
)

// ReminderPublisher publishes release reminder requests to a durable
// RabbitMQ queue.  Each publish opens a short-lived connection.
type ReminderPublisher struct {
	URL   string
	Queue string
}

// NewReminderPublisher returns a publisher for the given broker and queue.
func NewReminderPublisher(url, queue string) *ReminderPublisher {
	return &ReminderPublisher{URL: url, Queue: queue}
}

// PublishReminder sends ev as a persistent JSON message.
func (p *ReminderPublisher) PublishReminder(ctx context.Context, ev q.ReleaseReminderRequested) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal reminder: %w", err)
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.Queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
