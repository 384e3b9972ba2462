package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger writes structured publisher logs.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Publisher pushes reservation events onto a durable RabbitMQ queue.
// A disabled publisher silently drops events, which keeps the wiring
// identical between environments with and without a broker.
type Publisher struct {
	enabled bool
	url     string
	queue   string
	log     Logger
}

// NewPublisher creates a publisher. When enabled is false every Publish
// call is a no-op.
func NewPublisher(enabled bool, url, queue string, log Logger) *Publisher {
	return &Publisher{
		enabled: enabled,
		url:     url,
		queue:   queue,
		log:     log,
	}
}

// Publish sends one event. The connection is dialed per publish: event
// volume is low and a stale long-lived channel is worse than the dial cost.
// Any error is logged and returned so the caller can choose to ignore it.
func (p *Publisher) Publish(ctx context.Context, event ReservationEvent) error {
	if !p.enabled {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("events: rabbitmq dial failed: %v", err)
		return fmt.Errorf("events: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("events: rabbitmq channel open failed: %v", err)
		return fmt.Errorf("events: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare. Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		p.log.Warn("events: queue declare failed: %v", err)
		return fmt.Errorf("events: queue declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("events: marshal event failed: %v", err)
		return fmt.Errorf("events: marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		p.log.Warn("events: publish failed: %v", err)
		return fmt.Errorf("events: publish: %w", err)
	}

	return nil
}
