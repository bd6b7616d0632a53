// Package queue_publisher provides functions to publish domain events to
// RabbitMQ. Errors are logged and returned so callers can ignore broker
// failures without interrupting the main request flow; a booking that
// committed stays committed whether or not the event got out.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/cinebook/movie-booking/internal/queue"
)

// PublishBookingConfirmed publishes a BookingConfirmedEvent to the
// "booking.confirmed" queue. The function never panics; any error is
// logged and returned for the caller to ignore. Messages are marked
// persistent so they survive a broker restart.
func PublishBookingConfirmed(ctx context.Context, event q.BookingConfirmedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent), durable.
	if _, err := ch.QueueDeclare(
		"booking.confirmed", // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		"booking.confirmed", // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
