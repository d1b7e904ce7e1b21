// Package notify publishes booking lifecycle events to RabbitMQ so other
// club systems (displays, messaging, reporting) can react. Publishing is
// best effort; a down broker never blocks a reservation.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Routing keys for booking events.
const (
	RouteGroupCreated     = "booking_group.created"
	RouteBookingCheckedIn = "booking.checked_in"
)

// GroupCreatedEvent announces a committed group reservation.
type GroupCreatedEvent struct {
	GroupID         int64  `json:"groupId"`
	ClubID          int64  `json:"clubId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Courts          int    `json:"courts"`
	TotalPriceCents int64  `json:"totalPriceCents"`
	PlayerName      string `json:"playerName"`
}

// CheckedInEvent announces a completed check-in for a booking or group.
type CheckedInEvent struct {
	EntityID      int64  `json:"entityId"`
	EntityKind    string `json:"entityKind"`
	ClubID        int64  `json:"clubId"`
	PaymentStatus string `json:"paymentStatus"`
	CheckedInAt   string `json:"checkedInAt"`
}

// Publisher sends events to a durable topic exchange. A nil Publisher is a
// no-op so callers can run without a broker configured.
type Publisher struct {
	url      string
	exchange string
}

func NewPublisher(url, exchange string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, exchange: exchange}
}

// Publish sends one event. Each call dials a fresh connection; event volume
// here is a handful per minute at most.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial failed: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel failed: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		p.exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("amqp exchange declare failed: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}

	if err := ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("amqp publish failed: %w", err)
	}

	return nil
}

// PublishAsync fires Publish on a goroutine and logs failures.
func (p *Publisher) PublishAsync(routingKey string, event any) {
	if p == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := p.Publish(ctx, routingKey, event); err != nil {
			log.Warn().Err(err).Str("routing_key", routingKey).Msg("Failed to publish event")
		}
	}()
}
