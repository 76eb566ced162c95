package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher publishes disruption events to a topic exchange
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewRabbitPublisher dials the broker and declares the exchange
func NewRabbitPublisher(url, exchange string) (repository.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// RoutingKey is "flight.<status>.<airport>", e.g. flight.cancelled.DEL
func RoutingKey(event *entity.FlightDisrupted) string {
	return "flight." + strings.ToLower(string(event.Status)) + "." + event.AirportCode
}

// PublishDisruption publishes one persistent JSON message
func (p *RabbitPublisher) PublishDisruption(ctx context.Context, event *entity.FlightDisrupted) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(event), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         b,
	})
}

// Close closes the channel and the connection
func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
