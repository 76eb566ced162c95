package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"github.com/segmentio/kafka-go"
)

// KafkaConfig holds producer settings
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher writes disruption events to a kafka topic keyed by flight
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a synchronous kafka producer
func NewKafkaPublisher(cfg KafkaConfig) repository.EventPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{writer: w}
}

// PublishDisruption writes one event; events of a flight share a partition
func (p *KafkaPublisher) PublishDisruption(ctx context.Context, event *entity.FlightDisrupted) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(EventKey(event)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.ID)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// EventKey is the partition and routing key of a disruption event
func EventKey(event *entity.FlightDisrupted) string {
	return event.AirportCode + "." + event.FlightID
}
