//go:generate mockgen -source=event_publisher.go -destination=mocks/event_publisher.go -package=mocks
package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// EventPublisher hands disruption events to downstream consumers
type EventPublisher interface {
	PublishDisruption(ctx context.Context, event *entity.FlightDisrupted) error
	Close() error
}
