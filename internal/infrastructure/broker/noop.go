package broker

import (
	"context"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
)

// LogPublisher is used when no event bus is configured; it only logs
type LogPublisher struct {
	logger logger.Logger
}

// NewLogPublisher creates a publisher that writes events to the log
func NewLogPublisher(logger logger.Logger) repository.EventPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishDisruption(_ context.Context, event *entity.FlightDisrupted) error {
	p.logger.Debug("Disruption event",
		"eventId", event.ID,
		"airport", event.AirportCode,
		"flightId", event.FlightID,
		"status", event.Status,
		"pnrs", len(event.AffectedPNRs))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
