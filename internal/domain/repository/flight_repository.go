//go:generate mockgen -source=flight_repository.go -destination=mocks/flight_repository.go -package=mocks
package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// FlightRepository defines the interface for the flight registry.
// Status changes go through UpdateStatus, which never touches a cancelled flight.
type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	Upsert(ctx context.Context, flight *entity.Flight) error
	FindByKey(ctx context.Context, airportCode, flightID string) (*entity.Flight, error)
	List(ctx context.Context, filter entity.FlightFilter) ([]*entity.Flight, error)
	UpdateStatus(ctx context.Context, airportCode, flightID string, update entity.StatusUpdate) (*entity.Flight, error)
	MarkPassengerNotified(ctx context.Context, airportCode, flightID, passengerID string) error
}
