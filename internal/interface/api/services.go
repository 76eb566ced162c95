//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks
package api

import (
	"context"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/usecase"
)

// FlightService is the registry surface used by the handlers
type FlightService interface {
	Register(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
	List(ctx context.Context, filter entity.FlightFilter) ([]*entity.Flight, error)
	Get(ctx context.Context, airportCode, flightID string) (*entity.Flight, error)
}

// StatusService applies operator status changes
type StatusService interface {
	ApplyDelay(ctx context.Context, cmd usecase.DelayCommand) (*entity.Flight, error)
	ApplyCancellation(ctx context.Context, airportCode, flightID string, notifyPassengers bool) (*entity.Flight, error)
	ResendPending(ctx context.Context, airportCode, flightID string) (int, error)
}

// NotificationService serves the per-PNR feed
type NotificationService interface {
	ListByPNR(ctx context.Context, pnr string) ([]entity.Notification, error)
	Notify(ctx context.Context, cmd usecase.NotifyCommand) (*entity.Notification, error)
}

// RefundService is the refund desk surface
type RefundService interface {
	Submit(ctx context.Context, submission usecase.RefundSubmission) (*entity.RefundRequest, error)
	ListPending(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error)
	History(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error)
	Finalize(ctx context.Context, airportCode, flightID, passengerID string) (*entity.RefundRequest, error)
	Reject(ctx context.Context, airportCode, flightID, passengerID string) (*entity.RefundRequest, error)
	AssignResource(ctx context.Context, airportCode, flightID, passengerID, resource string) (*entity.Notification, error)
	ImpactSummary(ctx context.Context, airportCode string) ([]entity.FlightImpact, error)
	AffectedManifest(ctx context.Context, airportCode, flightID string) ([]entity.Passenger, error)
}
