//go:generate mockgen -source=refund_repository.go -destination=mocks/refund_repository.go -package=mocks
package repository

import (
	"context"
	"time"

	"flightwatch-service/internal/domain/entity"
)

// RefundRepository defines the interface for the refund request ledger
type RefundRepository interface {
	Create(ctx context.Context, request *entity.RefundRequest) error
	ListPending(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error)
	ListByFlight(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error)
	// Resolve moves the oldest pending request of the passenger to status.
	// It returns entity.ErrNotFound when no pending request exists.
	Resolve(ctx context.Context, airportCode, flightID, passengerID string, status entity.RefundStatus, processedAt time.Time) (*entity.RefundRequest, error)
}
