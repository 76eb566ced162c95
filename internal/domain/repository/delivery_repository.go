//go:generate mockgen -source=delivery_repository.go -destination=mocks/delivery_repository.go -package=mocks
package repository

import (
	"context"
	"time"

	"flightwatch-service/internal/domain/entity"
)

// DeliveryRepository defines the outbound delivery queue
type DeliveryRepository interface {
	SaveMany(ctx context.Context, deliveries []*entity.Delivery) error
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.Delivery, error)
	UpdateStatus(ctx context.Context, id string, status string, startedAt time.Time) error
	MarkAsProcessed(ctx context.Context, id, status, providerRef, errorDetail string) error
	ResetProcessingDeliveries(ctx context.Context, staleAfter time.Duration) (int64, error)
}
