//go:generate mockgen -source=notification_repository.go -destination=mocks/notification_repository.go -package=mocks
package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// NotificationRepository defines the append-only per-PNR notification log
type NotificationRepository interface {
	Append(ctx context.Context, notification *entity.Notification) (string, error)
	AppendMany(ctx context.Context, notifications []*entity.Notification) ([]string, error)
	ListByPNR(ctx context.Context, pnr string) ([]entity.Notification, error)
	LatestDisruption(ctx context.Context, pnr, airportCode, flightID string) (*entity.Notification, error)
}
