//go:generate mockgen -source=airport_repository.go -destination=mocks/airport_repository.go -package=mocks
package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// AirportRepository resolves airport master data; a miss wraps entity.ErrNotFound
type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
}
