//go:generate mockgen -source=airline_repository.go -destination=mocks/airline_repository.go -package=mocks
package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// AirlineRepository resolves carrier names; a miss wraps entity.ErrNotFound
type AirlineRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airline, error)
}
