package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRefundRepository implements the RefundRepository interface
type GormRefundRepository struct {
	db *gorm.DB
}

// NewGormRefundRepository creates a new GORM refund ledger repository
func NewGormRefundRepository(db *gorm.DB) repository.RefundRepository {
	return &GormRefundRepository{
		db: db,
	}
}

// RefundRequests GORM model for database mapping
type RefundRequests struct {
	ID            uint       `gorm:"primaryKey"`
	AirportCode   string     `gorm:"column:airport_code;index:idx_refund_key"`
	FlightID      string     `gorm:"column:flight_id;index:idx_refund_key"`
	PassengerID   string     `gorm:"column:passenger_id;index:idx_refund_key"`
	PNR           string     `gorm:"column:pnr;index"`
	Name          string     `gorm:"column:name"`
	UpiID         string     `gorm:"column:upi_id"`
	PayoutChannel string     `gorm:"column:payout_channel"`
	Amount        int        `gorm:"column:amount"`
	Reason        string     `gorm:"column:reason"`
	Status        string     `gorm:"column:status;index"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (RefundRequests) TableName() string {
	return "refund_requests"
}

func (m RefundRequests) toEntity() *entity.RefundRequest {
	return &entity.RefundRequest{
		ID:            m.ID,
		AirportCode:   m.AirportCode,
		FlightID:      m.FlightID,
		PassengerID:   m.PassengerID,
		PNR:           m.PNR,
		Name:          m.Name,
		UPIID:         m.UpiID,
		PayoutChannel: entity.PayoutChannel(m.PayoutChannel),
		Amount:        m.Amount,
		Reason:        m.Reason,
		Status:        entity.RefundStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		ProcessedAt:   m.ProcessedAt,
	}
}

func toEntities(models []RefundRequests) []*entity.RefundRequest {
	entities := make([]*entity.RefundRequest, 0, len(models))
	for _, m := range models {
		entities = append(entities, m.toEntity())
	}
	return entities
}

// Create inserts a new pending refund request
func (r *GormRefundRepository) Create(ctx context.Context, request *entity.RefundRequest) error {
	model := RefundRequests{
		AirportCode:   request.AirportCode,
		FlightID:      request.FlightID,
		PassengerID:   request.PassengerID,
		PNR:           request.PNR,
		Name:          request.Name,
		UpiID:         request.UPIID,
		PayoutChannel: string(request.PayoutChannel),
		Amount:        request.Amount,
		Reason:        request.Reason,
		Status:        string(entity.RefundPending),
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to create refund request: %w", result.Error)
	}

	// Update the entity with the generated ID
	request.ID = model.ID
	request.Status = entity.RefundPending
	request.CreatedAt = model.CreatedAt

	return nil
}

// ListPending finds the pending requests of a flight, oldest first
func (r *GormRefundRepository) ListPending(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error) {
	var models []RefundRequests
	result := r.db.WithContext(ctx).
		Where("airport_code = ?", airportCode).
		Where("flight_id = ?", flightID).
		Where("status = ?", string(entity.RefundPending)).
		Order("created_at ASC, id ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	return toEntities(models), nil
}

// ListByFlight returns every request of a flight regardless of status
func (r *GormRefundRepository) ListByFlight(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error) {
	var models []RefundRequests
	result := r.db.WithContext(ctx).
		Where("airport_code = ?", airportCode).
		Where("flight_id = ?", flightID).
		Order("created_at ASC, id ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	return toEntities(models), nil
}

// Resolve locks the oldest pending request of the passenger and moves it to status
func (r *GormRefundRepository) Resolve(ctx context.Context, airportCode, flightID, passengerID string, status entity.RefundStatus, processedAt time.Time) (*entity.RefundRequest, error) {
	var resolved RefundRequests

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("airport_code = ?", airportCode).
			Where("flight_id = ?", flightID).
			Where("passenger_id = ?", passengerID).
			Where("status = ?", string(entity.RefundPending)).
			Order("created_at ASC, id ASC").
			First(&resolved).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("pending refund for %s on %s/%s: %w", passengerID, airportCode, flightID, entity.ErrNotFound)
			}
			return err
		}

		processed := processedAt.UTC()
		result := tx.Model(&resolved).
			Where("status = ?", string(entity.RefundPending)).
			Updates(map[string]interface{}{
				"status":       string(status),
				"processed_at": processed,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("pending refund for %s on %s/%s: %w", passengerID, airportCode, flightID, entity.ErrNotFound)
		}

		resolved.Status = string(status)
		resolved.ProcessedAt = &processed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved.toEntity(), nil
}
