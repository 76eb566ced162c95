package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// Master data changes rarely; lookups happen on every disruption
const masterDataTTL = 10 * time.Minute

// AirlineRecord is the m_airlines row
type AirlineRecord struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;size:3;uniqueIndex"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AirlineRecord) TableName() string {
	return "m_airlines"
}

// AirportRecord is the m_airports row
type AirportRecord struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;size:3;uniqueIndex"`
	Name      string         `gorm:"column:name"`
	CityCode  string         `gorm:"column:city_code"`
	CityName  string         `gorm:"column:city_name"`
	Zone      string         `gorm:"column:zone"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AirportRecord) TableName() string {
	return "m_airports"
}

// ttlCache holds positive lookups for a fixed time
type ttlCache[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cached[T]
}

type cached[T any] struct {
	value     T
	expiresAt time.Time
}

func newTTLCache[T any](ttl time.Duration) *ttlCache[T] {
	return &ttlCache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cached[T]),
	}
}

func (c *ttlCache[T]) get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *ttlCache[T]) put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cached[T]{value: value, expiresAt: c.now().Add(c.ttl)}
}

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db    *gorm.DB
	cache *ttlCache[entity.Airline]
}

// NewGormAirlineRepository creates a cached airline lookup
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{db: db, cache: newTTLCache[entity.Airline](masterDataTTL)}
}

// GetByCode finds an airline by its designator ("6E", "AI")
func (r *GormAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if a, ok := r.cache.get(code); ok {
		return &a, nil
	}

	var record AirlineRecord
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("airline %s: %w", code, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load airline %s: %w", code, err)
	}

	airline := entity.Airline{Code: record.Code, Name: record.Name}
	r.cache.put(code, airline)
	return &airline, nil
}

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db    *gorm.DB
	cache *ttlCache[entity.Airport]
}

// NewGormAirportRepository creates a cached airport lookup
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{db: db, cache: newTTLCache[entity.Airport](masterDataTTL)}
}

// GetByCode finds an airport by IATA code
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if a, ok := r.cache.get(code); ok {
		return &a, nil
	}

	var record AirportRecord
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("airport %s: %w", code, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load airport %s: %w", code, err)
	}

	airport := entity.Airport{
		Code:     record.Code,
		Name:     record.Name,
		CityCode: record.CityCode,
		CityName: record.CityName,
		Zone:     record.Zone,
	}
	r.cache.put(code, airport)
	return &airport, nil
}
