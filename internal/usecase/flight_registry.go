package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/utils"
)

// FlightRegistry registers flights with their manifests and serves registry reads.
// Status changes are not made here; see StatusProcessor.
type FlightRegistry struct {
	flightRepo  repository.FlightRepository
	airlineRepo repository.AirlineRepository
	logger      logger.Logger
}

// NewFlightRegistry creates a new flight registry usecase
func NewFlightRegistry(
	flightRepo repository.FlightRepository,
	airlineRepo repository.AirlineRepository,
	logger logger.Logger,
) *FlightRegistry {
	return &FlightRegistry{
		flightRepo:  flightRepo,
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

// Register validates and stores a new flight
func (r *FlightRegistry) Register(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	if err := r.prepare(ctx, flight); err != nil {
		return nil, err
	}
	if flight.Status != entity.FlightOnTime {
		return nil, entity.NewValidationError("status", "new flights must be OnTime")
	}

	if err := r.flightRepo.Create(ctx, flight); err != nil {
		return nil, err
	}

	r.logger.Info("Flight registered",
		"airport", flight.AirportCode,
		"flightId", flight.FlightID,
		"passengers", len(flight.Passengers))
	return flight, nil
}

// Seed loads a batch of flights from a manifest file. Manifest entries must
// be OnTime; disruptions only reach the registry through StatusProcessor.
// Flights that are already cancelled are skipped, and passengers already
// notified keep their notification flag.
func (r *FlightRegistry) Seed(ctx context.Context, flights []*entity.Flight) (int, error) {
	seeded := 0
	for _, flight := range flights {
		if err := r.prepare(ctx, flight); err != nil {
			return seeded, fmt.Errorf("flight %s/%s: %w", flight.AirportCode, flight.FlightID, err)
		}
		if flight.Status != entity.FlightOnTime {
			return seeded, fmt.Errorf("flight %s/%s: %w", flight.AirportCode, flight.FlightID,
				entity.NewValidationError("status", "seeded flights must be OnTime"))
		}

		current, err := r.flightRepo.FindByKey(ctx, flight.AirportCode, flight.FlightID)
		switch {
		case errors.Is(err, entity.ErrNotFound):
		case err != nil:
			return seeded, fmt.Errorf("failed to load flight %s/%s: %w", flight.AirportCode, flight.FlightID, err)
		case current.Status == entity.FlightCancelled:
			r.logger.Warn("Skipping cancelled flight",
				"airport", flight.AirportCode,
				"flightId", flight.FlightID)
			continue
		default:
			carryNotified(flight, current)
		}

		if err := r.flightRepo.Upsert(ctx, flight); err != nil {
			if errors.Is(err, entity.ErrFlightCancelled) {
				r.logger.Warn("Skipping cancelled flight",
					"airport", flight.AirportCode,
					"flightId", flight.FlightID)
				continue
			}
			return seeded, fmt.Errorf("failed to seed flight %s/%s: %w", flight.AirportCode, flight.FlightID, err)
		}
		seeded++
	}
	return seeded, nil
}

func carryNotified(flight, current *entity.Flight) {
	notified := make(map[string]bool, len(current.Passengers))
	for _, p := range current.Passengers {
		if p.NotificationSent {
			notified[p.PassengerID] = true
		}
	}
	for i := range flight.Passengers {
		if notified[flight.Passengers[i].PassengerID] {
			flight.Passengers[i].NotificationSent = true
		}
	}
}

// List returns flights matching filter
func (r *FlightRegistry) List(ctx context.Context, filter entity.FlightFilter) ([]*entity.Flight, error) {
	filter.AirportCode = strings.ToUpper(strings.TrimSpace(filter.AirportCode))
	filter.Source = strings.TrimSpace(filter.Source)
	filter.Destination = strings.TrimSpace(filter.Destination)
	return r.flightRepo.List(ctx, filter)
}

// Get returns one flight
func (r *FlightRegistry) Get(ctx context.Context, airportCode, flightID string) (*entity.Flight, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}
	return r.flightRepo.FindByKey(ctx, airportCode, flightID)
}

func (r *FlightRegistry) prepare(ctx context.Context, flight *entity.Flight) error {
	airportCode, flightID, err := normalizeKey(flight.AirportCode, flight.FlightID)
	if err != nil {
		return err
	}
	flight.AirportCode = airportCode
	flight.FlightID = flightID
	flight.Source = strings.TrimSpace(flight.Source)
	flight.Destination = strings.TrimSpace(flight.Destination)

	if flight.DepTime != "" {
		if _, err := utils.ParseClock(flight.DepTime); err != nil {
			return entity.NewValidationError("dep_time", err.Error())
		}
	}
	if flight.ArrivalTime != "" {
		if _, err := utils.ParseClock(flight.ArrivalTime); err != nil {
			return entity.NewValidationError("arrival_time", err.Error())
		}
	}

	switch flight.Status {
	case "":
		flight.Status = entity.FlightOnTime
	case entity.FlightOnTime, entity.FlightDelayed, entity.FlightCancelled:
	default:
		return entity.NewValidationError("status", "unknown status "+string(flight.Status))
	}

	for i := range flight.Passengers {
		p := &flight.Passengers[i]
		p.PNR = strings.ToUpper(strings.TrimSpace(p.PNR))
		p.PassengerID = strings.TrimSpace(p.PassengerID)
		p.Name = strings.TrimSpace(p.Name)
		if p.PNR == "" {
			return entity.NewValidationError("passengers", fmt.Sprintf("passenger %d has no PNR", i))
		}
		if p.PassengerID == "" {
			p.PassengerID = p.PNR
		}
	}

	if flight.Airline == "" {
		flight.Airline = r.resolveAirline(ctx, flight.FlightID)
	}
	return nil
}

// resolveAirline maps the designator prefix ("6E" of "6E-213") to an airline name
func (r *FlightRegistry) resolveAirline(ctx context.Context, flightID string) string {
	if r.airlineRepo == nil {
		return ""
	}
	code := AirlineDesignator(flightID)
	if code == "" {
		return ""
	}
	airline, err := r.airlineRepo.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			r.logger.Warn("Failed to resolve airline", "code", code, "error", err)
		}
		return ""
	}
	return airline.Name
}

// AirlineDesignator returns the two-character carrier code of a flight number
func AirlineDesignator(flightID string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(flightID) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			b.WriteRune(c)
		}
		if b.Len() == 2 {
			break
		}
	}
	if b.Len() < 2 {
		return ""
	}
	return b.String()
}
