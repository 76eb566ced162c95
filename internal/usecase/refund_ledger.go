package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"
	"flightwatch-service/pkg/utils"
	"flightwatch-service/templates"
)

// RefundSubmission is a passenger refund claim as received at the boundary.
// Amount is kept raw: empty or non-numeric values fall back to the default.
type RefundSubmission struct {
	AirportCode   string
	FlightID      string
	PassengerID   string
	PNR           string
	Name          string
	UPIID         string
	PayoutChannel string
	Amount        string
	Reason        string
}

// ToRequest normalizes and validates a submission without side effects
func (s RefundSubmission) ToRequest(defaultAmount int) (*entity.RefundRequest, error) {
	amount, err := utils.ParseAmount(s.Amount, defaultAmount)
	if err != nil {
		return nil, entity.NewValidationError("amount", err.Error())
	}

	req := &entity.RefundRequest{
		AirportCode:   s.AirportCode,
		FlightID:      s.FlightID,
		PassengerID:   s.PassengerID,
		PNR:           s.PNR,
		Name:          s.Name,
		UPIID:         s.UPIID,
		PayoutChannel: entity.PayoutChannel(strings.ToLower(strings.TrimSpace(s.PayoutChannel))),
		Amount:        amount,
		Reason:        strings.TrimSpace(s.Reason),
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// RefundLedger manages the refund request lifecycle pending -> completed|rejected
type RefundLedger struct {
	refundRepo       repository.RefundRepository
	flightRepo       repository.FlightRepository
	notificationRepo repository.NotificationRepository
	defaultAmount    int
	metrics          *metrics.Metrics
	logger           logger.Logger
	now              func() time.Time
}

// NewRefundLedger creates a new refund ledger
func NewRefundLedger(
	refundRepo repository.RefundRepository,
	flightRepo repository.FlightRepository,
	notificationRepo repository.NotificationRepository,
	defaultAmount int,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *RefundLedger {
	if defaultAmount < 0 {
		defaultAmount = entity.DefaultRefundAmount
	}
	return &RefundLedger{
		refundRepo:       refundRepo,
		flightRepo:       flightRepo,
		notificationRepo: notificationRepo,
		defaultAmount:    defaultAmount,
		metrics:          metrics,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// DefaultAmount is the amount applied to submissions without a usable one
func (l *RefundLedger) DefaultAmount() int {
	return l.defaultAmount
}

// Submit records a new pending request. Repeated submissions create new records.
func (l *RefundLedger) Submit(ctx context.Context, submission RefundSubmission) (*entity.RefundRequest, error) {
	req, err := submission.ToRequest(l.defaultAmount)
	if err != nil {
		return nil, err
	}

	if err := l.refundRepo.Create(ctx, req); err != nil {
		l.metrics.ErrorsCount.WithLabelValues("refund_submit").Inc()
		return nil, err
	}

	l.metrics.RefundsSubmitted.Inc()
	l.logger.Info("Refund requested",
		"airport", req.AirportCode,
		"flightId", req.FlightID,
		"passengerId", req.PassengerID,
		"pnr", req.PNR,
		"amount", req.Amount)
	return req, nil
}

// ListPending returns the pending requests of a flight, oldest first
func (l *RefundLedger) ListPending(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}
	return l.refundRepo.ListPending(ctx, airportCode, flightID)
}

// History returns every request of a flight, resolved ones included
func (l *RefundLedger) History(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}
	return l.refundRepo.ListByFlight(ctx, airportCode, flightID)
}

// Finalize completes exactly one pending request
func (l *RefundLedger) Finalize(ctx context.Context, airportCode, flightID, passengerID string) (*entity.RefundRequest, error) {
	return l.resolve(ctx, airportCode, flightID, passengerID, entity.RefundCompleted)
}

// Reject rejects exactly one pending request
func (l *RefundLedger) Reject(ctx context.Context, airportCode, flightID, passengerID string) (*entity.RefundRequest, error) {
	return l.resolve(ctx, airportCode, flightID, passengerID, entity.RefundRejected)
}

func (l *RefundLedger) resolve(ctx context.Context, airportCode, flightID, passengerID string, status entity.RefundStatus) (*entity.RefundRequest, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}
	passengerID = strings.TrimSpace(passengerID)
	if passengerID == "" {
		return nil, entity.NewValidationError("passenger_id", "passenger id is required")
	}

	req, err := l.refundRepo.Resolve(ctx, airportCode, flightID, passengerID, status, l.now())
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			l.metrics.ErrorsCount.WithLabelValues("refund_resolve").Inc()
		}
		return nil, err
	}

	l.metrics.RefundsResolved.WithLabelValues(string(status)).Inc()
	l.logger.Info("Refund resolved",
		"airport", airportCode,
		"flightId", flightID,
		"passengerId", passengerID,
		"status", status,
		"id", req.ID)
	return req, nil
}

// AssignResource sends a hotel, meal or transport voucher notice to the
// passenger's PNR. Refund status is not touched.
func (l *RefundLedger) AssignResource(ctx context.Context, airportCode, flightID, passengerID, resource string) (*entity.Notification, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}
	resource = strings.ToLower(strings.TrimSpace(resource))
	if !templates.ValidResource(resource) {
		return nil, entity.NewValidationError("resource", "resource must be hotel, meal or transport")
	}

	flight, err := l.flightRepo.FindByKey(ctx, airportCode, flightID)
	if err != nil {
		return nil, err
	}
	passenger, ok := flight.FindPassenger(strings.TrimSpace(passengerID))
	if !ok {
		return nil, fmt.Errorf("passenger %s on %s/%s: %w", passengerID, airportCode, flightID, entity.ErrNotFound)
	}

	n := &entity.Notification{
		PNR:         passenger.PNR,
		FlightID:    flight.FlightID,
		AirportCode: flight.AirportCode,
		Source:      flight.Source,
		Destination: flight.Destination,
		Type:        entity.NotificationInfo,
		Message:     templates.ResourceAssignedMessage(resource, flight.FlightID),
	}
	if _, err := l.notificationRepo.Append(ctx, n); err != nil {
		return nil, err
	}

	l.metrics.NotificationsAppended.WithLabelValues(string(n.Type)).Inc()
	l.logger.Info("Resource assigned",
		"airport", airportCode,
		"flightId", flightID,
		"pnr", passenger.PNR,
		"resource", resource)
	return n, nil
}

// ImpactSummary lists the cancelled flights of an airport with their passenger counts
func (l *RefundLedger) ImpactSummary(ctx context.Context, airportCode string) ([]entity.FlightImpact, error) {
	airportCode = strings.ToUpper(strings.TrimSpace(airportCode))
	if airportCode == "" {
		return nil, entity.NewValidationError("airport_code", "airport code is required")
	}

	flights, err := l.flightRepo.List(ctx, entity.FlightFilter{
		AirportCode: airportCode,
		Status:      entity.FlightCancelled,
	})
	if err != nil {
		return nil, err
	}

	impact := make([]entity.FlightImpact, 0, len(flights))
	for _, f := range flights {
		impact = append(impact, entity.FlightImpact{FlightID: f.FlightID, Count: len(f.Passengers)})
	}
	return impact, nil
}

// AffectedManifest returns the passengers of one flight
func (l *RefundLedger) AffectedManifest(ctx context.Context, airportCode, flightID string) ([]entity.Passenger, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}

	flight, err := l.flightRepo.FindByKey(ctx, airportCode, flightID)
	if err != nil {
		return nil, err
	}
	if flight.Passengers == nil {
		return []entity.Passenger{}, nil
	}
	return flight.Passengers, nil
}
