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

	"github.com/google/uuid"
)

// DelayCommand is an operator request to delay a flight.
// NewDepTime (absolute HH:MM) wins over Duration when both are set.
type DelayCommand struct {
	AirportCode      string
	FlightID         string
	NewDepTime       string
	Duration         string
	NotifyPassengers bool
}

// StatusProcessor applies delay and cancellation commands to the flight registry
// and fans the resulting notifications out to every affected PNR
type StatusProcessor struct {
	flightRepo       repository.FlightRepository
	notificationRepo repository.NotificationRepository
	deliveryRepo     repository.DeliveryRepository
	airportRepo      repository.AirportRepository
	publisher        repository.EventPublisher
	metrics          *metrics.Metrics
	logger           logger.Logger
	now              func() time.Time
}

// NewStatusProcessor creates a new status processor
func NewStatusProcessor(
	flightRepo repository.FlightRepository,
	notificationRepo repository.NotificationRepository,
	deliveryRepo repository.DeliveryRepository,
	airportRepo repository.AirportRepository,
	publisher repository.EventPublisher,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *StatusProcessor {
	return &StatusProcessor{
		flightRepo:       flightRepo,
		notificationRepo: notificationRepo,
		deliveryRepo:     deliveryRepo,
		airportRepo:      airportRepo,
		publisher:        publisher,
		metrics:          metrics,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func normalizeKey(airportCode, flightID string) (string, string, error) {
	airportCode = strings.ToUpper(strings.TrimSpace(airportCode))
	flightID = strings.TrimSpace(flightID)
	if airportCode == "" {
		return "", "", entity.NewValidationError("airport_code", "airport code is required")
	}
	if flightID == "" {
		return "", "", entity.NewValidationError("flight_id", "flight id is required")
	}
	return airportCode, flightID, nil
}

// ApplyDelay moves a flight to Delayed with a new departure time
func (sp *StatusProcessor) ApplyDelay(ctx context.Context, cmd DelayCommand) (*entity.Flight, error) {
	start := time.Now()
	airportCode, flightID, err := normalizeKey(cmd.AirportCode, cmd.FlightID)
	if err != nil {
		return nil, err
	}
	log := sp.logger.With("airport", airportCode, "flightId", flightID)

	flight, err := sp.flightRepo.FindByKey(ctx, airportCode, flightID)
	if err != nil {
		return nil, err
	}
	if !flight.Status.CanTransitionTo(entity.FlightDelayed) {
		return nil, fmt.Errorf("flight %s/%s: %w", airportCode, flightID, entity.ErrFlightCancelled)
	}

	schedule, err := utils.ResolveDelay(flight.DepTime, cmd.NewDepTime, cmd.Duration)
	if err != nil {
		return nil, entity.NewValidationError("delay", err.Error())
	}

	minutes := schedule.DelayMinutes
	updated, err := sp.flightRepo.UpdateStatus(ctx, airportCode, flightID, entity.StatusUpdate{
		Status:       entity.FlightDelayed,
		DepTime:      schedule.DepTime,
		DelayMinutes: &minutes,
		Delay:        schedule.Delay,
	})
	if err != nil {
		sp.metrics.ErrorsCount.WithLabelValues("apply_delay").Inc()
		return nil, err
	}

	log.Info("Flight delayed", "depTime", updated.DepTime, "delay", updated.Delay)

	message := templates.DelayedMessage(updated, sp.originLabel(ctx, updated))
	if err := sp.fanOut(ctx, updated, entity.NotificationDelayed, message, cmd.NotifyPassengers); err != nil {
		return nil, err
	}

	sp.metrics.FlightsDelayed.Inc()
	sp.metrics.MutationTime.Observe(time.Since(start).Seconds())
	return updated, nil
}

// ApplyCancellation moves a flight to Cancelled. Cancelling an already
// cancelled flight succeeds without appending anything.
func (sp *StatusProcessor) ApplyCancellation(ctx context.Context, airportCode, flightID string, notifyPassengers bool) (*entity.Flight, error) {
	start := time.Now()
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return nil, err
	}
	log := sp.logger.With("airport", airportCode, "flightId", flightID)

	flight, err := sp.flightRepo.FindByKey(ctx, airportCode, flightID)
	if err != nil {
		return nil, err
	}
	if flight.Status == entity.FlightCancelled {
		log.Info("Flight already cancelled")
		return flight, nil
	}

	updated, err := sp.flightRepo.UpdateStatus(ctx, airportCode, flightID, entity.StatusUpdate{
		Status: entity.FlightCancelled,
	})
	if err != nil {
		if errors.Is(err, entity.ErrFlightCancelled) {
			// Lost a race with another cancellation; that writer fanned out
			log.Info("Flight cancelled concurrently")
			return sp.flightRepo.FindByKey(ctx, airportCode, flightID)
		}
		sp.metrics.ErrorsCount.WithLabelValues("apply_cancellation").Inc()
		return nil, err
	}

	log.Info("Flight cancelled", "passengers", len(updated.Passengers))

	message := templates.CancelledMessage(updated, sp.originLabel(ctx, updated))
	if err := sp.fanOut(ctx, updated, entity.NotificationCancelled, message, notifyPassengers); err != nil {
		return nil, err
	}

	sp.metrics.FlightsCancelled.Inc()
	sp.metrics.MutationTime.Observe(time.Since(start).Seconds())
	return updated, nil
}

// ResendPending queues the latest disruption notice again for passengers
// who have not been reached yet. It returns the number of queued deliveries.
func (sp *StatusProcessor) ResendPending(ctx context.Context, airportCode, flightID string) (int, error) {
	airportCode, flightID, err := normalizeKey(airportCode, flightID)
	if err != nil {
		return 0, err
	}

	flight, err := sp.flightRepo.FindByKey(ctx, airportCode, flightID)
	if err != nil {
		return 0, err
	}

	latest := make(map[string]*entity.Notification)
	for _, p := range flight.Passengers {
		if p.NotificationSent || p.PNR == "" {
			continue
		}
		if _, ok := latest[p.PNR]; ok {
			continue
		}
		n, err := sp.notificationRepo.LatestDisruption(ctx, p.PNR, airportCode, flightID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				continue
			}
			return 0, fmt.Errorf("failed to load latest disruption: %w", err)
		}
		latest[p.PNR] = n
	}

	queued, err := sp.enqueue(ctx, flight, latest, true)
	if err != nil {
		return 0, err
	}

	sp.logger.Info("Resend queued", "airport", airportCode, "flightId", flightID, "deliveries", queued)
	return queued, nil
}

// fanOut appends one notification per affected PNR, then queues passenger
// deliveries and publishes the disruption event. Only the append can fail the
// command; the registry has already been updated by then.
func (sp *StatusProcessor) fanOut(ctx context.Context, flight *entity.Flight, kind entity.NotificationType, message string, notify bool) error {
	pnrs := flight.AffectedPNRs()
	now := sp.now()

	notifications := make([]*entity.Notification, 0, len(pnrs))
	byPNR := make(map[string]*entity.Notification, len(pnrs))
	for _, pnr := range pnrs {
		n := &entity.Notification{
			PNR:         pnr,
			FlightID:    flight.FlightID,
			AirportCode: flight.AirportCode,
			Source:      flight.Source,
			Destination: flight.Destination,
			Type:        kind,
			Message:     message,
			CreatedAt:   now,
		}
		notifications = append(notifications, n)
		byPNR[pnr] = n
	}

	if _, err := sp.notificationRepo.AppendMany(ctx, notifications); err != nil {
		sp.metrics.ErrorsCount.WithLabelValues("append_notifications").Inc()
		return fmt.Errorf("flight %s/%s updated but failed to append notifications: %w", flight.AirportCode, flight.FlightID, err)
	}
	sp.metrics.NotificationsAppended.WithLabelValues(string(kind)).Add(float64(len(notifications)))

	if notify {
		if _, err := sp.enqueue(ctx, flight, byPNR, false); err != nil {
			sp.logger.Error("Failed to queue passenger deliveries",
				"airport", flight.AirportCode,
				"flightId", flight.FlightID,
				"error", err)
			sp.metrics.ErrorsCount.WithLabelValues("enqueue_deliveries").Inc()
		}
	}

	sp.publish(ctx, flight, pnrs)
	return nil
}

// enqueue builds one delivery per passenger per reachable channel
func (sp *StatusProcessor) enqueue(ctx context.Context, flight *entity.Flight, byPNR map[string]*entity.Notification, onlyUnsent bool) (int, error) {
	now := sp.now()
	var deliveries []*entity.Delivery

	for _, p := range flight.Passengers {
		if onlyUnsent && p.NotificationSent {
			continue
		}
		n, ok := byPNR[p.PNR]
		if !ok {
			continue
		}

		subject := templates.EmailSubject(n)
		body := templates.PassengerBody(p, n)

		recipients := map[entity.Channel]string{
			entity.ChannelEmail:    strings.TrimSpace(p.Email),
			entity.ChannelWhatsapp: strings.TrimSpace(p.Phone),
		}
		for _, channel := range []entity.Channel{entity.ChannelEmail, entity.ChannelWhatsapp} {
			recipient := recipients[channel]
			if recipient == "" {
				continue
			}
			deliveries = append(deliveries, &entity.Delivery{
				ID:             uuid.NewString(),
				NotificationID: n.ID,
				PNR:            p.PNR,
				AirportCode:    flight.AirportCode,
				FlightID:       flight.FlightID,
				PassengerID:    p.PassengerID,
				Channel:        channel,
				Recipient:      recipient,
				Subject:        subject,
				Body:           body,
				CreatedAt:      now,
				ProcessStatus:  entity.StatusPending,
			})
		}
	}

	if len(deliveries) == 0 {
		return 0, nil
	}
	if err := sp.deliveryRepo.SaveMany(ctx, deliveries); err != nil {
		return 0, fmt.Errorf("failed to queue deliveries: %w", err)
	}
	return len(deliveries), nil
}

func (sp *StatusProcessor) publish(ctx context.Context, flight *entity.Flight, pnrs []string) {
	if sp.publisher == nil {
		return
	}

	event := &entity.FlightDisrupted{
		ID:           uuid.NewString(),
		Type:         entity.EventFlightDisrupted,
		AirportCode:  flight.AirportCode,
		FlightID:     flight.FlightID,
		Source:       flight.Source,
		Destination:  flight.Destination,
		Status:       flight.Status,
		DepTime:      flight.DepTime,
		Delay:        flight.Delay,
		AffectedPNRs: pnrs,
		OccurredAt:   sp.now(),
	}

	if err := sp.publisher.PublishDisruption(ctx, event); err != nil {
		sp.logger.Error("Failed to publish disruption event",
			"airport", flight.AirportCode,
			"flightId", flight.FlightID,
			"eventId", event.ID,
			"error", err)
		sp.metrics.ErrorsCount.WithLabelValues("publish_event").Inc()
		return
	}
	sp.metrics.EventsPublished.Inc()
}

// originLabel resolves the departure airport name for passenger-facing text
func (sp *StatusProcessor) originLabel(ctx context.Context, flight *entity.Flight) string {
	if sp.airportRepo == nil || flight.Source == "" {
		return ""
	}
	airport, err := sp.airportRepo.GetByCode(ctx, flight.Source)
	if err != nil {
		sp.logger.Debug("No airport master data", "code", flight.Source, "error", err)
		return ""
	}
	return airport.Label()
}
