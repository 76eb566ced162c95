package usecase

import (
	"context"
	"strings"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"
)

// NotifyCommand is a manual operator message to one PNR
type NotifyCommand struct {
	PNR         string
	Message     string
	Type        entity.NotificationType
	FlightID    string
	AirportCode string
}

// NotificationService serves the per-PNR feed and manual operator messages
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	metrics          *metrics.Metrics
	logger           logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// ListByPNR returns the complete feed of a PNR, newest first
func (s *NotificationService) ListByPNR(ctx context.Context, pnr string) ([]entity.Notification, error) {
	pnr = strings.ToUpper(strings.TrimSpace(pnr))
	if pnr == "" {
		return nil, entity.NewValidationError("pnr", "PNR is required")
	}

	notifications, err := s.notificationRepo.ListByPNR(ctx, pnr)
	if err != nil {
		return nil, err
	}
	entity.SortNewestFirst(notifications)
	return notifications, nil
}

// Notify appends an informational message. DELAYED and CANCELLED are
// reserved for registry mutations.
func (s *NotificationService) Notify(ctx context.Context, cmd NotifyCommand) (*entity.Notification, error) {
	pnr := strings.ToUpper(strings.TrimSpace(cmd.PNR))
	message := strings.TrimSpace(cmd.Message)
	if pnr == "" {
		return nil, entity.NewValidationError("pnr", "PNR is required")
	}
	if message == "" {
		return nil, entity.NewValidationError("message", "message is required")
	}

	kind := entity.NotificationType(strings.ToUpper(strings.TrimSpace(string(cmd.Type))))
	if kind == "" {
		kind = entity.NotificationInfo
	}
	if !kind.IsInformational() {
		return nil, entity.NewValidationError("type", "type must be INFO, GATE_CHANGE or BOARDING")
	}

	n := &entity.Notification{
		PNR:         pnr,
		FlightID:    strings.TrimSpace(cmd.FlightID),
		AirportCode: strings.ToUpper(strings.TrimSpace(cmd.AirportCode)),
		Type:        kind,
		Message:     message,
	}
	if _, err := s.notificationRepo.Append(ctx, n); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("notify").Inc()
		return nil, err
	}

	s.metrics.NotificationsAppended.WithLabelValues(string(kind)).Inc()
	s.logger.Info("Operator notification appended", "pnr", pnr, "type", kind, "id", n.ID)
	return n, nil
}
