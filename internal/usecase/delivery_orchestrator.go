package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"

	"golang.org/x/time/rate"
)

// DispatchConfig tunes the delivery loop
type DispatchConfig struct {
	Interval   time.Duration
	BatchSize  int
	StaleAfter time.Duration
	Rate       float64 // messages per second per channel
	Burst      int
}

// DeliveryOrchestrator drains the delivery queue through the channel senders
type DeliveryOrchestrator struct {
	deliveryRepo repository.DeliveryRepository
	flightRepo   repository.FlightRepository
	router       ChannelRouter
	limiters     map[entity.Channel]*rate.Limiter
	config       DispatchConfig
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewDeliveryOrchestrator creates a new delivery orchestrator
func NewDeliveryOrchestrator(
	deliveryRepo repository.DeliveryRepository,
	flightRepo repository.FlightRepository,
	router ChannelRouter,
	config DispatchConfig,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DeliveryOrchestrator {
	if config.Interval <= 0 {
		config.Interval = 15 * time.Second
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.StaleAfter <= 0 {
		config.StaleAfter = 5 * time.Minute
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}
	limit := rate.Inf
	if config.Rate > 0 {
		limit = rate.Limit(config.Rate)
	}

	return &DeliveryOrchestrator{
		deliveryRepo: deliveryRepo,
		flightRepo:   flightRepo,
		router:       router,
		limiters: map[entity.Channel]*rate.Limiter{
			entity.ChannelEmail:    rate.NewLimiter(limit, config.Burst),
			entity.ChannelWhatsapp: rate.NewLimiter(limit, config.Burst),
		},
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// ProcessDelivery sends a single delivery and records the outcome
func (o *DeliveryOrchestrator) ProcessDelivery(ctx context.Context, delivery *entity.Delivery) error {
	sender := o.router.GetSender(delivery.Channel)
	if sender == nil {
		o.logger.Debug("No sender for channel",
			"channel", delivery.Channel,
			"deliveryId", delivery.ID)

		// Not an error: the channel is simply not configured
		return o.deliveryRepo.MarkAsProcessed(ctx, delivery.ID, entity.StatusSkipped, "", "no sender registered for channel")
	}

	if limiter, ok := o.limiters[delivery.Channel]; ok {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	if err := o.deliveryRepo.UpdateStatus(ctx, delivery.ID, entity.StatusProcessing, time.Now().UTC()); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			o.logger.Debug("Delivery claimed elsewhere", "deliveryId", delivery.ID)
			return nil
		}
		return fmt.Errorf("failed to claim delivery: %w", err)
	}

	ref, err := sender.Send(ctx, delivery)
	if err != nil {
		o.logger.Error("Sender failed to deliver",
			"deliveryId", delivery.ID,
			"channel", delivery.Channel,
			"pnr", delivery.PNR,
			"error", err)
		o.metrics.DeliveriesFailed.WithLabelValues(string(delivery.Channel)).Inc()

		// Mark as failed but don't return error - let other deliveries continue
		if markErr := o.deliveryRepo.MarkAsProcessed(ctx, delivery.ID, entity.StatusFailed, "", err.Error()); markErr != nil {
			o.logger.Error("Failed to mark delivery failed", "deliveryId", delivery.ID, "error", markErr)
		}
		return nil
	}

	if err := o.deliveryRepo.MarkAsProcessed(ctx, delivery.ID, entity.StatusCompleted, ref, ""); err != nil {
		return fmt.Errorf("failed to mark as processed: %w", err)
	}
	o.metrics.DeliveriesSent.WithLabelValues(string(delivery.Channel)).Inc()

	if err := o.flightRepo.MarkPassengerNotified(ctx, delivery.AirportCode, delivery.FlightID, delivery.PassengerID); err != nil && !errors.Is(err, entity.ErrNotFound) {
		o.logger.Warn("Failed to flag passenger as notified",
			"airport", delivery.AirportCode,
			"flightId", delivery.FlightID,
			"passengerId", delivery.PassengerID,
			"error", err)
	}

	o.logger.Info("Delivery completed",
		"deliveryId", delivery.ID,
		"channel", delivery.Channel,
		"providerRef", ref)
	return nil
}

// ProcessPendingDeliveries processes one batch of queued deliveries
func (o *DeliveryOrchestrator) ProcessPendingDeliveries(ctx context.Context) error {
	// Reset stale processing deliveries
	reset, err := o.deliveryRepo.ResetProcessingDeliveries(ctx, o.config.StaleAfter)
	if err != nil {
		o.logger.Error("Failed to reset stale deliveries", "error", err)
	} else if reset > 0 {
		o.logger.Warn("Reset stale processing deliveries", "count", reset)
	}

	deliveries, err := o.deliveryRepo.FindUnprocessed(ctx, o.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to find unprocessed deliveries: %w", err)
	}

	if len(deliveries) == 0 {
		return nil
	}

	o.logger.Info("Processing pending deliveries", "count", len(deliveries))

	for _, delivery := range deliveries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := o.ProcessDelivery(ctx, delivery); err != nil {
			o.logger.Error("Failed to process pending delivery",
				"deliveryId", delivery.ID,
				"error", err)
		}
	}

	return nil
}

// Run drains the queue on every tick until ctx is cancelled
func (o *DeliveryOrchestrator) Run(ctx context.Context) error {
	ticker := time.NewTicker(o.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.logger.Info("Delivery dispatcher stopped")
			return nil
		case <-ticker.C:
			if err := o.ProcessPendingDeliveries(ctx); err != nil && !errors.Is(err, context.Canceled) {
				o.logger.Error("Error processing deliveries", "error", err)
				o.metrics.ErrorsCount.WithLabelValues("dispatch").Inc()
			}
		}
	}
}
