package usecase_test

import (
	"context"
	"errors"
	"testing"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository/mocks"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type processorFixture struct {
	flights       *mocks.MockFlightRepository
	notifications *mocks.MockNotificationRepository
	deliveries    *mocks.MockDeliveryRepository
	airports      *mocks.MockAirportRepository
	publisher     *mocks.MockEventPublisher
	processor     *usecase.StatusProcessor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	ctrl := gomock.NewController(t)
	f := &processorFixture{
		flights:       mocks.NewMockFlightRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
		deliveries:    mocks.NewMockDeliveryRepository(ctrl),
		airports:      mocks.NewMockAirportRepository(ctrl),
		publisher:     mocks.NewMockEventPublisher(ctrl),
	}
	f.airports.EXPECT().GetByCode(gomock.Any(), gomock.Any()).
		Return(nil, entity.ErrNotFound).AnyTimes()
	f.processor = usecase.NewStatusProcessor(f.flights, f.notifications, f.deliveries, f.airports, f.publisher, newTestMetrics(), logger.NewNop())
	return f
}

// expectUpdate applies the update to a copy of current and returns it
func (f *processorFixture) expectUpdate(current *entity.Flight, check func(entity.StatusUpdate)) {
	f.flights.EXPECT().
		UpdateStatus(gomock.Any(), current.AirportCode, current.FlightID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, u entity.StatusUpdate) (*entity.Flight, error) {
			if check != nil {
				check(u)
			}
			updated := *current
			updated.Status = u.Status
			if u.DepTime != "" {
				updated.DepTime = u.DepTime
			}
			updated.DelayMinutes = u.DelayMinutes
			updated.Delay = u.Delay
			return &updated, nil
		})
}

func TestStatusProcessor_ApplyDelay(t *testing.T) {
	ctx := context.Background()

	t.Run("duration delay appends one DELAYED notification per PNR", func(t *testing.T) {
		f := newProcessorFixture(t)
		current := flight6E213(entity.FlightOnTime)

		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(current, nil)
		f.expectUpdate(current, func(u entity.StatusUpdate) {
			assert.Equal(t, entity.FlightDelayed, u.Status)
			assert.Equal(t, "11:30", u.DepTime)
			assert.Equal(t, "1h 30m", u.Delay)
			require.NotNil(t, u.DelayMinutes)
			assert.Equal(t, 90, *u.DelayMinutes)
		})
		f.notifications.EXPECT().AppendMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ns []*entity.Notification) ([]string, error) {
				require.Len(t, ns, 2)
				assert.Equal(t, "ABC123", ns[0].PNR)
				assert.Equal(t, "XYZ789", ns[1].PNR)
				for _, n := range ns {
					assert.Equal(t, entity.NotificationDelayed, n.Type)
					assert.Equal(t, "6E-213", n.FlightID)
					assert.Equal(t, "DEL", n.Source)
					assert.Equal(t, "BOM", n.Destination)
					assert.Contains(t, n.Message, "6E-213")
					assert.Contains(t, n.Message, "1h 30m")
					assert.Contains(t, n.Message, "11:30")
				}
				return []string{"n1", "n2"}, nil
			})
		f.deliveries.EXPECT().SaveMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds []*entity.Delivery) error {
				// P1 email, P2 whatsapp, P3 email + whatsapp
				assert.Len(t, ds, 4)
				for _, d := range ds {
					assert.Equal(t, entity.StatusPending, d.ProcessStatus)
					assert.NotEmpty(t, d.ID)
					assert.NotEmpty(t, d.Recipient)
				}
				return nil
			})
		f.publisher.EXPECT().PublishDisruption(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *entity.FlightDisrupted) error {
				assert.Equal(t, entity.EventFlightDisrupted, e.Type)
				assert.Equal(t, entity.FlightDelayed, e.Status)
				assert.Equal(t, []string{"ABC123", "XYZ789"}, e.AffectedPNRs)
				return nil
			})

		updated, err := f.processor.ApplyDelay(ctx, usecase.DelayCommand{
			AirportCode:      "del",
			FlightID:         "6E-213",
			Duration:         "01:30",
			NotifyPassengers: true,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.FlightDelayed, updated.Status)
		assert.Equal(t, "11:30", updated.DepTime)
		assert.Equal(t, "1h 30m", updated.Delay)
	})

	t.Run("re-delay of a delayed flight is allowed", func(t *testing.T) {
		f := newProcessorFixture(t)
		current := flight6E213(entity.FlightDelayed)
		current.DepTime = "11:30"

		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(current, nil)
		f.expectUpdate(current, func(u entity.StatusUpdate) {
			assert.Equal(t, "12:00", u.DepTime)
			assert.Equal(t, "30m", u.Delay)
		})
		f.notifications.EXPECT().AppendMany(gomock.Any(), gomock.Len(2)).Return([]string{"a", "b"}, nil)
		f.publisher.EXPECT().PublishDisruption(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.processor.ApplyDelay(ctx, usecase.DelayCommand{
			AirportCode: "DEL",
			FlightID:    "6E-213",
			NewDepTime:  "12:00",
		})
		require.NoError(t, err)
	})

	t.Run("cancelled flight cannot be delayed", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightCancelled), nil)

		_, err := f.processor.ApplyDelay(ctx, usecase.DelayCommand{AirportCode: "DEL", FlightID: "6E-213", Duration: "1h"})
		assert.ErrorIs(t, err, entity.ErrFlightCancelled)
	})

	t.Run("invalid time is rejected before any write", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightOnTime), nil)

		_, err := f.processor.ApplyDelay(ctx, usecase.DelayCommand{AirportCode: "DEL", FlightID: "6E-213", NewDepTime: "25:99"})
		assert.True(t, entity.IsValidation(err))
	})

	t.Run("unknown flight", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "XX-1").Return(nil, entity.ErrNotFound)

		_, err := f.processor.ApplyDelay(ctx, usecase.DelayCommand{AirportCode: "DEL", FlightID: "XX-1", Duration: "1h"})
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("missing key", func(t *testing.T) {
		f := newProcessorFixture(t)

		_, err := f.processor.ApplyDelay(ctx, usecase.DelayCommand{FlightID: "6E-213", Duration: "1h"})
		assert.True(t, entity.IsValidation(err))
	})
}

func TestStatusProcessor_ApplyCancellation(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel 6E-213 at DEL notifies every PNR", func(t *testing.T) {
		f := newProcessorFixture(t)
		current := flight6E213(entity.FlightOnTime)

		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(current, nil)
		f.expectUpdate(current, func(u entity.StatusUpdate) {
			assert.Equal(t, entity.FlightCancelled, u.Status)
		})
		f.notifications.EXPECT().AppendMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ns []*entity.Notification) ([]string, error) {
				pnrs := make([]string, 0, len(ns))
				for _, n := range ns {
					assert.Equal(t, entity.NotificationCancelled, n.Type)
					assert.Equal(t, "6E-213", n.FlightID)
					pnrs = append(pnrs, n.PNR)
				}
				assert.ElementsMatch(t, []string{"ABC123", "XYZ789"}, pnrs)
				return []string{"n1", "n2"}, nil
			})
		f.deliveries.EXPECT().SaveMany(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().PublishDisruption(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-213", true)
		require.NoError(t, err)
		assert.Equal(t, entity.FlightCancelled, updated.Status)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightCancelled), nil)

		updated, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-213", true)
		require.NoError(t, err)
		assert.Equal(t, entity.FlightCancelled, updated.Status)
	})

	t.Run("losing a concurrent cancellation returns current state", func(t *testing.T) {
		f := newProcessorFixture(t)
		gomock.InOrder(
			f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightOnTime), nil),
			f.flights.EXPECT().UpdateStatus(gomock.Any(), "DEL", "6E-213", gomock.Any()).Return(nil, entity.ErrFlightCancelled),
			f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight6E213(entity.FlightCancelled), nil),
		)

		updated, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-213", true)
		require.NoError(t, err)
		assert.Equal(t, entity.FlightCancelled, updated.Status)
	})

	t.Run("notifyPassengers false skips dispatch but still appends", func(t *testing.T) {
		f := newProcessorFixture(t)
		current := flight6E213(entity.FlightOnTime)

		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(current, nil)
		f.expectUpdate(current, nil)
		f.notifications.EXPECT().AppendMany(gomock.Any(), gomock.Len(2)).Return([]string{"a", "b"}, nil)
		f.publisher.EXPECT().PublishDisruption(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-213", false)
		require.NoError(t, err)
	})

	t.Run("append failure is surfaced", func(t *testing.T) {
		f := newProcessorFixture(t)
		current := flight6E213(entity.FlightOnTime)

		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(current, nil)
		f.expectUpdate(current, nil)
		f.notifications.EXPECT().AppendMany(gomock.Any(), gomock.Any()).Return(nil, errors.New("mongo down"))

		_, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-213", true)
		assert.ErrorContains(t, err, "failed to append notifications")
	})

	t.Run("publish and enqueue failures do not fail the command", func(t *testing.T) {
		f := newProcessorFixture(t)
		current := flight6E213(entity.FlightOnTime)

		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(current, nil)
		f.expectUpdate(current, nil)
		f.notifications.EXPECT().AppendMany(gomock.Any(), gomock.Any()).Return([]string{"a", "b"}, nil)
		f.deliveries.EXPECT().SaveMany(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
		f.publisher.EXPECT().PublishDisruption(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		updated, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-213", true)
		require.NoError(t, err)
		assert.Equal(t, entity.FlightCancelled, updated.Status)
	})

	t.Run("unknown flight", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-999").Return(nil, entity.ErrNotFound)

		_, err := f.processor.ApplyCancellation(ctx, "DEL", "6E-999", true)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestStatusProcessor_ResendPending(t *testing.T) {
	ctx := context.Background()
	f := newProcessorFixture(t)

	flight := flight6E213(entity.FlightCancelled)
	flight.Passengers[2].NotificationSent = true

	latest := &entity.Notification{ID: "n1", PNR: "ABC123", FlightID: "6E-213", Type: entity.NotificationCancelled, Message: "cancelled"}

	f.flights.EXPECT().FindByKey(gomock.Any(), "DEL", "6E-213").Return(flight, nil)
	f.notifications.EXPECT().LatestDisruption(gomock.Any(), "ABC123", "DEL", "6E-213").Return(latest, nil)
	f.deliveries.EXPECT().SaveMany(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ds []*entity.Delivery) error {
			require.Len(t, ds, 2)
			for _, d := range ds {
				assert.Equal(t, "ABC123", d.PNR)
				assert.Equal(t, "n1", d.NotificationID)
			}
			return nil
		})

	queued, err := f.processor.ResendPending(ctx, "DEL", "6E-213")
	require.NoError(t, err)
	assert.Equal(t, 2, queued)
}
