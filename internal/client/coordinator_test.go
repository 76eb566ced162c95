package client

import (
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCoordinator_Evaluate(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewCoordinator()

	t.Run("inactive without a cancellation", func(t *testing.T) {
		state := c.Evaluate([]entity.Notification{
			{ID: "1", Type: entity.NotificationDelayed, CreatedAt: base},
			{ID: "2", Type: entity.NotificationInfo, CreatedAt: base},
		}, false)
		assert.False(t, state.Active)
		assert.Empty(t, state.Actions)
	})

	t.Run("inactive for empty set", func(t *testing.T) {
		assert.False(t, c.Evaluate(nil, false).Active)
	})

	t.Run("most recent cancellation supplies the context", func(t *testing.T) {
		state := c.Evaluate([]entity.Notification{
			{ID: "1", Type: entity.NotificationCancelled, FlightID: "AI-101", Source: "DEL", Destination: "BLR", CreatedAt: base},
			{ID: "2", Type: entity.NotificationInfo, CreatedAt: base.Add(2 * time.Hour)},
			{ID: "3", Type: entity.NotificationCancelled, FlightID: "6E-213", Source: "DEL", Destination: "BOM", CreatedAt: base.Add(time.Hour)},
		}, false)

		assert.True(t, state.Active)
		assert.Equal(t, "6E-213", state.Context.FlightID)
		assert.Equal(t, "DEL", state.Context.Source)
		assert.Equal(t, "BOM", state.Context.Destination)
		assert.Contains(t, state.Banner, "6E-213")
		assert.Contains(t, state.Actions, ActionRefund)
		assert.Contains(t, state.Actions, ActionAlternativeTrains)
	})

	t.Run("refund is not offered twice", func(t *testing.T) {
		state := c.Evaluate([]entity.Notification{
			{ID: "1", Type: entity.NotificationCancelled, FlightID: "6E-213", CreatedAt: base},
		}, true)

		assert.True(t, state.Active)
		assert.NotContains(t, state.Actions, ActionRefund)
		assert.Contains(t, state.Actions, ActionLiveSupport)
	})
}
