package client

import (
	"fmt"

	"flightwatch-service/internal/domain/entity"
)

// RecoveryAction is a recovery option offered while Disaster Mode is active
type RecoveryAction string

const (
	ActionAlternativeFlights RecoveryAction = "alternative_flights"
	ActionAlternativeTrains  RecoveryAction = "alternative_trains"
	ActionNearbyHotels       RecoveryAction = "nearby_hotels"
	ActionRefund             RecoveryAction = "refund"
	ActionLiveSupport        RecoveryAction = "live_support"
)

// RecoveryContext pre-fills the external recovery collaborators
type RecoveryContext struct {
	PNR         string
	AirportCode string
	FlightID    string
	Source      string
	Destination string
}

// DisasterState is the outcome of evaluating a notification set
type DisasterState struct {
	Active  bool
	Banner  string
	Actions []RecoveryAction
	Context RecoveryContext
}

// Coordinator decides whether Disaster Mode is on for a PNR.
// It holds no state between evaluations.
type Coordinator struct{}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Evaluate is active iff at least one CANCELLED notification exists. The most
// recent cancellation supplies the recovery context. Refund is not offered again
// once the passenger has already requested one.
func (c *Coordinator) Evaluate(notifications []entity.Notification, refundRequested bool) DisasterState {
	var latest *entity.Notification
	for i := range notifications {
		n := &notifications[i]
		if n.Type != entity.NotificationCancelled {
			continue
		}
		if latest == nil || n.CreatedAt.After(latest.CreatedAt) ||
			(n.CreatedAt.Equal(latest.CreatedAt) && n.ID > latest.ID) {
			latest = n
		}
	}
	if latest == nil {
		return DisasterState{}
	}

	actions := []RecoveryAction{ActionAlternativeFlights, ActionAlternativeTrains, ActionNearbyHotels}
	if !refundRequested {
		actions = append(actions, ActionRefund)
	}
	actions = append(actions, ActionLiveSupport)

	return DisasterState{
		Active:  true,
		Banner:  fmt.Sprintf("Flight %s has been cancelled. Recovery options are available.", latest.FlightID),
		Actions: actions,
		Context: RecoveryContext{
			PNR:         latest.PNR,
			AirportCode: latest.AirportCode,
			FlightID:    latest.FlightID,
			Source:      latest.Source,
			Destination: latest.Destination,
		},
	}
}
