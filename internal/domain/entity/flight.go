// internal/domain/entity/flight.go
package entity

import (
	"time"
)

// FlightStatus is the operational state of a flight in the registry
type FlightStatus string

const (
	FlightOnTime    FlightStatus = "OnTime"
	FlightDelayed   FlightStatus = "Delayed"
	FlightCancelled FlightStatus = "Cancelled"
)

// CanTransitionTo reports whether the registry accepts moving from s to next.
// Cancelled is terminal; Delayed may be re-entered but never reverts to OnTime.
func (s FlightStatus) CanTransitionTo(next FlightStatus) bool {
	switch s {
	case FlightOnTime, "":
		return next == FlightDelayed || next == FlightCancelled
	case FlightDelayed:
		return next == FlightDelayed || next == FlightCancelled
	default:
		return false
	}
}

// Passenger is the manifest entry of a flight
type Passenger struct {
	PassengerID      string `json:"passenger_id" bson:"passengerId" yaml:"passenger_id"`
	PNR              string `json:"pnr" bson:"pnr" yaml:"pnr"`
	Name             string `json:"name" bson:"name" yaml:"name"`
	Seat             string `json:"seat,omitempty" bson:"seat,omitempty" yaml:"seat"`
	Email            string `json:"email,omitempty" bson:"email,omitempty" yaml:"email"`
	Phone            string `json:"phone,omitempty" bson:"phone,omitempty" yaml:"phone"`
	NotificationSent bool   `json:"notification_sent" bson:"notificationSent" yaml:"notification_sent"`
}

type Flight struct {
	ID           string       `json:"-" bson:"_id,omitempty" yaml:"-"`
	AirportCode  string       `json:"airport_code" bson:"airportCode" yaml:"airport_code"` // {airportCode, flightId} - unique index
	FlightID     string       `json:"flight_id" bson:"flightId" yaml:"flight_id"`
	Airline      string       `json:"airline" bson:"airline" yaml:"airline"`
	Source       string       `json:"source" bson:"source" yaml:"source"`
	Destination  string       `json:"destination" bson:"destination" yaml:"destination"`
	DepTime      string       `json:"dep_time" bson:"depTime" yaml:"dep_time"`
	ArrivalTime  string       `json:"arrival_time" bson:"arrivalTime" yaml:"arrival_time"`
	Status       FlightStatus `json:"status" bson:"status" yaml:"status"`
	DelayMinutes *int         `json:"delay_minutes,omitempty" bson:"delayMinutes,omitempty" yaml:"-"`
	Delay        string       `json:"delay,omitempty" bson:"delay,omitempty" yaml:"-"`
	Passengers   []Passenger  `json:"passengers,omitempty" bson:"passengers" yaml:"passengers"`
	CreatedAt    time.Time    `json:"created_at" bson:"createdAt" yaml:"-"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updatedAt" yaml:"-"`
}

// AffectedPNRs returns the distinct PNRs on the manifest in manifest order
func (f *Flight) AffectedPNRs() []string {
	seen := make(map[string]struct{}, len(f.Passengers))
	pnrs := make([]string, 0, len(f.Passengers))
	for _, p := range f.Passengers {
		if p.PNR == "" {
			continue
		}
		if _, ok := seen[p.PNR]; ok {
			continue
		}
		seen[p.PNR] = struct{}{}
		pnrs = append(pnrs, p.PNR)
	}
	return pnrs
}

// FindPassenger looks a passenger up by passenger id, falling back to PNR
func (f *Flight) FindPassenger(passengerID string) (*Passenger, bool) {
	for i := range f.Passengers {
		if f.Passengers[i].PassengerID == passengerID {
			return &f.Passengers[i], true
		}
	}
	for i := range f.Passengers {
		if f.Passengers[i].PNR == passengerID {
			return &f.Passengers[i], true
		}
	}
	return nil, false
}

// StatusUpdate carries the fields written by a delay or cancellation
type StatusUpdate struct {
	Status       FlightStatus
	DepTime      string
	DelayMinutes *int
	Delay        string
}

// FlightFilter narrows registry listings; empty fields match everything
type FlightFilter struct {
	AirportCode string
	Source      string
	Destination string
	Status      FlightStatus
}

// FlightImpact summarises a cancelled flight for the refund desk
type FlightImpact struct {
	FlightID string `json:"flight_id"`
	Count    int    `json:"count"`
}
