package entity

import "time"

// EventFlightDisrupted is the type tag of a published disruption event
const EventFlightDisrupted = "FlightDisrupted"

// FlightDisrupted is published after every successful delay or cancellation
// so that rebooking and other downstream consumers can react.
type FlightDisrupted struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	AirportCode  string       `json:"airport_code"`
	FlightID     string       `json:"flight_id"`
	Source       string       `json:"source"`
	Destination  string       `json:"destination"`
	Status       FlightStatus `json:"status"`
	DepTime      string       `json:"dep_time"`
	Delay        string       `json:"delay,omitempty"`
	AffectedPNRs []string     `json:"affected_pnrs"`
	OccurredAt   time.Time    `json:"occurred_at"`
}
