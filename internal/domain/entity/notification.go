package entity

import (
	"sort"
	"time"
)

// NotificationType classifies an entry of the per-PNR notification log
type NotificationType string

const (
	NotificationInfo       NotificationType = "INFO"
	NotificationDelayed    NotificationType = "DELAYED"
	NotificationCancelled  NotificationType = "CANCELLED"
	NotificationGateChange NotificationType = "GATE_CHANGE"
	NotificationBoarding   NotificationType = "BOARDING"
)

// IsInformational reports whether an operator may append this type by hand.
// DELAYED and CANCELLED are produced only by registry mutations.
func (t NotificationType) IsInformational() bool {
	switch t {
	case NotificationInfo, NotificationGateChange, NotificationBoarding:
		return true
	}
	return false
}

// Notification is an append-only disruption or informational event for one PNR
type Notification struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	PNR         string           `json:"pnr" bson:"pnr"`
	FlightID    string           `json:"flight_id,omitempty" bson:"flightId,omitempty"`
	AirportCode string           `json:"airport_code,omitempty" bson:"airportCode,omitempty"`
	Source      string           `json:"source,omitempty" bson:"source,omitempty"`
	Destination string           `json:"destination,omitempty" bson:"destination,omitempty"`
	Type        NotificationType `json:"type" bson:"type"`
	Message     string           `json:"message" bson:"message"`
	CreatedAt   time.Time        `json:"created_at" bson:"createdAt"`
}

// SortNewestFirst orders notifications by CreatedAt descending, ties broken by id
func SortNewestFirst(ns []Notification) {
	sort.SliceStable(ns, func(i, j int) bool {
		if ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].ID > ns[j].ID
		}
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
}
