package templates

import (
	"fmt"
	"strings"

	"flightwatch-service/internal/domain/entity"
)

// Resource types an operator may assign to a stranded passenger
const (
	ResourceHotel     = "hotel"
	ResourceMeal      = "meal"
	ResourceTransport = "transport"
)

// ValidResource reports whether resource is one of the assignable types
func ValidResource(resource string) bool {
	switch strings.ToLower(resource) {
	case ResourceHotel, ResourceMeal, ResourceTransport:
		return true
	}
	return false
}

// DelayedMessage is the feed text for a delay
func DelayedMessage(flight *entity.Flight, origin string) string {
	msg := fmt.Sprintf("Flight %s from %s to %s is delayed by %s. New departure %s.",
		flight.FlightID, place(flight.Source, origin), flight.Destination, flight.Delay, flight.DepTime)
	if flight.Airline != "" {
		msg = flight.Airline + " " + msg
	}
	return msg
}

// CancelledMessage is the feed text for a cancellation
func CancelledMessage(flight *entity.Flight, origin string) string {
	msg := fmt.Sprintf("Flight %s from %s to %s has been cancelled. Refund and rebooking options are available.",
		flight.FlightID, place(flight.Source, origin), flight.Destination)
	if flight.Airline != "" {
		msg = flight.Airline + " " + msg
	}
	return msg
}

// ResourceAssignedMessage is the feed text for a voucher assignment
func ResourceAssignedMessage(resource, flightID string) string {
	r := strings.ToLower(resource)
	if r != "" {
		r = strings.ToUpper(r[:1]) + r[1:]
	}
	return fmt.Sprintf("%s assigned for flight %s", r, flightID)
}

// place prefers the airport label from master data when one was resolved
func place(code, label string) string {
	if label != "" {
		return label
	}
	return code
}
