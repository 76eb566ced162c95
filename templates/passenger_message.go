package templates

import (
	"fmt"
	"strings"

	"flightwatch-service/internal/domain/entity"
)

// EmailSubject renders the subject line for a notification email
func EmailSubject(n *entity.Notification) string {
	switch n.Type {
	case entity.NotificationCancelled:
		return fmt.Sprintf("Flight %s cancelled", n.FlightID)
	case entity.NotificationDelayed:
		return fmt.Sprintf("Flight %s delayed", n.FlightID)
	default:
		if n.FlightID != "" {
			return fmt.Sprintf("Update for flight %s", n.FlightID)
		}
		return "Travel update"
	}
}

// PassengerBody renders the message sent to one passenger over any channel
func PassengerBody(p entity.Passenger, n *entity.Notification) string {
	var b strings.Builder
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "Passenger"
	}
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	b.WriteString(n.Message)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Booking reference: %s\n", p.PNR)
	if p.Seat != "" {
		fmt.Fprintf(&b, "Seat: %s\n", p.Seat)
	}
	if n.Type == entity.NotificationCancelled {
		b.WriteString("\nYou can request a refund or explore alternative travel from your dashboard.\n")
	}
	return b.String()
}
