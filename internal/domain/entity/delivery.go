package entity

import (
	"time"
)

// Delivery Process Status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// Channel is an outbound passenger contact channel
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsapp Channel = "whatsapp"
)

// Delivery is one outbound copy of a notification to one passenger over one channel
type Delivery struct {
	ID               string    `bson:"_id"`
	NotificationID   string    `bson:"notificationId"`
	PNR              string    `bson:"pnr"`
	AirportCode      string    `bson:"airportCode"`
	FlightID         string    `bson:"flightId"`
	PassengerID      string    `bson:"passengerId"`
	Channel          Channel   `bson:"channel"`
	Recipient        string    `bson:"recipient"`
	Subject          string    `bson:"subject"`
	Body             string    `bson:"body"`
	CreatedAt        time.Time `bson:"createdAt"`
	ProcessedAt      time.Time `bson:"processedAt"`
	ProcessStatus    string    `bson:"processStatus"`
	ProcessStartedAt time.Time `bson:"processStartedAt"`
	Attempts         int       `bson:"attempts"`
	ProviderRef      string    `bson:"providerRef,omitempty"`
	ErrorDetail      string    `bson:"errorDetail"`
}
