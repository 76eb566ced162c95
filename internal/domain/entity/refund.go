package entity

import (
	"strings"
	"time"
)

// RefundStatus is the lifecycle state of a refund request
type RefundStatus string

// Refund request status
const (
	RefundPending   RefundStatus = "pending"
	RefundCompleted RefundStatus = "completed"
	RefundRejected  RefundStatus = "rejected"
)

// DefaultRefundAmount applies when a submission has no usable amount
const DefaultRefundAmount = 5000

// PayoutChannel is how a completed refund is disbursed
type PayoutChannel string

const (
	PayoutUPI      PayoutChannel = "upi"
	PayoutOriginal PayoutChannel = "original"
)

// RefundRequest is a passenger compensation claim keyed by (airport, flight, passenger)
type RefundRequest struct {
	ID            uint          `json:"id"`
	AirportCode   string        `json:"airport_code"`
	FlightID      string        `json:"flight_id"`
	PassengerID   string        `json:"passenger_id"`
	PNR           string        `json:"pnr"`
	Name          string        `json:"name"`
	UPIID         string        `json:"upi_id,omitempty"`
	PayoutChannel PayoutChannel `json:"payout_channel"`
	Amount        int           `json:"amount"`
	Reason        string        `json:"reason,omitempty"`
	Status        RefundStatus  `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
}

// Normalize trims fields and fills defaults that do not depend on validation
func (r *RefundRequest) Normalize() {
	r.AirportCode = strings.ToUpper(strings.TrimSpace(r.AirportCode))
	r.FlightID = strings.TrimSpace(r.FlightID)
	r.PNR = strings.ToUpper(strings.TrimSpace(r.PNR))
	r.Name = strings.TrimSpace(r.Name)
	r.UPIID = strings.TrimSpace(r.UPIID)
	r.PassengerID = strings.TrimSpace(r.PassengerID)
	if r.PassengerID == "" {
		r.PassengerID = r.PNR
	}
	if r.PayoutChannel == "" {
		r.PayoutChannel = PayoutUPI
	}
}

// Validate checks a submission before it is sent or stored
func (r *RefundRequest) Validate() error {
	if r.PNR == "" {
		return NewValidationError("pnr", "PNR is required")
	}
	if r.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if r.AirportCode == "" {
		return NewValidationError("airport_code", "airport code is required")
	}
	if r.FlightID == "" {
		return NewValidationError("flight_id", "flight id is required")
	}
	switch r.PayoutChannel {
	case PayoutUPI:
		if r.UPIID == "" {
			return NewValidationError("upi_id", "UPI id is required for UPI payouts")
		}
	case PayoutOriginal:
	default:
		return NewValidationError("payout_channel", "unsupported payout channel "+string(r.PayoutChannel))
	}
	if r.Amount < 0 {
		return NewValidationError("amount", "amount must not be negative")
	}
	return nil
}
