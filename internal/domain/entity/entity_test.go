package entity

import (
	"errors"
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from FlightStatus
		to   FlightStatus
		want bool
	}{
		{FlightOnTime, FlightDelayed, true},
		{FlightOnTime, FlightCancelled, true},
		{FlightOnTime, FlightOnTime, false},
		{"", FlightDelayed, true},
		{FlightDelayed, FlightDelayed, true},
		{FlightDelayed, FlightCancelled, true},
		{FlightDelayed, FlightOnTime, false},
		{FlightCancelled, FlightDelayed, false},
		{FlightCancelled, FlightCancelled, false},
		{FlightCancelled, FlightOnTime, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s->%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFlight_AffectedPNRs(t *testing.T) {
	f := &Flight{Passengers: []Passenger{
		{PassengerID: "P1", PNR: "ABC123"},
		{PassengerID: "P2", PNR: "ABC123"},
		{PassengerID: "P3", PNR: "XYZ789"},
		{PassengerID: "P4"},
	}}
	assert.Equal(t, []string{"ABC123", "XYZ789"}, f.AffectedPNRs())

	assert.Empty(t, (&Flight{}).AffectedPNRs())
}

func TestFlight_FindPassenger(t *testing.T) {
	f := &Flight{Passengers: []Passenger{
		{PassengerID: "P1", PNR: "ABC123", Name: "Asha"},
		{PassengerID: "XYZ789", PNR: "LMN456", Name: "Ravi"},
		{PassengerID: "P3", PNR: "XYZ789", Name: "Meera"},
	}}

	p, ok := f.FindPassenger("P1")
	require.True(t, ok)
	assert.Equal(t, "Asha", p.Name)

	// passenger id wins over a PNR match
	p, ok = f.FindPassenger("XYZ789")
	require.True(t, ok)
	assert.Equal(t, "Ravi", p.Name)

	p, ok = f.FindPassenger("ABC123")
	require.True(t, ok)
	assert.Equal(t, "P1", p.PassengerID)

	p.NotificationSent = true
	assert.True(t, f.Passengers[0].NotificationSent)

	_, ok = f.FindPassenger("NOPE")
	assert.False(t, ok)
}

func TestRefundRequest_Normalize(t *testing.T) {
	r := &RefundRequest{AirportCode: " del ", FlightID: " 6E-213 ", PNR: "xyz789", Name: " Meera ", UPIID: " meera@upi "}
	r.Normalize()

	assert.Equal(t, "DEL", r.AirportCode)
	assert.Equal(t, "6E-213", r.FlightID)
	assert.Equal(t, "XYZ789", r.PNR)
	assert.Equal(t, "XYZ789", r.PassengerID)
	assert.Equal(t, "Meera", r.Name)
	assert.Equal(t, "meera@upi", r.UPIID)
	assert.Equal(t, PayoutUPI, r.PayoutChannel)
}

func TestRefundRequest_Validate(t *testing.T) {
	valid := func() *RefundRequest {
		return &RefundRequest{
			AirportCode:   "DEL",
			FlightID:      "6E-213",
			PNR:           "XYZ789",
			Name:          "Meera",
			UPIID:         "meera@upi",
			PayoutChannel: PayoutUPI,
			Amount:        5000,
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *RefundRequest)
		wantField string
	}{
		{"valid", func(r *RefundRequest) {}, ""},
		{"missing pnr", func(r *RefundRequest) { r.PNR = "" }, "pnr"},
		{"missing name", func(r *RefundRequest) { r.Name = "" }, "name"},
		{"missing airport", func(r *RefundRequest) { r.AirportCode = "" }, "airport_code"},
		{"missing flight", func(r *RefundRequest) { r.FlightID = "" }, "flight_id"},
		{"upi without id", func(r *RefundRequest) { r.UPIID = "" }, "upi_id"},
		{"original without upi id", func(r *RefundRequest) { r.UPIID = ""; r.PayoutChannel = PayoutOriginal }, ""},
		{"unknown channel", func(r *RefundRequest) { r.PayoutChannel = "cash" }, "payout_channel"},
		{"negative amount", func(r *RefundRequest) { r.Amount = -1 }, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ns := []Notification{
		{ID: "a", CreatedAt: t0},
		{ID: "c", CreatedAt: t0.Add(time.Minute)},
		{ID: "b", CreatedAt: t0},
		{ID: "d", CreatedAt: t0.Add(-time.Minute)},
	}
	SortNewestFirst(ns)

	ids := make([]string, len(ns))
	for i, n := range ns {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"c", "b", "a", "d"}, ids)
}

func TestNotificationType_IsInformational(t *testing.T) {
	assert.True(t, NotificationInfo.IsInformational())
	assert.True(t, NotificationGateChange.IsInformational())
	assert.True(t, NotificationBoarding.IsInformational())
	assert.False(t, NotificationDelayed.IsInformational())
	assert.False(t, NotificationCancelled.IsInformational())
	assert.False(t, NotificationType("OTHER").IsInformational())
}

func TestAirport_Label(t *testing.T) {
	var none *Airport
	assert.Equal(t, "", none.Label())
	assert.Equal(t, "DEL", (&Airport{Code: "DEL"}).Label())
	assert.Equal(t, "DEL | Indira Gandhi International", (&Airport{Code: "DEL", Name: "Indira Gandhi International"}).Label())
	assert.Equal(t, "DEL | Indira Gandhi International | New Delhi",
		(&Airport{Code: "DEL", Name: "Indira Gandhi International", CityName: "New Delhi"}).Label())
}

func TestAirport_Location(t *testing.T) {
	var none *Airport
	assert.Equal(t, time.UTC, none.Location())
	assert.Equal(t, time.UTC, (&Airport{Code: "DEL", Zone: "Not/AZone"}).Location())
	assert.Equal(t, "Asia/Kolkata", (&Airport{Code: "DEL", Zone: "Asia/Kolkata"}).Location().String())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "pnr: PNR is required", NewValidationError("pnr", "PNR is required").Error())
	assert.Equal(t, "bad input", NewValidationError("", "bad input").Error())

	cause := errors.New("connection refused")
	te := &TransportError{Op: "list flights", Err: cause}
	assert.Equal(t, "list flights: connection refused", te.Error())
	assert.ErrorIs(t, te, cause)

	te = &TransportError{Op: "list flights", StatusCode: 502, Err: cause}
	assert.Equal(t, "list flights: status 502: connection refused", te.Error())
	assert.False(t, IsValidation(te))
}
