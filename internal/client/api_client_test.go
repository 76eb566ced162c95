package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"flightwatch-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_SubmitRefund_EmptyUPIMakesNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, srv.Client())

	_, err := c.SubmitRefund(context.Background(), RefundForm{
		AirportCode: "DEL",
		FlightID:    "6E-213",
		PNR:         "ABC123",
		Name:        "Aarav Sharma",
		UPIID:       "",
	})

	var ve *entity.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "upi_id", ve.Field)
	assert.NotEmpty(t, ve.Message)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestAPIClient_SubmitRefund_DefaultAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/refunds/submit", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(5000), body["amount"])
		assert.Equal(t, "x@upi", body["upi_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		io.WriteString(w, `{"id":1,"pnr":"ABC123","amount":5000,"status":"pending"}`)
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, srv.Client())

	req, err := c.SubmitRefund(context.Background(), RefundForm{
		AirportCode: "DEL", FlightID: "6E-213", PNR: "ABC123", Name: "Aarav", UPIID: "x@upi", Amount: "",
	})
	require.NoError(t, err)
	assert.Equal(t, 5000, req.Amount)
	assert.Equal(t, entity.RefundPending, req.Status)
}

func TestAPIClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "404 is ErrNotFound",
			status: http.StatusNotFound,
			body:   `{"error":"not found","code":"not_found"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, entity.ErrNotFound)
			},
		},
		{
			name:   "409 flight cancelled",
			status: http.StatusConflict,
			body:   `{"error":"flight is cancelled","code":"flight_cancelled"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, entity.ErrFlightCancelled)
			},
		},
		{
			name:   "400 is a validation error",
			status: http.StatusBadRequest,
			body:   `{"error":"invalid duration","field":"delay","code":"validation"}`,
			check: func(t *testing.T, err error) {
				var ve *entity.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "delay", ve.Field)
			},
		},
		{
			name:   "500 is a transport error",
			status: http.StatusInternalServerError,
			body:   `{"error":"internal error"}`,
			check: func(t *testing.T, err error) {
				var te *entity.TransportError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := NewAPIClient(srv.URL, srv.Client()).DelayFlight(context.Background(), "DEL", "6E-213", "", "1h", true)
			tc.check(t, err)
		})
	}
}

func TestAPIClient_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewAPIClient(url, nil).ListNotifications(context.Background(), "XYZ789")

	var te *entity.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 0, te.StatusCode)
}

func TestAPIClient_DelayFlight_ValidatesLocally(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, srv.Client())

	_, err := c.DelayFlight(context.Background(), "DEL", "6E-213", "7pm", "", true)
	assert.True(t, entity.IsValidation(err))

	_, err = c.DelayFlight(context.Background(), "DEL", "6E-213", "", "", true)
	assert.True(t, entity.IsValidation(err))

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestAPIClient_CancelFlight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/flights/DEL/6E-213", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("notifyPassengers"))
		io.WriteString(w, `{"ok":true,"flight":{"airport_code":"DEL","flight_id":"6E-213","status":"Cancelled"}}`)
	}))
	defer srv.Close()

	flight, err := NewAPIClient(srv.URL, srv.Client()).CancelFlight(context.Background(), "DEL", "6E-213", false)
	require.NoError(t, err)
	assert.Equal(t, entity.FlightCancelled, flight.Status)
}

func TestAPIClient_ListNotifications_SortsNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/XYZ789", r.URL.Path)
		io.WriteString(w, `[
			{"id":"a","pnr":"XYZ789","type":"INFO","message":"a","created_at":"2025-03-01T10:00:00Z"},
			{"id":"b","pnr":"XYZ789","type":"DELAYED","message":"b","created_at":"2025-03-01T11:00:00Z"}
		]`)
	}))
	defer srv.Close()

	ns, err := NewAPIClient(srv.URL, srv.Client()).ListNotifications(context.Background(), "XYZ789")
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, "b", ns[0].ID)
}
