package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/logger"
)

func newTestDelivery() *entity.Delivery {
	return &entity.Delivery{
		ID:          "d-1",
		PNR:         "XYZ789",
		AirportCode: "DEL",
		FlightID:    "6E-213",
		Channel:     entity.ChannelWhatsapp,
		Recipient:   "+919800000003",
		Body:        "Flight 6E-213 has been cancelled.",
	}
}

func TestWhatsappSender_Send(t *testing.T) {
	var got mailcastRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/mailcast/send-message", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"taskId":"task-42","status":"queued"}}`))
	}))
	defer srv.Close()

	s := NewWhatsappSender(WhatsappConfig{
		BaseURL:   srv.URL + "/",
		Token:     "secret",
		CompanyID: "company",
		AgentID:   "agent",
	}, srv.Client(), logger.NewNop())

	ref, err := s.Send(context.Background(), newTestDelivery())
	require.NoError(t, err)
	assert.Equal(t, "task-42", ref)
	assert.Equal(t, entity.ChannelWhatsapp, s.Channel())

	assert.Equal(t, "company", got.CompanyID)
	assert.Equal(t, "agent", got.AgentID)
	assert.Equal(t, "+919800000003", got.PhoneNumber)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "Flight 6E-213 has been cancelled.", got.Message.Text)
}

func TestWhatsappSender_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "server error", status: http.StatusBadGateway, body: `{"message":"down"}`, wantStatus: http.StatusBadGateway},
		{name: "rejected", status: http.StatusOK, body: `{"success":false,"error":{"message":"bad number","code":"E1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewWhatsappSender(WhatsappConfig{BaseURL: srv.URL}, srv.Client(), logger.NewNop())
			_, err := s.Send(context.Background(), newTestDelivery())
			require.Error(t, err)

			var te *entity.TransportError
			if tt.wantStatus != 0 {
				require.True(t, errors.As(err, &te))
				assert.Equal(t, tt.wantStatus, te.StatusCode)
			} else {
				assert.False(t, errors.As(err, &te))
			}
		})
	}
}

func TestWhatsappSender_EmptyBody(t *testing.T) {
	s := NewWhatsappSender(WhatsappConfig{BaseURL: "http://127.0.0.1:0"}, nil, logger.NewNop())
	d := newTestDelivery()
	d.Body = ""

	_, err := s.Send(context.Background(), d)
	assert.ErrorIs(t, err, errEmptyMessage)
}
