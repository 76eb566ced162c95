package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// Handlers serves the flight, notification and refund endpoints
type Handlers struct {
	flights       FlightService
	status        StatusService
	notifications NotificationService
	refunds       RefundService
	logger        logger.Logger
}

// NewHandlers creates the HTTP handlers
func NewHandlers(
	flights FlightService,
	status StatusService,
	notifications NotificationService,
	refunds RefundService,
	logger logger.Logger,
) *Handlers {
	return &Handlers{
		flights:       flights,
		status:        status,
		notifications: notifications,
		refunds:       refunds,
		logger:        logger,
	}
}

func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}

// ListFlights handles GET /flights?source=&destination=&airport=&status=
func (h *Handlers) ListFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.FlightFilter{
		AirportCode: q.Get("airport"),
		Source:      q.Get("source"),
		Destination: q.Get("destination"),
		Status:      entity.FlightStatus(q.Get("status")),
	}

	flights, err := h.flights.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, "list_flights", err)
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /flights/{airport}/{flightId}
func (h *Handlers) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.flights.Get(r.Context(), chi.URLParam(r, "airport"), chi.URLParam(r, "flightId"))
	if err != nil {
		writeError(w, h.logger, "get_flight", err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// RegisterFlight handles POST /flights
func (h *Handlers) RegisterFlight(w http.ResponseWriter, r *http.Request) {
	var flight entity.Flight
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&flight); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.flights.Register(r.Context(), &flight)
	if err != nil {
		writeError(w, h.logger, "register_flight", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateFlight handles PATCH /flights/{airport}/{flightId}
// with body {status, dep_time?, delay, notifyPassengers}
func (h *Handlers) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	f, err := decodeFields(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	airportCode := chi.URLParam(r, "airport")
	flightID := chi.URLParam(r, "flightId")
	notify := f.boolean(true, "notifyPassengers", "notify_passengers")
	depTime := f.str("dep_time", "depTime", "new_dep_time")
	delay := f.str("delay", "duration")

	status := strings.ToLower(f.str("status"))
	if status == "" && (depTime != "" || delay != "") {
		status = strings.ToLower(string(entity.FlightDelayed))
	}

	var flight *entity.Flight
	switch status {
	case strings.ToLower(string(entity.FlightDelayed)):
		flight, err = h.status.ApplyDelay(r.Context(), usecase.DelayCommand{
			AirportCode:      airportCode,
			FlightID:         flightID,
			NewDepTime:       depTime,
			Duration:         delay,
			NotifyPassengers: notify,
		})
	case strings.ToLower(string(entity.FlightCancelled)):
		flight, err = h.status.ApplyCancellation(r.Context(), airportCode, flightID, notify)
	default:
		writeError(w, h.logger, "update_flight", entity.NewValidationError("status", "status must be Delayed or Cancelled"))
		return
	}
	if err != nil {
		writeError(w, h.logger, "update_flight", err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// CancelFlight handles DELETE /flights/{airport}/{flightId}
func (h *Handlers) CancelFlight(w http.ResponseWriter, r *http.Request) {
	notify := true
	if v := r.URL.Query().Get("notifyPassengers"); v == "false" || v == "0" {
		notify = false
	}

	flight, err := h.status.ApplyCancellation(r.Context(), chi.URLParam(r, "airport"), chi.URLParam(r, "flightId"), notify)
	if err != nil {
		writeError(w, h.logger, "cancel_flight", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "Flight cancelled",
		"flight":  flight,
	})
}

// ResendNotifications handles POST /flights/{airport}/{flightId}/resend
func (h *Handlers) ResendNotifications(w http.ResponseWriter, r *http.Request) {
	queued, err := h.status.ResendPending(r.Context(), chi.URLParam(r, "airport"), chi.URLParam(r, "flightId"))
	if err != nil {
		writeError(w, h.logger, "resend", err)
		return
	}
	respondJSON(w, http.StatusAccepted, map[string]int{"queued": queued})
}

// ListNotifications handles GET /notifications/{pnr}
func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListByPNR(r.Context(), chi.URLParam(r, "pnr"))
	if err != nil {
		writeError(w, h.logger, "list_notifications", err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

// Notify handles POST /admin/notify with body {pnr, message, type?, flight_id?}
func (h *Handlers) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	f, err := decodeFields(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := h.notifications.Notify(r.Context(), usecase.NotifyCommand{
		PNR:         f.str("pnr"),
		Message:     f.str("message"),
		Type:        entity.NotificationType(f.str("type")),
		FlightID:    f.str("flight_id", "flightId"),
		AirportCode: f.str("airport_code", "airport"),
	})
	if err != nil {
		writeError(w, h.logger, "notify", err)
		return
	}
	respondJSON(w, http.StatusCreated, n)
}

// SubmitRefund handles POST /api/refunds/submit
func (h *Handlers) SubmitRefund(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	f, err := decodeFields(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.refunds.Submit(r.Context(), refundSubmission(f))
	if err != nil {
		writeError(w, h.logger, "submit_refund", err)
		return
	}
	respondJSON(w, http.StatusAccepted, req)
}

// refundSubmission maps every spelling seen from the passenger surfaces onto one shape
func refundSubmission(f fields) usecase.RefundSubmission {
	return usecase.RefundSubmission{
		AirportCode:   f.str("airport_code", "airportCode", "airport"),
		FlightID:      f.str("flight_id", "flightId", "flight"),
		PassengerID:   f.str("passenger_id", "passengerId"),
		PNR:           f.str("pnr"),
		Name:          f.str("name"),
		UPIID:         f.str("upi_id", "upiId", "upi"),
		PayoutChannel: f.str("payout_channel", "payoutChannel", "method"),
		Amount:        f.str("amount"),
		Reason:        f.str("reason"),
	}
}

// ListRefundRequests handles GET /api/refund_requests/{airport}/{flightId}[?status=all]
func (h *Handlers) ListRefundRequests(w http.ResponseWriter, r *http.Request) {
	airportCode := chi.URLParam(r, "airport")
	flightID := chi.URLParam(r, "flightId")

	var (
		requests []*entity.RefundRequest
		err      error
	)
	if r.URL.Query().Get("status") == "all" {
		requests, err = h.refunds.History(r.Context(), airportCode, flightID)
	} else {
		requests, err = h.refunds.ListPending(r.Context(), airportCode, flightID)
	}
	if err != nil {
		writeError(w, h.logger, "list_refunds", err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// FinalizeRefund handles POST /api/refunds/finalize/{airport}/{flightId}/{passengerId}
func (h *Handlers) FinalizeRefund(w http.ResponseWriter, r *http.Request) {
	req, err := h.refunds.Finalize(r.Context(), chi.URLParam(r, "airport"), chi.URLParam(r, "flightId"), chi.URLParam(r, "passengerId"))
	if err != nil {
		writeError(w, h.logger, "finalize_refund", err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// RejectRefund handles POST /api/refunds/reject/{airport}/{flightId}/{passengerId}
func (h *Handlers) RejectRefund(w http.ResponseWriter, r *http.Request) {
	req, err := h.refunds.Reject(r.Context(), chi.URLParam(r, "airport"), chi.URLParam(r, "flightId"), chi.URLParam(r, "passengerId"))
	if err != nil {
		writeError(w, h.logger, "reject_refund", err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// AssignResource handles POST /api/refunds/assign/{airport}/{flightId}/{passengerId} with body {resource}
func (h *Handlers) AssignResource(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	f, err := decodeFields(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := h.refunds.AssignResource(r.Context(),
		chi.URLParam(r, "airport"),
		chi.URLParam(r, "flightId"),
		chi.URLParam(r, "passengerId"),
		f.str("resource", "resource_type", "resourceType"))
	if err != nil {
		writeError(w, h.logger, "assign_resource", err)
		return
	}
	respondJSON(w, http.StatusCreated, n)
}

// ImpactSummary handles GET /api/refunds/{airport}
func (h *Handlers) ImpactSummary(w http.ResponseWriter, r *http.Request) {
	impact, err := h.refunds.ImpactSummary(r.Context(), chi.URLParam(r, "airport"))
	if err != nil {
		writeError(w, h.logger, "impact_summary", err)
		return
	}
	respondJSON(w, http.StatusOK, impact)
}

// AffectedManifest handles GET /api/refunds/{airport}/{flightId}
func (h *Handlers) AffectedManifest(w http.ResponseWriter, r *http.Request) {
	passengers, err := h.refunds.AffectedManifest(r.Context(), chi.URLParam(r, "airport"), chi.URLParam(r, "flightId"))
	if err != nil {
		writeError(w, h.logger, "affected_manifest", err)
		return
	}
	respondJSON(w, http.StatusOK, passengers)
}
