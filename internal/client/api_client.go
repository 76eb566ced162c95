package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/utils"
)

// APIClient is a typed client for the flightwatch HTTP API
type APIClient struct {
	baseURL       string
	httpClient    *http.Client
	defaultAmount int
}

// NewAPIClient creates a client for baseURL; a nil httpClient uses a 30s timeout client
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &APIClient{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    httpClient,
		defaultAmount: entity.DefaultRefundAmount,
	}
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
	Code  string `json:"code"`
}

// do sends one request and decodes a 2xx body into out
func (c *APIClient) do(ctx context.Context, op, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &entity.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &entity.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classify(op, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &entity.TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// classify maps an error response back onto the domain taxonomy
func classify(op string, status int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Error
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, entity.ErrNotFound)
	case status == http.StatusBadRequest:
		return entity.NewValidationError(eb.Field, msg)
	case status == http.StatusConflict && eb.Code == "flight_cancelled":
		return fmt.Errorf("%s: %w", op, entity.ErrFlightCancelled)
	case status == http.StatusConflict && eb.Code == "already_exists":
		return fmt.Errorf("%s: %w", op, entity.ErrAlreadyExists)
	}
	return &entity.TransportError{Op: op, StatusCode: status, Err: fmt.Errorf("%s", msg)}
}

func flightPath(airportCode, flightID string) string {
	return "/flights/" + url.PathEscape(airportCode) + "/" + url.PathEscape(flightID)
}

func refundPath(action, airportCode, flightID, passengerID string) string {
	return "/api/refunds/" + action + "/" + url.PathEscape(airportCode) + "/" + url.PathEscape(flightID) + "/" + url.PathEscape(passengerID)
}

// ListFlights returns flights matching the filter
func (c *APIClient) ListFlights(ctx context.Context, filter entity.FlightFilter) ([]*entity.Flight, error) {
	q := url.Values{}
	if filter.Source != "" {
		q.Set("source", filter.Source)
	}
	if filter.Destination != "" {
		q.Set("destination", filter.Destination)
	}
	if filter.AirportCode != "" {
		q.Set("airport", filter.AirportCode)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	path := "/flights"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var flights []*entity.Flight
	if err := c.do(ctx, "list flights", http.MethodGet, path, nil, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *APIClient) GetFlight(ctx context.Context, airportCode, flightID string) (*entity.Flight, error) {
	var flight entity.Flight
	if err := c.do(ctx, "get flight", http.MethodGet, flightPath(airportCode, flightID), nil, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (c *APIClient) RegisterFlight(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	var created entity.Flight
	if err := c.do(ctx, "register flight", http.MethodPost, "/flights", flight, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DelayFlight delays a flight to an absolute depTime, or by delay when depTime is empty.
// Both syntaxes are checked locally before the request is sent.
func (c *APIClient) DelayFlight(ctx context.Context, airportCode, flightID, depTime, delay string, notify bool) (*entity.Flight, error) {
	depTime, delay = strings.TrimSpace(depTime), strings.TrimSpace(delay)
	switch {
	case depTime != "":
		if _, err := utils.ParseClock(depTime); err != nil {
			return nil, entity.NewValidationError("dep_time", err.Error())
		}
	case delay != "":
		if _, err := utils.ParseDuration(delay); err != nil {
			return nil, entity.NewValidationError("delay", err.Error())
		}
	default:
		return nil, entity.NewValidationError("delay", utils.ErrMissingDelay.Error())
	}

	body := map[string]interface{}{
		"status":           entity.FlightDelayed,
		"notifyPassengers": notify,
	}
	if depTime != "" {
		body["dep_time"] = depTime
	} else {
		body["delay"] = delay
	}

	var flight entity.Flight
	if err := c.do(ctx, "delay flight", http.MethodPatch, flightPath(airportCode, flightID), body, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// CancelFlight cancels a flight. There is exactly one request and one failure path.
func (c *APIClient) CancelFlight(ctx context.Context, airportCode, flightID string, notify bool) (*entity.Flight, error) {
	path := flightPath(airportCode, flightID)
	if !notify {
		path += "?notifyPassengers=false"
	}

	var resp struct {
		Flight *entity.Flight `json:"flight"`
	}
	if err := c.do(ctx, "cancel flight", http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Flight, nil
}

// Resend re-queues the latest disruption notice for passengers not yet reached
func (c *APIClient) Resend(ctx context.Context, airportCode, flightID string) (int, error) {
	var resp struct {
		Queued int `json:"queued"`
	}
	if err := c.do(ctx, "resend", http.MethodPost, flightPath(airportCode, flightID)+"/resend", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Queued, nil
}

// ListNotifications returns the full history for a PNR, newest first
func (c *APIClient) ListNotifications(ctx context.Context, pnr string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	if err := c.do(ctx, "list notifications", http.MethodGet, "/notifications/"+url.PathEscape(pnr), nil, &notifications); err != nil {
		return nil, err
	}
	entity.SortNewestFirst(notifications)
	return notifications, nil
}

func (c *APIClient) Notify(ctx context.Context, pnr, message string, notificationType entity.NotificationType) (*entity.Notification, error) {
	if strings.TrimSpace(pnr) == "" {
		return nil, entity.NewValidationError("pnr", "PNR is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, entity.NewValidationError("message", "message is required")
	}

	body := map[string]string{"pnr": pnr, "message": message}
	if notificationType != "" {
		body["type"] = string(notificationType)
	}
	var n entity.Notification
	if err := c.do(ctx, "notify", http.MethodPost, "/admin/notify", body, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// RefundForm is a refund claim as typed in by a passenger
type RefundForm struct {
	AirportCode   string
	FlightID      string
	PassengerID   string
	PNR           string
	Name          string
	UPIID         string
	PayoutChannel entity.PayoutChannel
	Amount        string
	Reason        string
}

// Request validates the form locally; an empty or non-numeric amount takes the default
func (f RefundForm) Request(defaultAmount int) (*entity.RefundRequest, error) {
	amount, err := utils.ParseAmount(f.Amount, defaultAmount)
	if err != nil {
		return nil, entity.NewValidationError("amount", err.Error())
	}
	req := &entity.RefundRequest{
		AirportCode:   f.AirportCode,
		FlightID:      f.FlightID,
		PassengerID:   f.PassengerID,
		PNR:           f.PNR,
		Name:          f.Name,
		UPIID:         f.UPIID,
		PayoutChannel: f.PayoutChannel,
		Amount:        amount,
		Reason:        f.Reason,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// SubmitRefund validates the form and submits it. Invalid forms never reach the network.
func (c *APIClient) SubmitRefund(ctx context.Context, form RefundForm) (*entity.RefundRequest, error) {
	req, err := form.Request(c.defaultAmount)
	if err != nil {
		return nil, err
	}

	var accepted entity.RefundRequest
	if err := c.do(ctx, "submit refund", http.MethodPost, "/api/refunds/submit", req, &accepted); err != nil {
		return nil, err
	}
	return &accepted, nil
}

// PendingRefunds lists pending requests for a flight
func (c *APIClient) PendingRefunds(ctx context.Context, airportCode, flightID string) ([]*entity.RefundRequest, error) {
	var requests []*entity.RefundRequest
	path := "/api/refund_requests/" + url.PathEscape(airportCode) + "/" + url.PathEscape(flightID)
	if err := c.do(ctx, "list refunds", http.MethodGet, path, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *APIClient) FinalizeRefund(ctx context.Context, airportCode, flightID, passengerID string) (*entity.RefundRequest, error) {
	var req entity.RefundRequest
	if err := c.do(ctx, "finalize refund", http.MethodPost, refundPath("finalize", airportCode, flightID, passengerID), nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *APIClient) RejectRefund(ctx context.Context, airportCode, flightID, passengerID string) (*entity.RefundRequest, error) {
	var req entity.RefundRequest
	if err := c.do(ctx, "reject refund", http.MethodPost, refundPath("reject", airportCode, flightID, passengerID), nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *APIClient) AssignResource(ctx context.Context, airportCode, flightID, passengerID, resource string) (*entity.Notification, error) {
	var n entity.Notification
	body := map[string]string{"resource": resource}
	if err := c.do(ctx, "assign resource", http.MethodPost, refundPath("assign", airportCode, flightID, passengerID), body, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ImpactSummary lists cancelled flights at an airport with their passenger counts
func (c *APIClient) ImpactSummary(ctx context.Context, airportCode string) ([]entity.FlightImpact, error) {
	var impact []entity.FlightImpact
	if err := c.do(ctx, "impact summary", http.MethodGet, "/api/refunds/"+url.PathEscape(airportCode), nil, &impact); err != nil {
		return nil, err
	}
	return impact, nil
}

func (c *APIClient) AffectedManifest(ctx context.Context, airportCode, flightID string) ([]entity.Passenger, error) {
	var passengers []entity.Passenger
	path := "/api/refunds/" + url.PathEscape(airportCode) + "/" + url.PathEscape(flightID)
	if err := c.do(ctx, "affected manifest", http.MethodGet, path, nil, &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}
