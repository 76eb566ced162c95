package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/logger"
)

const defaultWhatsappURL = "https://whatsapp-service.daisi.dev"

var errEmptyMessage = errors.New("message text is empty")

// WhatsappConfig holds the mailcast service credentials
type WhatsappConfig struct {
	BaseURL   string
	Token     string
	CompanyID string
	AgentID   string
}

// mailcastRequest is the send-message body of the mailcast service
type mailcastRequest struct {
	CompanyID   string          `json:"companyId"`
	AgentID     string          `json:"agentId"`
	PhoneNumber string          `json:"phoneNumber"`
	Message     mailcastMessage `json:"message"`
	ScheduleAt  string          `json:"scheduleAt,omitempty"`
	Type        string          `json:"type"`
}

type mailcastMessage struct {
	Text string `json:"text"`
}

type mailcastResponse struct {
	Success bool `json:"success"`
	Data    struct {
		TaskID string `json:"taskId"`
		Status string `json:"status"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// WhatsappSender delivers passenger messages through the WhatsApp mailcast service
type WhatsappSender struct {
	logger  logger.Logger
	client  *http.Client
	baseURL string
	config  WhatsappConfig
}

// NewWhatsappSender creates a new WhatsApp sender
func NewWhatsappSender(cfg WhatsappConfig, client *http.Client, logger logger.Logger) *WhatsappSender {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultWhatsappURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &WhatsappSender{
		logger:  logger,
		client:  client,
		baseURL: baseURL,
		config:  cfg,
	}
}

// Channel returns the channel this sender serves
func (s *WhatsappSender) Channel() entity.Channel {
	return entity.ChannelWhatsapp
}

// Send queues a text message for immediate delivery and returns the mailcast task id
func (s *WhatsappSender) Send(ctx context.Context, delivery *entity.Delivery) (string, error) {
	text := strings.TrimSpace(delivery.Body)
	if text == "" {
		return "", fmt.Errorf("invalid message for %s: %w", delivery.PNR, errEmptyMessage)
	}

	payload, err := json.Marshal(mailcastRequest{
		CompanyID:   s.config.CompanyID,
		AgentID:     s.config.AgentID,
		PhoneNumber: delivery.Recipient,
		Message:     mailcastMessage{Text: text},
		ScheduleAt:  time.Now().UTC().Format(time.RFC3339),
		Type:        "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1/mailcast/send-message", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &entity.TransportError{Op: "whatsapp send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &entity.TransportError{
			Op:         "whatsapp send",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	var out mailcastResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("mailcast rejected message: %s (code: %s)", out.Error.Message, out.Error.Code)
	}

	s.logger.Info("WhatsApp message queued",
		"taskId", out.Data.TaskID,
		"pnr", delivery.PNR,
		"flightId", delivery.FlightID)

	return out.Data.TaskID, nil
}
