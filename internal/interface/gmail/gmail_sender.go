package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Sender delivers passenger emails through the Gmail API
type Sender struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewSender creates a new Gmail sender authenticated by tokenSource
func NewSender(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (*Sender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &Sender{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

// Channel returns the channel this sender serves
func (s *Sender) Channel() entity.Channel {
	return entity.ChannelEmail
}

// Send delivers one email and returns the Gmail message id
func (s *Sender) Send(ctx context.Context, delivery *entity.Delivery) (string, error) {
	raw := BuildRawMessage(s.from, delivery.Recipient, delivery.Subject, delivery.Body)

	msg, err := s.gmailService.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", &entity.TransportError{Op: "gmail send", Err: err}
	}

	s.logger.Info("Email sent",
		"messageId", msg.Id,
		"pnr", delivery.PNR,
		"flightId", delivery.FlightID)

	return msg.Id, nil
}

// BuildRawMessage renders a plain-text RFC 2822 message encoded for the Gmail API
func BuildRawMessage(from, to, subject, body string) string {
	var b strings.Builder
	if from != "" {
		b.WriteString("From: " + from + "\r\n")
	}
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
