package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"flightwatch-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

// GmailConfig holds the OAuth client of the sending mailbox
type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	RedirectURL  string // only needed for the consent flow
}

// GmailOAuth issues send-scoped access tokens for passenger email
type GmailOAuth struct {
	config       *oauth2.Config
	refreshToken string
	logger       logger.Logger

	once   sync.Once
	source oauth2.TokenSource
}

// NewGmailOAuth creates a new Gmail OAuth handler
func NewGmailOAuth(cfg GmailConfig, logger logger.Logger) *GmailOAuth {
	return &GmailOAuth{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{gmail.GmailSendScope},
		},
		refreshToken: cfg.RefreshToken,
		logger:       logger,
	}
}

// Configured reports whether the email channel can be enabled
func (o *GmailOAuth) Configured() bool {
	return o.config.ClientID != "" && o.config.ClientSecret != "" && o.refreshToken != ""
}

// TokenSource returns a shared source that refreshes only when the access token expires
func (o *GmailOAuth) TokenSource(ctx context.Context) oauth2.TokenSource {
	o.once.Do(func() {
		seed := &oauth2.Token{RefreshToken: o.refreshToken}
		o.source = oauth2.ReuseTokenSource(nil, o.config.TokenSource(ctx, seed))
	})
	return o.source
}

// AuthURL is the consent page an operator opens once to mint a refresh token
func (o *GmailOAuth) AuthURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades the consent callback code for a token
func (o *GmailOAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, fmt.Errorf("missing authorization code")
	}
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	if token.RefreshToken == "" {
		o.logger.Warn("Consent returned no refresh token; revoke access and retry")
	}
	o.logger.Info("Token obtained", "expiry", token.Expiry)
	return token, nil
}

// TokenJSON renders a token for the operator to store
func TokenJSON(token *oauth2.Token) (string, error) {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode token: %w", err)
	}
	return string(data), nil
}
