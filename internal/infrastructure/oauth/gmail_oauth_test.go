package oauth

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"flightwatch-service/pkg/logger"
)

func TestGmailOAuth_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  GmailConfig
		want bool
	}{
		{"complete", GmailConfig{ClientID: "id", ClientSecret: "secret", RefreshToken: "rt"}, true},
		{"no refresh token", GmailConfig{ClientID: "id", ClientSecret: "secret"}, false},
		{"no client", GmailConfig{RefreshToken: "rt"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGmailOAuth(tt.cfg, logger.NewNop()).Configured())
		})
	}
}

func TestGmailOAuth_AuthURL(t *testing.T) {
	o := NewGmailOAuth(GmailConfig{
		ClientID:    "client-1",
		RedirectURL: "http://localhost:8090/oauth2callback",
	}, logger.NewNop())

	u, err := url.Parse(o.AuthURL("state-123"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Contains(t, q.Get("scope"), "gmail.send")
}

func TestGmailOAuth_TokenSourceIsShared(t *testing.T) {
	o := NewGmailOAuth(GmailConfig{ClientID: "id", ClientSecret: "s", RefreshToken: "rt"}, logger.NewNop())
	assert.Same(t, o.TokenSource(context.Background()), o.TokenSource(context.Background()))
}

func TestGmailOAuth_ExchangeRequiresCode(t *testing.T) {
	o := NewGmailOAuth(GmailConfig{ClientID: "id"}, logger.NewNop())
	_, err := o.Exchange(context.Background(), "")
	assert.Error(t, err)
}

func TestTokenJSON(t *testing.T) {
	out, err := TokenJSON(&oauth2.Token{AccessToken: "at", RefreshToken: "rt"})
	require.NoError(t, err)
	assert.Contains(t, out, `"refresh_token": "rt"`)
}
