package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"flightwatch-service/internal/infrastructure/oauth"
	"flightwatch-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Prints a Gmail refresh token with the send scope for GMAIL_REFRESH_TOKEN.
func main() {
	godotenv.Load()
	log := logger.NewLogger()
	defer log.Sync()

	addr := getEnv("OAUTH_CALLBACK_ADDR", ":8090")

	gmailOAuth := oauth.NewGmailOAuth(oauth.GmailConfig{
		ClientID:     os.Getenv("GMAIL_CLIENT_ID"),
		ClientSecret: os.Getenv("GMAIL_CLIENT_SECRET"),
		RedirectURL:  getEnv("GMAIL_REDIRECT_URL", "http://localhost:8090/oauth2callback"),
	}, log)

	state := uuid.NewString()
	done := make(chan struct{})
	var finish sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := gmailOAuth.Exchange(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if tokenJSON, err := oauth.TokenJSON(token); err != nil {
			log.Error("Failed to encode token", "error", err)
		} else {
			fmt.Printf("\nToken:\n%s\n", tokenJSON)
		}
		fmt.Printf("\nGMAIL_REFRESH_TOKEN=%s\n\n", token.RefreshToken)

		fmt.Fprint(w, "Authentication successful! You can close this window.")
		finish.Do(func() { close(done) })
	})

	fmt.Printf("Open this URL in your browser:\n%s\n", gmailOAuth.AuthURL(state))

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Callback server error", "error", err)
		}
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
