package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"flightwatch-service/internal/infrastructure/session"
)

const (
	keyLastTrackedPNR  = "last_tracked_pnr"
	keyRefundRequested = "refund_requested:"
)

// Session holds client-local state: the last tracked PNR and the
// per-PNR "refund already requested" flags.
// Load it once at startup; Clear it when tracking is stopped explicitly.
type Session struct {
	store session.Store

	mu      sync.RWMutex
	lastPNR string
}

func NewSession(store session.Store) *Session {
	return &Session{store: store}
}

// Load reads the last tracked PNR from the store
func (s *Session) Load(ctx context.Context) (string, error) {
	pnr, _, err := s.store.Get(ctx, keyLastTrackedPNR)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	s.mu.Lock()
	s.lastPNR = pnr
	s.mu.Unlock()
	return pnr, nil
}

func (s *Session) LastTrackedPNR() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastPNR
}

// Track records pnr as the last tracked PNR
func (s *Session) Track(ctx context.Context, pnr string) error {
	pnr = normalizePNR(pnr)
	if err := s.store.Set(ctx, keyLastTrackedPNR, pnr); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.mu.Lock()
	s.lastPNR = pnr
	s.mu.Unlock()
	return nil
}

// Clear forgets the last tracked PNR
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyLastTrackedPNR); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.mu.Lock()
	s.lastPNR = ""
	s.mu.Unlock()
	return nil
}

func (s *Session) MarkRefundRequested(ctx context.Context, pnr string) error {
	if err := s.store.Set(ctx, keyRefundRequested+normalizePNR(pnr), "true"); err != nil {
		return fmt.Errorf("failed to save refund flag: %w", err)
	}
	return nil
}

func (s *Session) RefundRequested(ctx context.Context, pnr string) (bool, error) {
	v, ok, err := s.store.Get(ctx, keyRefundRequested+normalizePNR(pnr))
	if err != nil {
		return false, fmt.Errorf("failed to read refund flag: %w", err)
	}
	return ok && v == "true", nil
}

func normalizePNR(pnr string) string {
	return strings.ToUpper(strings.TrimSpace(pnr))
}
