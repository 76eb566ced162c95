package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"flightwatch-service/internal/client"
	"flightwatch-service/internal/domain/entity"
)

// consoleSink prints tracker output; Disaster Mode is printed only when it changes
type consoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	disaster map[string]bool
	shown    map[string]int
}

func newConsoleSink(out io.Writer) *consoleSink {
	return &consoleSink{out: out, disaster: make(map[string]bool), shown: make(map[string]int)}
}

func (s *consoleSink) Toast(pnr string, fresh []entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range fresh {
		fmt.Fprintf(s.out, "[%s] %s %s: %s\n", pnr, n.CreatedAt.Local().Format("15:04"), n.Type, n.Message)
	}
}

func (s *consoleSink) Feed(pnr string, notifications []entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.shown[pnr]
	s.shown[pnr] = len(notifications)
	if ok && prev == len(notifications) {
		return
	}
	fmt.Fprintf(s.out, "[%s] %d notification(s) in feed\n", pnr, len(notifications))
}

func (s *consoleSink) DisasterMode(pnr string, state client.DisasterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disaster[pnr] == state.Active {
		return
	}
	s.disaster[pnr] = state.Active
	if !state.Active {
		return
	}

	actions := make([]string, 0, len(state.Actions))
	for _, a := range state.Actions {
		actions = append(actions, string(a))
	}
	fmt.Fprintf(s.out, "[%s] !!! %s\n", pnr, state.Banner)
	fmt.Fprintf(s.out, "[%s]     route %s -> %s, options: %s\n", pnr, state.Context.Source, state.Context.Destination, strings.Join(actions, ", "))
}
