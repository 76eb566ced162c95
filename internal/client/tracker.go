package client

import (
	"context"
	"sync"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/logger"
)

// DefaultPollInterval is used when the tracker is given no interval
const DefaultPollInterval = 10 * time.Second

// NotificationFetcher pulls the full notification history of a PNR
type NotificationFetcher interface {
	ListNotifications(ctx context.Context, pnr string) ([]entity.Notification, error)
}

// RefundFlags reports whether a refund was already requested for a PNR
type RefundFlags interface {
	RefundRequested(ctx context.Context, pnr string) (bool, error)
}

// Sink receives tracker output. Calls for different PNRs may run concurrently.
type Sink interface {
	// Toast is called with notifications not seen before for the PNR
	Toast(pnr string, fresh []entity.Notification)
	// Feed is called after every tick with the displayed set, newest first.
	// A failed fetch yields an empty set.
	Feed(pnr string, notifications []entity.Notification)
	// DisasterMode is called after every tick with the recomputed state
	DisasterMode(pnr string, state DisasterState)
}

type trackTask struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Tracker polls the notification store for each tracked PNR.
// Each PNR gets one goroutine with its own ticker, so fetches for a PNR never overlap.
type Tracker struct {
	fetcher     NotificationFetcher
	sink        Sink
	flags       RefundFlags
	coordinator *Coordinator
	interval    time.Duration
	logger      logger.Logger

	mu    sync.Mutex
	tasks map[string]*trackTask
}

// NewTracker creates a tracker; flags may be nil
func NewTracker(fetcher NotificationFetcher, sink Sink, flags RefundFlags, interval time.Duration, logger logger.Logger) *Tracker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Tracker{
		fetcher:     fetcher,
		sink:        sink,
		flags:       flags,
		coordinator: NewCoordinator(),
		interval:    interval,
		logger:      logger,
		tasks:       make(map[string]*trackTask),
	}
}

// Start begins tracking pnr. It returns false if pnr is already tracked.
func (t *Tracker) Start(ctx context.Context, pnr string) bool {
	pnr = normalizePNR(pnr)
	if pnr == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.tasks[pnr]; ok {
		return false
	}

	taskCtx, cancel := context.WithCancel(ctx)
	task := &trackTask{cancel: cancel, done: make(chan struct{})}
	t.tasks[pnr] = task

	go func() {
		defer close(task.done)
		defer t.release(pnr, task)
		t.run(taskCtx, pnr)
	}()

	t.logger.Info("Started tracking", "pnr", pnr, "interval", t.interval.String())
	return true
}

// release drops the entry of a task whose goroutine has exited on its own,
// which happens when the context given to Start is cancelled
func (t *Tracker) release(pnr string, task *trackTask) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tasks[pnr] == task {
		delete(t.tasks, pnr)
	}
	task.cancel()
}

// Stop cancels tracking of pnr and waits for its goroutine to exit.
// It returns false if pnr was not tracked.
func (t *Tracker) Stop(pnr string) bool {
	pnr = normalizePNR(pnr)

	t.mu.Lock()
	task, ok := t.tasks[pnr]
	if ok {
		delete(t.tasks, pnr)
	}
	t.mu.Unlock()

	if !ok {
		return false
	}
	task.cancel()
	<-task.done
	t.logger.Info("Stopped tracking", "pnr", pnr)
	return true
}

// StopAll stops every tracked PNR
func (t *Tracker) StopAll() {
	for _, pnr := range t.Tracked() {
		t.Stop(pnr)
	}
}

// Tracked returns the PNRs currently tracked
func (t *Tracker) Tracked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	pnrs := make([]string, 0, len(t.tasks))
	for pnr := range t.tasks {
		pnrs = append(pnrs, pnr)
	}
	return pnrs
}

func (t *Tracker) run(ctx context.Context, pnr string) {
	poller := newPoller()

	t.tick(ctx, pnr, poller)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx, pnr, poller)
		}
	}
}

func (t *Tracker) tick(ctx context.Context, pnr string, p *poller) {
	notifications, err := t.fetcher.ListNotifications(ctx, pnr)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		t.logger.Warn("Failed to fetch notifications", "pnr", pnr, "error", err)
		t.sink.Feed(pnr, []entity.Notification{})
		t.sink.DisasterMode(pnr, DisasterState{})
		return
	}

	entity.SortNewestFirst(notifications)

	if fresh := p.observe(notifications); len(fresh) > 0 {
		t.sink.Toast(pnr, fresh)
	}
	t.sink.Feed(pnr, notifications)

	refundRequested := false
	if t.flags != nil {
		if refundRequested, err = t.flags.RefundRequested(ctx, pnr); err != nil {
			t.logger.Warn("Failed to read refund flag", "pnr", pnr, "error", err)
		}
	}
	t.sink.DisasterMode(pnr, t.coordinator.Evaluate(notifications, refundRequested))
}

// poller tracks which notification ids have been seen for one PNR.
// The seen set outlives a failed fetch, so a cleared display does not re-toast.
type poller struct {
	seen map[string]struct{}
}

func newPoller() *poller {
	return &poller{seen: make(map[string]struct{})}
}

// observe returns the notifications whose id was not seen before, in input order
func (p *poller) observe(notifications []entity.Notification) []entity.Notification {
	var fresh []entity.Notification
	for _, n := range notifications {
		key := notificationKey(n)
		if _, ok := p.seen[key]; ok {
			continue
		}
		p.seen[key] = struct{}{}
		fresh = append(fresh, n)
	}
	return fresh
}

func notificationKey(n entity.Notification) string {
	if n.ID != "" {
		return n.ID
	}
	return n.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + string(n.Type) + "|" + n.Message
}
