// Package scheduler runs the reminder polling loop: a fixed-interval
// ticker that fetches reminders due within a look-ahead window, fires a
// notification for each one that has come due and marks it sent.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
	"go.uber.org/zap"
)

type State int32

const (
	StateIdle State = iota
	StatePolling
	StateChecking
)

// ErrPermissionDenied keeps the scheduler in Idle when the notification
// collaborator cannot deliver.
var ErrPermissionDenied = errors.New("notification permission not granted")

type remindersService interface {
	Pending(ctx context.Context, window time.Duration) ([]*model.Reminder, error)
	MarkSent(ctx context.Context, id int64) error
}

// Notification is the payload handed to the notification collaborator.
type Notification struct {
	Title      string
	Body       string
	ReminderID int64
	EventID    int64
}

type Notifier interface {
	PermissionGranted(ctx context.Context) bool
	Notify(ctx context.Context, n *Notification) error
}

type Scheduler struct {
	logger    *zap.SugaredLogger
	reminders remindersService
	notifier  Notifier
	period    time.Duration
	lookahead time.Duration

	mu      sync.Mutex
	enabled bool
	cancel  context.CancelFunc
	state   atomic.Int32

	// suppressed remembers reminders already handled this window, so a
	// failed mark-sent cannot re-fire the same notification on the next
	// tick. Suppression wins over delivery confirmation.
	suppressed map[int64]time.Time

	// now is swapped in tests.
	now func() time.Time
}

func New(
	logger *zap.SugaredLogger,
	reminders remindersService,
	notifier Notifier,
	period time.Duration,
	lookahead time.Duration,
) *Scheduler {
	return &Scheduler{
		logger:     logger,
		reminders:  reminders,
		notifier:   notifier,
		period:     period,
		lookahead:  lookahead,
		suppressed: make(map[int64]time.Time),
		now:        time.Now,
	}
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Enable moves Idle→Polling: an immediate check, then one per period.
// Without notification permission the scheduler stays Idle.
func (s *Scheduler) Enable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		return nil
	}

	if !s.notifier.PermissionGranted(ctx) {
		return ErrPermissionDenied
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.enabled = true
	s.cancel = cancel
	s.state.Store(int32(StatePolling))

	go s.run(runCtx)

	return nil
}

// Disable stops the ticker; no further checks run after it returns.
func (s *Scheduler) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}

	s.cancel()
	s.enabled = false
	s.state.Store(int32(StateIdle))
}

func (s *Scheduler) run(ctx context.Context) {
	s.CheckOnce(ctx)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckOnce(ctx)
		}
	}
}

// CheckOnce performs one Polling→Checking→Polling pass. A tick arriving
// while the previous check is still in flight is skipped rather than
// overlapped.
func (s *Scheduler) CheckOnce(ctx context.Context) {
	if !s.state.CompareAndSwap(int32(StatePolling), int32(StateChecking)) {
		return
	}
	defer func() {
		s.mu.Lock()
		if s.enabled {
			s.state.Store(int32(StatePolling))
		} else {
			s.state.Store(int32(StateIdle))
		}
		s.mu.Unlock()
	}()

	pending, err := s.reminders.Pending(ctx, s.lookahead)
	if err != nil {
		// Non-fatal: report and let the next tick retry.
		s.logger.Errorw("failed to fetch pending reminders", "err", err)
		return
	}

	s.pruneSuppressed()

	// Sequential on purpose: deterministic notification order, no
	// duplicate-fire races within a tick.
	for _, r := range pending {
		if r.ReminderTime.After(s.now()) {
			continue
		}
		if s.isSuppressed(r.ID) {
			continue
		}

		if err := s.notifier.Notify(ctx, &Notification{
			Title:      "📅 日历提醒",
			Body:       "您有一个即将开始的事件",
			ReminderID: r.ID,
			EventID:    r.EventID,
		}); err != nil {
			s.logger.Errorw("failed to send notification", "reminder_id", r.ID, "err", err)
		}

		if err := s.reminders.MarkSent(ctx, r.ID); err != nil {
			s.logger.Errorw("failed to mark reminder sent", "reminder_id", r.ID, "err", err)
		}

		// Suppress locally even when mark-sent failed.
		s.suppress(r.ID)
	}
}

func (s *Scheduler) suppress(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressed[id] = s.now()
}

func (s *Scheduler) isSuppressed(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.suppressed[id]
	return ok
}

// pruneSuppressed drops entries old enough to be outside any current
// look-ahead window.
func (s *Scheduler) pruneSuppressed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-2 * s.lookahead)
	for id, at := range s.suppressed {
		if at.Before(cutoff) {
			delete(s.suppressed, id)
		}
	}
}
