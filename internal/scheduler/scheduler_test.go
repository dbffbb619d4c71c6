package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReminders struct {
	mu          sync.Mutex
	pending     []*model.Reminder
	pendingErr  error
	markSentErr error
	markedSent  []int64
}

func (f *fakeReminders) Pending(context.Context, time.Duration) ([]*model.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pendingErr != nil {
		return nil, f.pendingErr
	}
	return append([]*model.Reminder{}, f.pending...), nil
}

func (f *fakeReminders) MarkSent(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markSentErr != nil {
		return f.markSentErr
	}
	f.markedSent = append(f.markedSent, id)
	return nil
}

func (f *fakeReminders) marked() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64{}, f.markedSent...)
}

type fakeNotifier struct {
	mu       sync.Mutex
	granted  bool
	notified []*Notification
}

func (f *fakeNotifier) PermissionGranted(context.Context) bool {
	return f.granted
}

func (f *fakeNotifier) Notify(_ context.Context, n *Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, n)
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notified)
}

func dueReminder(id, eventID int64, at time.Time) *model.Reminder {
	return &model.Reminder{
		ID: id,
		ReminderCreate: model.ReminderCreate{
			EventID:      eventID,
			ReminderTime: at,
		},
	}
}

func newTestScheduler(reminders *fakeReminders, notifier *fakeNotifier) *Scheduler {
	// A period of an hour keeps the ticker out of the way; checks are
	// driven explicitly.
	return New(zap.NewNop().Sugar(), reminders, notifier, time.Hour, 5*time.Minute)
}

func TestEnableWithoutPermission(t *testing.T) {
	s := newTestScheduler(&fakeReminders{}, &fakeNotifier{granted: false})

	err := s.Enable(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, StateIdle, s.State())
}

func TestEnableChecksImmediately(t *testing.T) {
	reminders := &fakeReminders{
		pending: []*model.Reminder{dueReminder(1, 10, time.Now().Add(-time.Minute))},
	}
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(reminders, notifier)

	require.NoError(t, s.Enable(context.Background()))
	defer s.Disable()

	require.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(reminders.marked()) == 1 }, time.Second, 5*time.Millisecond)

	notifier.mu.Lock()
	n := notifier.notified[0]
	notifier.mu.Unlock()
	assert.Equal(t, int64(1), n.ReminderID)
	assert.Equal(t, int64(10), n.EventID)
	assert.Equal(t, "📅 日历提醒", n.Title)
}

func TestEnableIsIdempotent(t *testing.T) {
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(&fakeReminders{}, notifier)

	require.NoError(t, s.Enable(context.Background()))
	require.NoError(t, s.Enable(context.Background()))
	assert.Equal(t, StatePolling, s.State())

	s.Disable()
	assert.Equal(t, StateIdle, s.State())
}

func TestSuppressionSurvivesMarkSentFailure(t *testing.T) {
	reminders := &fakeReminders{
		pending:     []*model.Reminder{dueReminder(1, 10, time.Now().Add(-time.Minute))},
		markSentErr: errors.New("db down"),
	}
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(reminders, notifier)

	require.NoError(t, s.Enable(context.Background()))
	defer s.Disable()

	require.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return s.State() == StatePolling }, time.Second, 5*time.Millisecond)

	// The reminder is still pending upstream, but a second pass must not
	// re-fire it.
	s.CheckOnce(context.Background())
	assert.Equal(t, 1, notifier.count())
}

func TestFutureRemindersWait(t *testing.T) {
	reminders := &fakeReminders{
		pending: []*model.Reminder{dueReminder(1, 10, time.Now().Add(3*time.Minute))},
	}
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(reminders, notifier)

	require.NoError(t, s.Enable(context.Background()))
	defer s.Disable()

	require.Eventually(t, func() bool { return s.State() == StatePolling }, time.Second, 5*time.Millisecond)
	s.CheckOnce(context.Background())

	assert.Zero(t, notifier.count())
	assert.Empty(t, reminders.marked())
}

func TestCheckSkippedWhenDisabled(t *testing.T) {
	reminders := &fakeReminders{
		pending: []*model.Reminder{dueReminder(1, 10, time.Now().Add(-time.Minute))},
	}
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(reminders, notifier)

	// Never enabled: state is Idle and a check must be a no-op.
	s.CheckOnce(context.Background())
	assert.Zero(t, notifier.count())
	assert.Equal(t, StateIdle, s.State())
}

func TestDisableStopsPolling(t *testing.T) {
	reminders := &fakeReminders{}
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(reminders, notifier)

	require.NoError(t, s.Enable(context.Background()))
	require.Eventually(t, func() bool { return s.State() == StatePolling }, time.Second, 5*time.Millisecond)

	s.Disable()
	assert.Equal(t, StateIdle, s.State())

	reminders.mu.Lock()
	reminders.pending = []*model.Reminder{dueReminder(1, 10, time.Now().Add(-time.Minute))}
	reminders.mu.Unlock()

	s.CheckOnce(context.Background())
	assert.Zero(t, notifier.count())
}

func TestPollErrorIsRetriedNextTick(t *testing.T) {
	reminders := &fakeReminders{pendingErr: errors.New("transient")}
	notifier := &fakeNotifier{granted: true}
	s := newTestScheduler(reminders, notifier)

	require.NoError(t, s.Enable(context.Background()))
	defer s.Disable()

	require.Eventually(t, func() bool { return s.State() == StatePolling }, time.Second, 5*time.Millisecond)

	reminders.mu.Lock()
	reminders.pendingErr = nil
	reminders.pending = []*model.Reminder{dueReminder(1, 10, time.Now().Add(-time.Minute))}
	reminders.mu.Unlock()

	s.CheckOnce(context.Background())
	assert.Equal(t, 1, notifier.count())
}
