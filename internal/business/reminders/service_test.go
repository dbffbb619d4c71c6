package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemindersRepo struct {
	reminders  map[int64]*model.Reminder
	nextID     int64
	lastFilter model.RemindersFilter
}

func newFakeRemindersRepo() *fakeRemindersRepo {
	return &fakeRemindersRepo{reminders: map[int64]*model.Reminder{}}
}

func (f *fakeRemindersRepo) CreateReminder(_ context.Context, _ database.Queryable, reminder *model.ReminderCreate) (int64, error) {
	f.nextID++
	f.reminders[f.nextID] = &model.Reminder{ID: f.nextID, ReminderCreate: *reminder}
	return f.nextID, nil
}

func (f *fakeRemindersRepo) GetReminderByID(_ context.Context, _ database.Queryable, id int64) (*model.Reminder, error) {
	r, ok := f.reminders[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return r, nil
}

func (f *fakeRemindersRepo) GetReminders(_ context.Context, _ database.Queryable, filter model.RemindersFilter) ([]*model.Reminder, error) {
	f.lastFilter = filter
	var res []*model.Reminder
	for _, r := range f.reminders {
		if filter.PendingOnly && r.IsSent {
			continue
		}
		res = append(res, r)
	}
	return res, nil
}

func (f *fakeRemindersRepo) MarkSent(_ context.Context, _ database.Queryable, id int64) error {
	if r, ok := f.reminders[id]; ok {
		r.IsSent = true
	}
	return nil
}

func (f *fakeRemindersRepo) DeleteReminder(_ context.Context, _ database.Queryable, id int64) error {
	delete(f.reminders, id)
	return nil
}

type fakeEventsRepo struct {
	events map[int64]*model.Event
}

func (f *fakeEventsRepo) GetEventByID(_ context.Context, _ database.Queryable, id int64) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return e, nil
}

func existingEvent(id int64) *fakeEventsRepo {
	return &fakeEventsRepo{events: map[int64]*model.Event{
		id: {ID: id, EventCreate: model.EventCreate{CalendarID: 1, Title: "event"}},
	}}
}

func TestCreateReminder(t *testing.T) {
	repo := newFakeRemindersRepo()
	s := NewService(nil, repo, existingEvent(10))

	reminder, err := s.CreateReminder(context.Background(), &model.ReminderCreate{
		EventID:      10,
		ReminderTime: time.Now().Add(time.Hour),
		Type:         model.ReminderTypeNotification,
	})
	require.NoError(t, err)

	assert.NotZero(t, reminder.ID)
	assert.False(t, reminder.IsSent)
}

func TestCreateReminderUnknownEvent(t *testing.T) {
	repo := newFakeRemindersRepo()
	s := NewService(nil, repo, &fakeEventsRepo{events: map[int64]*model.Event{}})

	_, err := s.CreateReminder(context.Background(), &model.ReminderCreate{
		EventID:      42,
		ReminderTime: time.Now(),
	})
	assert.ErrorIs(t, err, model.ErrNoRecord)
	assert.Empty(t, repo.reminders)
}

func TestPendingWindow(t *testing.T) {
	repo := newFakeRemindersRepo()
	s := NewService(nil, repo, existingEvent(10))

	fixed := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	oldNow := now
	now = func() time.Time { return fixed }
	defer func() { now = oldNow }()

	_, err := s.Pending(context.Background(), 5*time.Minute)
	require.NoError(t, err)

	assert.True(t, repo.lastFilter.PendingOnly)
	assert.Equal(t, fixed, repo.lastFilter.From)
	assert.Equal(t, fixed.Add(5*time.Minute), repo.lastFilter.To)
}

func TestMarkSentIsIdempotent(t *testing.T) {
	repo := newFakeRemindersRepo()
	s := NewService(nil, repo, existingEvent(10))

	reminder, err := s.CreateReminder(context.Background(), &model.ReminderCreate{
		EventID:      10,
		ReminderTime: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, s.MarkSent(context.Background(), reminder.ID))
	require.NoError(t, s.MarkSent(context.Background(), reminder.ID))

	stored, err := s.GetReminderByID(context.Background(), reminder.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsSent)
}
