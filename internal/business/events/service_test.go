package events

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRuleEmpty(t *testing.T) {
	rule, err := normalizeRule(&model.EventCreate{})
	require.NoError(t, err)
	assert.Empty(t, rule)
}

func TestNormalizeRuleAnchorsDtstart(t *testing.T) {
	from := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	rule, err := normalizeRule(&model.EventCreate{
		From:           from,
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=MO",
	})
	require.NoError(t, err)

	assert.Contains(t, rule, "DTSTART")
	assert.Contains(t, rule, "20250602T090000Z")
	assert.Contains(t, rule, "FREQ=WEEKLY")
	assert.Contains(t, rule, "BYDAY=MO")
}

func TestNormalizeRuleAnchorsUntil(t *testing.T) {
	from := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	rule, err := normalizeRule(&model.EventCreate{
		From:           from,
		RecurrenceRule: "FREQ=DAILY",
		RecurrenceEnd:  &end,
	})
	require.NoError(t, err)

	assert.Contains(t, rule, "UNTIL=20251231T000000Z")
}

func TestNormalizeRuleInvalid(t *testing.T) {
	_, err := normalizeRule(&model.EventCreate{
		From:           time.Now(),
		RecurrenceRule: "not a rule",
	})
	assert.ErrorIs(t, err, model.ErrInvalidRule)
}

func TestNormalizeRuleIsStable(t *testing.T) {
	from := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	info := &model.EventCreate{From: from, RecurrenceRule: "FREQ=MONTHLY;BYMONTHDAY=15"}

	first, err := normalizeRule(info)
	require.NoError(t, err)

	info.RecurrenceRule = first
	second, err := normalizeRule(info)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApplyUpdate(t *testing.T) {
	from := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	event := &model.Event{
		ID: 1,
		EventCreate: model.EventCreate{
			CalendarID:  10,
			Title:       "old title",
			Description: "old description",
			From:        from,
			To:          to,
		},
	}

	newTitle := "new title"
	newFrom := from.AddDate(0, 0, 1)
	applyUpdate(event, &model.EventUpdate{
		Title: &newTitle,
		From:  &newFrom,
	})

	assert.Equal(t, "new title", event.Title)
	assert.Equal(t, newFrom, event.From)
	// Untouched fields keep their stored values.
	assert.Equal(t, "old description", event.Description)
	assert.Equal(t, int64(10), event.CalendarID)
	assert.Equal(t, to, event.To)
}

type fakeEventsRepo struct {
	events  map[int64]*model.Event
	nextID  int64
	updated *model.Event
}

func (f *fakeEventsRepo) CreateEvent(_ context.Context, _ database.Queryable, event *model.EventCreate) (int64, error) {
	f.nextID++
	f.events[f.nextID] = &model.Event{ID: f.nextID, EventCreate: *event}
	return f.nextID, nil
}

func (f *fakeEventsRepo) GetEventByID(_ context.Context, _ database.Queryable, id int64) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventsRepo) GetEvents(context.Context, database.Queryable, model.EventsFilter) ([]*model.Event, error) {
	return nil, nil
}

func (f *fakeEventsRepo) UpdateEvent(_ context.Context, _ database.Queryable, event *model.Event) error {
	f.events[event.ID] = event
	f.updated = event
	return nil
}

func (f *fakeEventsRepo) DeleteEvent(_ context.Context, _ database.Queryable, id int64) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventsRepo) DeleteCalendarEvents(context.Context, database.Queryable, int64) error {
	return nil
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{events: map[int64]*model.Event{}}
}

func TestCreateEventNormalizesRule(t *testing.T) {
	repo := newFakeEventsRepo()
	s := NewService(nil, repo, nil)

	from := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	event, err := s.CreateEvent(context.Background(), &model.EventCreate{
		CalendarID:     1,
		Title:          "standup",
		From:           from,
		To:             from.Add(30 * time.Minute),
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=MO",
	})
	require.NoError(t, err)

	assert.NotZero(t, event.ID)
	assert.True(t, strings.Contains(event.RecurrenceRule, "DTSTART"))
}

func TestCreateEventRejectsBadRule(t *testing.T) {
	repo := newFakeEventsRepo()
	s := NewService(nil, repo, nil)

	_, err := s.CreateEvent(context.Background(), &model.EventCreate{
		CalendarID:     1,
		Title:          "standup",
		From:           time.Now(),
		To:             time.Now().Add(time.Hour),
		RecurrenceRule: "FREQ=NEVERLY",
	})
	assert.ErrorIs(t, err, model.ErrInvalidRule)
	assert.Empty(t, repo.events)
}

func TestRescheduleEventMovesOnlyTheSpan(t *testing.T) {
	repo := newFakeEventsRepo()
	s := NewService(nil, repo, nil)

	from := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	created, err := s.CreateEvent(context.Background(), &model.EventCreate{
		CalendarID:  1,
		Title:       "dentist",
		Description: "annual checkup",
		From:        from,
		To:          from.Add(time.Hour),
	})
	require.NoError(t, err)

	newFrom := from.AddDate(0, 0, 2)
	newTo := newFrom.Add(time.Hour)
	updated, err := s.RescheduleEvent(context.Background(), created.ID, newFrom, newTo)
	require.NoError(t, err)

	assert.Equal(t, newFrom, updated.From)
	assert.Equal(t, newTo, updated.To)
	assert.Equal(t, "dentist", updated.Title)
	assert.Equal(t, "annual checkup", updated.Description)
}

func TestUpdateEventUnknownID(t *testing.T) {
	s := NewService(nil, newFakeEventsRepo(), nil)

	title := "whatever"
	_, err := s.UpdateEvent(context.Background(), 42, &model.EventUpdate{Title: &title})
	assert.ErrorIs(t, err, model.ErrNoRecord)
}
