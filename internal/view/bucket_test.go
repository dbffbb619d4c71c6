package view

import (
	"testing"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(id, calendarID int64, from, to time.Time) *model.Event {
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			CalendarID: calendarID,
			Title:      "event",
			From:       from,
			To:         to,
		},
	}
}

func TestEventsOnDate(t *testing.T) {
	// Spans the evening of the 24th to the morning of the 26th.
	overnight := makeEvent(1, 1,
		time.Date(2025, time.December, 24, 18, 0, 0, 0, time.Local),
		time.Date(2025, time.December, 26, 8, 0, 0, 0, time.Local),
	)
	events := []*model.Event{overnight}

	for _, day := range []int{24, 25, 26} {
		got := EventsOnDate(events, localDate(2025, time.December, day))
		require.Len(t, got, 1, "event must appear on day %d", day)
		assert.Equal(t, int64(1), got[0].ID)
	}

	for _, day := range []int{23, 27} {
		assert.Empty(t, EventsOnDate(events, localDate(2025, time.December, day)), "event must not appear on day %d", day)
	}
}

func TestEventsOnDateIgnoresTimeOfQuery(t *testing.T) {
	e := makeEvent(1, 1,
		time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local),
	)

	late := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.Local)
	assert.Len(t, EventsOnDate([]*model.Event{e}, late), 1)
}

func TestVisibleEvents(t *testing.T) {
	events := []*model.Event{
		makeEvent(1, 10, time.Now(), time.Now()),
		makeEvent(2, 20, time.Now(), time.Now()),
		makeEvent(3, 10, time.Now(), time.Now()),
	}

	t.Run("empty selection shows all", func(t *testing.T) {
		assert.Len(t, VisibleEvents(events, nil), 3)
		assert.Len(t, VisibleEvents(events, []int64{}), 3)
	})

	t.Run("selection filters by calendar", func(t *testing.T) {
		got := VisibleEvents(events, []int64{10})
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("unknown calendar yields nothing", func(t *testing.T) {
		assert.Empty(t, VisibleEvents(events, []int64{99}))
	})
}
