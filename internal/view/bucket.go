package view

import (
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

// EventsOnDate returns the events whose [start, end] span covers date,
// at local calendar-day granularity, inclusive on both ends. An event
// running 18:00 on day N to 08:00 on day N+2 shows up on N, N+1 and N+2.
func EventsOnDate(events []*model.Event, date time.Time) []*model.Event {
	day := DateOnly(date)

	var res []*model.Event
	for _, e := range events {
		start := DateOnly(e.From)
		end := DateOnly(e.To)
		if !day.Before(start) && !day.After(end) {
			res = append(res, e)
		}
	}

	return res
}

// VisibleEvents filters events by calendar membership. An empty
// selection means no filter: all events stay visible.
func VisibleEvents(events []*model.Event, calendarIDs []int64) []*model.Event {
	if len(calendarIDs) == 0 {
		return events
	}

	selected := make(map[int64]struct{}, len(calendarIDs))
	for _, id := range calendarIDs {
		selected[id] = struct{}{}
	}

	var res []*model.Event
	for _, e := range events {
		if _, ok := selected[e.CalendarID]; ok {
			res = append(res, e)
		}
	}

	return res
}
