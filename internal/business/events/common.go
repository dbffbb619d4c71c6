package events

import (
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/teambition/rrule-go"
)

func eventsByCalendar(calendarID int64) model.EventsFilter {
	return model.EventsFilter{CalendarIDs: []int64{calendarID}}
}

// normalizeRule round-trips a recurrence rule through the rrule parser,
// anchoring DTSTART at the event start and UNTIL at the recurrence end.
// Stored rules are therefore always parseable; occurrences are not
// expanded here or anywhere downstream — buckets see the base event
// only, and the raw rule travels with it.
func normalizeRule(info *model.EventCreate) (string, error) {
	if info.RecurrenceRule == "" {
		return "", nil
	}

	rOption, err := rrule.StrToROption(info.RecurrenceRule)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", model.ErrInvalidRule, info.RecurrenceRule, err)
	}

	rOption.Dtstart = info.From.UTC()
	if info.RecurrenceEnd != nil {
		rOption.Until = info.RecurrenceEnd.UTC()
	}

	rule, err := rrule.NewRRule(*rOption)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", model.ErrInvalidRule, info.RecurrenceRule, err)
	}

	return rule.String(), nil
}
