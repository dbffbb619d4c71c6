package events

import (
	"context"
	"fmt"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (s *Service) UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("get old event: %w", err)
	}

	applyUpdate(event, info)

	rule, err := normalizeRule(&event.EventCreate)
	if err != nil {
		return nil, err
	}
	event.RecurrenceRule = rule

	if err := s.eventsRepository.UpdateEvent(ctx, s.db, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	return event, nil
}

// RescheduleEvent moves only the time span; everything else stays as
// stored. Used as the persistence half of drag-reschedule.
func (s *Service) RescheduleEvent(ctx context.Context, id int64, from, to time.Time) (*model.Event, error) {
	return s.UpdateEvent(ctx, id, &model.EventUpdate{From: &from, To: &to})
}

func applyUpdate(event *model.Event, info *model.EventUpdate) {
	if info.CalendarID != nil {
		event.CalendarID = *info.CalendarID
	}
	if info.Title != nil {
		event.Title = *info.Title
	}
	if info.Description != nil {
		event.Description = *info.Description
	}
	if info.Location != nil {
		event.Location = *info.Location
	}
	if info.AllDay != nil {
		event.AllDay = *info.AllDay
	}
	if info.From != nil {
		event.From = *info.From
	}
	if info.To != nil {
		event.To = *info.To
	}
	if info.RecurrenceRule != nil {
		event.RecurrenceRule = *info.RecurrenceRule
	}
	if info.RecurrenceEnd != nil {
		event.RecurrenceEnd = info.RecurrenceEnd
	}
}
