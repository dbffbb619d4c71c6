package events

import (
	"context"
	"fmt"
)

// DeleteEvent removes an event and its reminders in one transaction.
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.remindersRepository.DeleteEventReminders(ctx, tx, id); err != nil {
		return fmt.Errorf("remindersRepository.DeleteEventReminders: %w", err)
	}

	if err := s.eventsRepository.DeleteEvent(ctx, tx, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// DeleteCalendarEvents cascades a calendar deletion over its events.
func (s *Service) DeleteCalendarEvents(ctx context.Context, calendarID int64) error {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, eventsByCalendar(calendarID))
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range events {
		if err := s.remindersRepository.DeleteEventReminders(ctx, tx, e.ID); err != nil {
			return fmt.Errorf("remindersRepository.DeleteEventReminders: %w", err)
		}
	}

	if err := s.eventsRepository.DeleteCalendarEvents(ctx, tx, calendarID); err != nil {
		return fmt.Errorf("eventsRepository.DeleteCalendarEvents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
