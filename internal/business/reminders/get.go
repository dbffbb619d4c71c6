package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (s *Service) GetReminderByID(ctx context.Context, id int64) (*model.Reminder, error) {
	reminder, err := s.remindersRepository.GetReminderByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("remindersRepository.GetReminderByID: %w", err)
	}

	return reminder, nil
}

func (s *Service) GetReminders(ctx context.Context, filter model.RemindersFilter) ([]*model.Reminder, error) {
	reminders, err := s.remindersRepository.GetReminders(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("remindersRepository.GetReminders: %w", err)
	}

	return reminders, nil
}

// Pending returns unsent reminders due within the look-ahead window,
// ordered by reminder time.
func (s *Service) Pending(ctx context.Context, window time.Duration) ([]*model.Reminder, error) {
	from := now()

	return s.GetReminders(ctx, model.RemindersFilter{
		PendingOnly: true,
		From:        from,
		To:          from.Add(window),
	})
}
