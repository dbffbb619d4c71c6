package reminders

import (
	"context"
	"fmt"
)

// MarkSent flips the reminder to sent. Safe to call repeatedly: the
// repository update is conditioned on is_sent being false, so a second
// call changes nothing.
func (s *Service) MarkSent(ctx context.Context, id int64) error {
	if err := s.remindersRepository.MarkSent(ctx, s.db, id); err != nil {
		return fmt.Errorf("remindersRepository.MarkSent: %w", err)
	}

	return nil
}

func (s *Service) DeleteReminder(ctx context.Context, id int64) error {
	if err := s.remindersRepository.DeleteReminder(ctx, s.db, id); err != nil {
		return fmt.Errorf("remindersRepository.DeleteReminder: %w", err)
	}

	return nil
}
