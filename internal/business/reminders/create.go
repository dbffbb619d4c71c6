package reminders

import (
	"context"
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

// CreateReminder stores a reminder after checking its event exists.
func (s *Service) CreateReminder(ctx context.Context, info *model.ReminderCreate) (*model.Reminder, error) {
	if _, err := s.eventsRepository.GetEventByID(ctx, s.db, info.EventID); err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	id, err := s.remindersRepository.CreateReminder(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("remindersRepository.CreateReminder: %w", err)
	}

	return &model.Reminder{ID: id, ReminderCreate: *info}, nil
}

// CreateBatch stores several reminders for one event atomically.
func (s *Service) CreateBatch(ctx context.Context, eventID int64, infos []*model.ReminderCreate) ([]*model.Reminder, error) {
	if _, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID); err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	res := make([]*model.Reminder, 0, len(infos))
	for _, info := range infos {
		info.EventID = eventID

		id, err := s.remindersRepository.CreateReminder(ctx, tx, info)
		if err != nil {
			return nil, fmt.Errorf("remindersRepository.CreateReminder: %w", err)
		}

		res = append(res, &model.Reminder{ID: id, ReminderCreate: *info})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return res, nil
}
