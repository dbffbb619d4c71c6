package reminders

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) GetReminderByID(ctx context.Context, q database.Queryable, id int64) (*model.Reminder, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &reminderDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToReminder(dto), nil
}

func (*Repository) GetReminders(ctx context.Context, q database.Queryable, filter model.RemindersFilter) ([]*model.Reminder, error) {
	qb := baseQuery.
		OrderBy("reminder_time")

	if filter.EventID != nil {
		qb = qb.Where(sq.Eq{"event_id": *filter.EventID})
	}
	if filter.PendingOnly {
		qb = qb.Where(sq.Eq{"is_sent": false})
	}
	if !filter.From.IsZero() {
		qb = qb.Where(sq.GtOrEq{"reminder_time": filter.From})
	}
	if !filter.To.IsZero() {
		qb = qb.Where(sq.LtOrEq{"reminder_time": filter.To})
	}

	var dtos []*reminderDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Reminder, len(dtos))
	for i, d := range dtos {
		res[i] = mapToReminder(d)
	}

	return res, nil
}
