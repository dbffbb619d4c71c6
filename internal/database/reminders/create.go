package reminders

import (
	"context"
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) CreateReminder(ctx context.Context, q database.Queryable, reminder *model.ReminderCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.RemindersTable).
		Columns("event_id", "reminder_time", "type", "is_sent").
		Values(
			reminder.EventID,
			reminder.ReminderTime,
			int(reminder.Type),
			false,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
