package reminders

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lunacal-app/lunacal-backend/internal/database"
)

func (*Repository) DeleteReminder(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.RemindersTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteEventReminders(ctx context.Context, q database.Queryable, eventID int64) error {
	qb := database.PSQL.
		Delete(database.RemindersTable).
		Where(sq.Eq{"event_id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
