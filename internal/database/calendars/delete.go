package calendars

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lunacal-app/lunacal-backend/internal/database"
)

func (*Repository) DeleteCalendar(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.CalendarsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
