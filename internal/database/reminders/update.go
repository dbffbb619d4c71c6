package reminders

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lunacal-app/lunacal-backend/internal/database"
)

// MarkSent flips is_sent once. The is_sent predicate makes a repeat call a
// no-op: zero affected rows on an already-sent reminder is still success.
func (*Repository) MarkSent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Update(database.RemindersTable).
		Set("is_sent", true).
		Where(sq.Eq{"id": id, "is_sent": false})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
