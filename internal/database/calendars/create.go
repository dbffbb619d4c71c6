package calendars

import (
	"context"
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) CreateCalendar(ctx context.Context, q database.Queryable, calendar *model.CalendarCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.CalendarsTable).
		Columns("user_id", "name", "color", "is_default").
		Values(
			calendar.UserID,
			calendar.Name,
			calendar.Color.ToHTML(),
			calendar.IsDefault,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
