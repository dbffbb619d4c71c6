package events

import (
	"context"
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"calendar_id",
			"title",
			"description",
			"location",
			"all_day",
			"start_time",
			"end_time",
			"recurrence_rule",
			"recurrence_end",
		).
		Values(
			event.CalendarID,
			event.Title,
			event.Description,
			event.Location,
			event.AllDay,
			event.From,
			event.To,
			event.RecurrenceRule,
			event.RecurrenceEnd,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
