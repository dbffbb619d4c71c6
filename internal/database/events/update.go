package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"calendar_id":     event.CalendarID,
			"title":           event.Title,
			"description":     event.Description,
			"location":        event.Location,
			"all_day":         event.AllDay,
			"start_time":      event.From,
			"end_time":        event.To,
			"recurrence_rule": event.RecurrenceRule,
			"recurrence_end":  event.RecurrenceEnd,
		}).
		Where(sq.Eq{"id": event.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
