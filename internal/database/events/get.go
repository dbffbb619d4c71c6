package events

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto), nil
}

// GetEvents matches events overlapping [filter.From, filter.To] inclusively,
// plus recurring events whose rule is still live inside the range. Recurring
// rows come back unexpanded; the rule string travels with the event.
func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		OrderBy("start_time")

	if !filter.From.IsZero() && !filter.To.IsZero() {
		qb = qb.Where(sq.Or{
			sq.And{
				sq.LtOrEq{"start_time": filter.To},
				sq.GtOrEq{"end_time": filter.From},
			},
			sq.And{
				sq.NotEq{"recurrence_rule": ""},
				sq.LtOrEq{"start_time": filter.To},
				sq.Or{
					sq.Eq{"recurrence_end": nil},
					sq.GtOrEq{"recurrence_end": filter.From},
				},
			},
		})
	} else if !filter.From.IsZero() {
		qb = qb.Where(sq.GtOrEq{"start_time": filter.From})
	} else if !filter.To.IsZero() {
		qb = qb.Where(sq.LtOrEq{"end_time": filter.To})
	}

	if len(filter.CalendarIDs) != 0 {
		qb = qb.Where(sq.Eq{"calendar_id": filter.CalendarIDs})
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
