package calendars

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (*Repository) GetCalendar(ctx context.Context, q database.Queryable, id int64) (*model.Calendar, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &calendarDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToCalendar(dto)
}

func (*Repository) GetUserCalendars(ctx context.Context, q database.Queryable, userID int64) ([]*model.Calendar, error) {
	qb := baseQuery.
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	var dtos []*calendarDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Calendar, len(dtos))
	for i, d := range dtos {
		c, err := mapToCalendar(d)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}

	return res, nil
}
