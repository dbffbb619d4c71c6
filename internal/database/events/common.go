package events

import (
	"github.com/lunacal-app/lunacal-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
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
	From(database.EventsTable)
