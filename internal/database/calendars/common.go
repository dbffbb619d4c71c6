package calendars

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
		"user_id",
		"name",
		"color",
		"is_default",
	).
	From(database.CalendarsTable)
