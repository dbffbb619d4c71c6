package reminders

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
		"event_id",
		"reminder_time",
		"type",
		"is_sent",
	).
	From(database.RemindersTable)
