package user

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
		"full_name",
		"email",
		"phone_number",
		"photo",
		"push_token",
		"notify",
	).
	From(database.UsersTable)
