package database

import sq "github.com/Masterminds/squirrel"

// PSQL is the shared statement builder with postgres placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	UsersTable     = "users"
	CalendarsTable = "calendars"
	EventsTable    = "events"
	RemindersTable = "reminders"
)
