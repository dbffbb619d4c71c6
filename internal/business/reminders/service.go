package reminders

import (
	"context"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

type Service struct {
	db                  database.PGX
	remindersRepository remindersRepository
	eventsRepository    eventsRepository
}

type remindersRepository interface {
	CreateReminder(ctx context.Context, q database.Queryable, reminder *model.ReminderCreate) (int64, error)
	GetReminderByID(ctx context.Context, q database.Queryable, id int64) (*model.Reminder, error)
	GetReminders(ctx context.Context, q database.Queryable, filter model.RemindersFilter) ([]*model.Reminder, error)
	MarkSent(ctx context.Context, q database.Queryable, id int64) error
	DeleteReminder(ctx context.Context, q database.Queryable, id int64) error
}

type eventsRepository interface {
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
}

func NewService(db database.PGX, reminders remindersRepository, events eventsRepository) *Service {
	return &Service{
		db:                  db,
		remindersRepository: reminders,
		eventsRepository:    events,
	}
}

// now is swapped in tests.
var now = time.Now
