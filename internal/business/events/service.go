package events

import (
	"context"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

type Service struct {
	db                  database.PGX
	eventsRepository    eventsRepository
	remindersRepository remindersRepository
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
	DeleteCalendarEvents(ctx context.Context, q database.Queryable, calendarID int64) error
}

type remindersRepository interface {
	DeleteEventReminders(ctx context.Context, q database.Queryable, eventID int64) error
}

func NewService(db database.PGX, events eventsRepository, reminders remindersRepository) *Service {
	return &Service{
		db:                  db,
		eventsRepository:    events,
		remindersRepository: reminders,
	}
}
