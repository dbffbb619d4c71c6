// Package notifications delivers reminder notifications to the user
// owning the reminder's event, over FCM push.
package notifications

import (
	"context"
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/fcm"
	"github.com/lunacal-app/lunacal-backend/internal/scheduler"
	"go.uber.org/zap"
)

type Sender struct {
	db        database.PGX
	logger    *zap.SugaredLogger
	events    eventsRepository
	calendars calendarsRepository
	users     usersRepository
	fcm       fcmService
}

type eventsRepository interface {
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
}

type calendarsRepository interface {
	GetCalendar(ctx context.Context, q database.Queryable, id int64) (*model.Calendar, error)
}

type usersRepository interface {
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
}

type fcmService interface {
	SendMessage(ctx context.Context, m *fcm.Message) error
}

func NewSender(
	db database.PGX,
	logger *zap.SugaredLogger,
	events eventsRepository,
	calendars calendarsRepository,
	users usersRepository,
	fcm fcmService,
) *Sender {
	return &Sender{
		db:        db,
		logger:    logger,
		events:    events,
		calendars: calendars,
		users:     users,
		fcm:       fcm,
	}
}

// PermissionGranted reports whether a push channel is configured at all.
// Per-user consent is checked at delivery time.
func (s *Sender) PermissionGranted(_ context.Context) bool {
	return s.fcm != nil
}

// Notify resolves reminder → event → calendar → user and pushes to the
// user's device. A user who opted out or has no registered device is
// skipped silently.
func (s *Sender) Notify(ctx context.Context, n *scheduler.Notification) error {
	event, err := s.events.GetEventByID(ctx, s.db, n.EventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	cal, err := s.calendars.GetCalendar(ctx, s.db, event.CalendarID)
	if err != nil {
		return fmt.Errorf("get calendar: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, s.db, cal.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if !user.Notify || user.PushToken == "" {
		s.logger.Debugw("skipping notification", "user_id", user.ID, "reminder_id", n.ReminderID)
		return nil
	}

	if err := s.fcm.SendMessage(ctx, &fcm.Message{
		Token: user.PushToken,
		Data: map[string]string{
			"title":       n.Title,
			"body":        n.Body,
			"event_id":    fmt.Sprintf("%v", n.EventID),
			"event_title": event.Title,
			"reminder_id": fmt.Sprintf("%v", n.ReminderID),
		},
	}); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
