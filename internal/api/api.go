package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lunacal-app/lunacal-backend/internal/database"
	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/oauth"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db        database.PGX
	users     userRepository
	calendars calendarsRepository

	eventsService    eventsService
	remindersService remindersService
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
	UpdateUserPushToken(ctx context.Context, q database.Queryable, id int64, token string) error
	UpdateUserNotify(ctx context.Context, q database.Queryable, id int64, notify bool) error
}

type calendarsRepository interface {
	CreateCalendar(ctx context.Context, q database.Queryable, calendar *model.CalendarCreate) (int64, error)
	GetCalendar(ctx context.Context, q database.Queryable, id int64) (*model.Calendar, error)
	GetUserCalendars(ctx context.Context, q database.Queryable, userID int64) ([]*model.Calendar, error)
	DeleteCalendar(ctx context.Context, q database.Queryable, id int64) error
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	DeleteCalendarEvents(ctx context.Context, calendarID int64) error
}

type remindersService interface {
	CreateReminder(ctx context.Context, info *model.ReminderCreate) (*model.Reminder, error)
	CreateBatch(ctx context.Context, eventID int64, infos []*model.ReminderCreate) ([]*model.Reminder, error)
	GetReminderByID(ctx context.Context, id int64) (*model.Reminder, error)
	GetReminders(ctx context.Context, filter model.RemindersFilter) ([]*model.Reminder, error)
	Pending(ctx context.Context, window time.Duration) ([]*model.Reminder, error)
	MarkSent(ctx context.Context, id int64) error
	DeleteReminder(ctx context.Context, id int64) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	calendars calendarsRepository,
	eventsService eventsService,
	remindersService remindersService,
) (*Api, error) {
	a := &Api{
		logger:           logger,
		randSource:       randSource,
		jwts:             jwts,
		tokenParser:      tokenParser,
		refreshTokens:    refreshTokens,
		db:               db,
		users:            users,
		calendars:        calendars,
		eventsService:    eventsService,
		remindersService: remindersService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.Route("/lunar", func(r chi.Router) {
		r.Get("/terms/{year}", a.getLunarTermsHandler)
		r.Get("/{date}", a.getLunarDayHandler)
	})

	r.Route("/grid", func(r chi.Router) {
		r.Get("/", a.getGridHandler)
		r.Get("/navigate", a.navigateGridHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Route("/user", func(r chi.Router) {
			r.Get("/", a.getUserHandler)
			r.Put("/push-token", a.updatePushTokenHandler)
			r.Put("/notify", a.updateNotifyHandler)
		})

		r.Route("/calendars", func(r chi.Router) {
			r.Get("/", a.getCalendarsHandler)
			r.Post("/", a.createCalendarHandler)
			r.With(a.calendarCtx).Delete("/{calendarID}", a.deleteCalendarHandler)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", a.getEventsHandler)
			r.Post("/", a.createEventHandler)
			r.With(a.eventCtx).Route("/{eventID}", func(r chi.Router) {
				r.Get("/", a.getEventHandler)
				r.Put("/", a.updateEventHandler)
				r.Delete("/", a.deleteEventHandler)
			})
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", a.getRemindersHandler)
			r.Get("/pending", a.getPendingRemindersHandler)
			r.Post("/", a.createReminderHandler)
			r.Post("/batch", a.createRemindersBatchHandler)
			r.With(a.reminderCtx).Route("/{reminderID}", func(r chi.Router) {
				r.Put("/mark-sent", a.markReminderSentHandler)
				r.Delete("/", a.deleteReminderHandler)
			})
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
