package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/jwt"
)

type contextKey string

const (
	contextKeyID       = contextKey("id")
	contextKeyUser     = contextKey("user")
	contextKeyCalendar = contextKey("calendar")
	contextKeyEvent    = contextKey("event")
	contextKeyReminder = contextKey("reminder")
)

var errCantRetrieveID = errors.New("can't retrieve id")

func (a *Api) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			a.unauthorizedResponse(w, r, errors.New("no token provided"))
			return
		}

		token = strings.TrimPrefix(token, "Bearer ")

		id, err := a.jwts.GetIdFromToken(token)
		if err != nil {
			invalidTokenErr := &jwt.InvalidTokenError{}
			switch {
			case errors.As(err, &invalidTokenErr):
				a.unauthorizedResponse(w, r, invalidTokenErr)
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		idContext := context.WithValue(r.Context(), contextKeyID, id)
		next.ServeHTTP(w, r.WithContext(idContext))
	})
}

func (a *Api) userCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value(contextKeyID).(int64)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		user, err := a.users.GetUserByID(r.Context(), a.db, id)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.forbiddenResponse(w, r, "user does not exists")
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		userCtx := context.WithValue(r.Context(), contextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(userCtx))
	})
}

// calendarCtx loads the calendar from the URL and hides foreign rows
// behind a 404.
func (a *Api) calendarCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(contextKeyID).(int64)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		calendarID, err := strconv.ParseInt(chi.URLParam(r, "calendarID"), 10, 64)
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		cal, err := a.calendars.GetCalendar(r.Context(), a.db, calendarID)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get calendar: %w", err))
			}
			return
		}

		if cal.UserID != userID {
			a.notFoundResponse(w, r)
			return
		}

		calendarCtx := context.WithValue(r.Context(), contextKeyCalendar, cal)
		next.ServeHTTP(w, r.WithContext(calendarCtx))
	})
}

func (a *Api) eventCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(contextKeyID).(int64)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		event, err := a.eventsService.GetEventByID(r.Context(), eventID)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
			}
			return
		}

		owns, err := a.userOwnsCalendar(r.Context(), userID, event.CalendarID)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		if !owns {
			a.notFoundResponse(w, r)
			return
		}

		eventCtx := context.WithValue(r.Context(), contextKeyEvent, event)
		next.ServeHTTP(w, r.WithContext(eventCtx))
	})
}

func (a *Api) reminderCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(contextKeyID).(int64)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveID)
			return
		}

		reminderID, err := strconv.ParseInt(chi.URLParam(r, "reminderID"), 10, 64)
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		reminder, err := a.remindersService.GetReminderByID(r.Context(), reminderID)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get reminder: %w", err))
			}
			return
		}

		owns, err := a.userOwnsEvent(r.Context(), userID, reminder.EventID)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		if !owns {
			a.notFoundResponse(w, r)
			return
		}

		reminderCtx := context.WithValue(r.Context(), contextKeyReminder, reminder)
		next.ServeHTTP(w, r.WithContext(reminderCtx))
	})
}

func (a *Api) userOwnsCalendar(ctx context.Context, userID, calendarID int64) (bool, error) {
	cal, err := a.calendars.GetCalendar(ctx, a.db, calendarID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return false, nil
		}
		return false, fmt.Errorf("get calendar: %w", err)
	}

	return cal.UserID == userID, nil
}

func (a *Api) userOwnsEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	event, err := a.eventsService.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return false, nil
		}
		return false, fmt.Errorf("get event: %w", err)
	}

	return a.userOwnsCalendar(ctx, userID, event.CalendarID)
}
