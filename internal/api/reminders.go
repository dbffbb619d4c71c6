package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/validator"
)

var errCantRetrieveReminder = errors.New("can't retrieve reminder from context")

// defaultPendingWindow mirrors the poll window clients use when none is
// given.
const defaultPendingWindow = 5 * time.Minute

func (a *Api) createReminderHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		EventID      int64    `json:"event_id"`
		ReminderTime dateTime `json:"reminder_time"`
		Type         string   `json:"type"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	owns, err := a.userOwnsEvent(r.Context(), userID, req.EventID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	reminderType, typeErr := parseReminderType(req.Type)

	v := validator.New()

	v.Check(owns, "event_id", "user does not have access to event")
	v.Check(!time.Time(req.ReminderTime).IsZero(), "reminder_time", "reminder_time must be provided")
	v.Check(typeErr == nil, "type", "type must be notification or email")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	reminder, err := a.remindersService.CreateReminder(r.Context(), &model.ReminderCreate{
		EventID:      req.EventID,
		ReminderTime: time.Time(req.ReminderTime),
		Type:         reminderType,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create reminder: %w", err))
		return
	}

	resp, _ := mapToReminderResp(reminder)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createRemindersBatchHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		EventID   int64 `json:"event_id"`
		Reminders []struct {
			ReminderTime dateTime `json:"reminder_time"`
			Type         string   `json:"type"`
		} `json:"reminders"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	owns, err := a.userOwnsEvent(r.Context(), userID, req.EventID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	v := validator.New()

	v.Check(owns, "event_id", "user does not have access to event")
	v.Check(len(req.Reminders) != 0, "reminders", "reminders must be provided")

	infos := make([]*model.ReminderCreate, 0, len(req.Reminders))
	for i, rem := range req.Reminders {
		reminderType, typeErr := parseReminderType(rem.Type)
		v.Check(typeErr == nil, fmt.Sprintf("reminders.%d.type", i), "type must be notification or email")
		v.Check(!time.Time(rem.ReminderTime).IsZero(), fmt.Sprintf("reminders.%d.reminder_time", i), "reminder_time must be provided")

		infos = append(infos, &model.ReminderCreate{
			EventID:      req.EventID,
			ReminderTime: time.Time(rem.ReminderTime),
			Type:         reminderType,
		})
	}

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	reminders, err := a.remindersService.CreateBatch(r.Context(), req.EventID, infos)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create reminders batch: %w", err))
		return
	}

	resp, _ := mapSlice(reminders, mapToReminderResp)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getRemindersHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	filter, err := parseRemindersQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if filter.EventID == nil {
		a.badRequestResponse(w, r, errors.New("event_id must be provided"))
		return
	}

	owns, err := a.userOwnsEvent(r.Context(), userID, *filter.EventID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}
	if !owns {
		a.notFoundResponse(w, r)
		return
	}

	reminders, err := a.remindersService.GetReminders(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get reminders: %w", err))
		return
	}

	resp, _ := mapSlice(reminders, mapToReminderResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func parseRemindersQuery(r *http.Request) (*model.RemindersFilter, error) {
	var err error

	res := &model.RemindersFilter{}

	if v := r.URL.Query().Get("event_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid event id %v", v)
		}
		res.EventID = &id
	}

	if v := r.URL.Query().Get("pending"); v != "" {
		res.PendingOnly, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid pending flag %v", v)
		}
	}

	if v := r.URL.Query().Get("from"); v != "" {
		res.From, err = time.Parse(dateTimeFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid time format: %w", err)
		}
	}

	if v := r.URL.Query().Get("to"); v != "" {
		res.To, err = time.Parse(dateTimeFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid time format: %w", err)
		}
	}

	return res, nil
}

// getPendingRemindersHandler serves the client poll loop: reminders due
// within the next N minutes, restricted to the caller's events.
func (a *Api) getPendingRemindersHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	window := defaultPendingWindow
	if v := r.URL.Query().Get("minutes"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			a.badRequestResponse(w, r, fmt.Errorf("invalid minutes %v", v))
			return
		}
		window = time.Duration(minutes) * time.Minute
	}

	pending, err := a.remindersService.Pending(r.Context(), window)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get pending reminders: %w", err))
		return
	}

	own := make([]*model.Reminder, 0, len(pending))
	for _, rem := range pending {
		owns, err := a.userOwnsEvent(r.Context(), userID, rem.EventID)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		if owns {
			own = append(own, rem)
		}
	}

	resp, _ := mapSlice(own, mapToReminderResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) markReminderSentHandler(w http.ResponseWriter, r *http.Request) {
	reminder, ok := r.Context().Value(contextKeyReminder).(*model.Reminder)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveReminder)
		return
	}

	if err := a.remindersService.MarkSent(r.Context(), reminder.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("mark reminder sent: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteReminderHandler(w http.ResponseWriter, r *http.Request) {
	reminder, ok := r.Context().Value(contextKeyReminder).(*model.Reminder)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveReminder)
		return
	}

	if err := a.remindersService.DeleteReminder(r.Context(), reminder.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete reminder: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
