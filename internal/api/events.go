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

var errCantRetrieveEvent = errors.New("can't retrieve event from context")

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		CalendarID     int64     `json:"calendar_id"`
		Title          string    `json:"title"`
		Description    string    `json:"description"`
		Location       string    `json:"location"`
		AllDay         bool      `json:"all_day"`
		From           dateTime  `json:"from"`
		To             dateTime  `json:"to"`
		RecurrenceRule string    `json:"recurrence_rule"`
		RecurrenceEnd  *dateTime `json:"recurrence_end"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	owns, err := a.userOwnsCalendar(r.Context(), userID, req.CalendarID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	v := validator.New()

	v.Check(owns, "calendar_id", "user does not have access to calendar")
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.From).IsZero(), "from", "from must be provided")
	v.Check(!time.Time(req.To).IsZero(), "to", "to must be provided")
	v.Check(!time.Time(req.To).Before(time.Time(req.From)), "to", "to must not be before from")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	create := &model.EventCreate{
		CalendarID:     req.CalendarID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		AllDay:         req.AllDay,
		From:           time.Time(req.From),
		To:             time.Time(req.To),
		RecurrenceRule: req.RecurrenceRule,
	}
	if req.RecurrenceEnd != nil {
		end := time.Time(*req.RecurrenceEnd)
		create.RecurrenceEnd = &end
	}

	event, err := a.eventsService.CreateEvent(r.Context(), create)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRule) {
			a.failedValidationResponse(w, r, map[string]string{"recurrence_rule": err.Error()})
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	filter, err := parseEventsQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	calendars, err := a.calendars.GetUserCalendars(r.Context(), a.db, userID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get calendars: %w", err))
		return
	}

	owned := make(map[int64]struct{}, len(calendars))
	for _, c := range calendars {
		owned[c.ID] = struct{}{}
	}

	if len(filter.CalendarIDs) == 0 {
		// No explicit selection means every calendar the user owns.
		for _, c := range calendars {
			filter.CalendarIDs = append(filter.CalendarIDs, c.ID)
		}
	} else {
		for _, id := range filter.CalendarIDs {
			if _, ok := owned[id]; !ok {
				a.forbiddenResponse(w, r, fmt.Sprintf("no access for calendar %v", id))
				return
			}
		}
	}

	events, err := a.eventsService.GetEvents(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// parseEventsQuery reads the day-granularity range. Both bounds are
// inclusive, so the end date is widened to the last instant of its day.
func parseEventsQuery(r *http.Request) (*model.EventsFilter, error) {
	var err error

	res := &model.EventsFilter{}

	v := r.URL.Query().Get("start_date")
	if v == "" {
		return nil, fmt.Errorf("start_date must be provided")
	}
	res.From, err = time.ParseInLocation(dateFormat, v, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	v = r.URL.Query().Get("end_date")
	if v == "" {
		return nil, fmt.Errorf("end_date must be provided")
	}
	res.To, err = time.ParseInLocation(dateFormat, v, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}
	res.To = res.To.AddDate(0, 0, 1).Add(-time.Nanosecond)

	if res.To.Before(res.From) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}

	vals := r.URL.Query()["calendar_ids"]
	res.CalendarIDs = make([]int64, len(vals))
	for i, v := range vals {
		res.CalendarIDs[i], err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar id %v", v)
		}
	}

	return res, nil
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	resp, _ := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	req := &struct {
		CalendarID     *int64    `json:"calendar_id"`
		Title          *string   `json:"title"`
		Description    *string   `json:"description"`
		Location       *string   `json:"location"`
		AllDay         *bool     `json:"all_day"`
		From           *dateTime `json:"from"`
		To             *dateTime `json:"to"`
		RecurrenceRule *string   `json:"recurrence_rule"`
		RecurrenceEnd  *dateTime `json:"recurrence_end"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	if req.CalendarID != nil {
		owns, err := a.userOwnsCalendar(r.Context(), userID, *req.CalendarID)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		v.Check(owns, "calendar_id", "user does not have access to calendar")
	}
	if req.Title != nil {
		v.Check(len(*req.Title) != 0, "title", "title must not be empty")
	}

	// The untouched side of the range comes from the stored event.
	from := event.From
	if req.From != nil {
		from = time.Time(*req.From)
	}
	to := event.To
	if req.To != nil {
		to = time.Time(*req.To)
	}
	v.Check(!to.Before(from), "to", "to must not be before from")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	update := &model.EventUpdate{
		CalendarID:     req.CalendarID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		AllDay:         req.AllDay,
		RecurrenceRule: req.RecurrenceRule,
	}
	if req.From != nil {
		t := time.Time(*req.From)
		update.From = &t
	}
	if req.To != nil {
		t := time.Time(*req.To)
		update.To = &t
	}
	if req.RecurrenceEnd != nil {
		t := time.Time(*req.RecurrenceEnd)
		update.RecurrenceEnd = &t
	}

	updated, err := a.eventsService.UpdateEvent(r.Context(), event.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.Is(err, model.ErrInvalidRule):
			a.failedValidationResponse(w, r, map[string]string{"recurrence_rule": err.Error()})
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		}
		return
	}

	resp, _ := mapToEventResp(updated)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	if err := a.eventsService.DeleteEvent(r.Context(), event.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
