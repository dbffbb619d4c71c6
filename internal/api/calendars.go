package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gerow/go-color"
	"github.com/lunacal-app/lunacal-backend/internal/model"
	"github.com/lunacal-app/lunacal-backend/internal/pkg/validator"
)

var errCantRetrieveCalendar = errors.New("can't retrieve calendar from context")

func (a *Api) getCalendarsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	calendars, err := a.calendars.GetUserCalendars(r.Context(), a.db, userID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get calendars by user id %v: %w", userID, err))
		return
	}

	resp, _ := mapSlice(calendars, mapToCalendarResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createCalendarHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(validator.Matches(req.Color, validator.HexRX), "color", "color must be valid HEX color")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	colorRGB, err := color.HTMLToRGB(req.Color)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("parse color: %w", err))
		return
	}

	calendarCreate := &model.CalendarCreate{
		UserID: userID,
		Name:   req.Name,
		Color:  colorRGB,
	}
	id, err := a.calendars.CreateCalendar(r.Context(), a.db, calendarCreate)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create calendar: %w", err))
		return
	}

	resp, _ := mapToCalendarResp(&model.Calendar{ID: id, CalendarCreate: *calendarCreate})

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteCalendarHandler(w http.ResponseWriter, r *http.Request) {
	cal, ok := r.Context().Value(contextKeyCalendar).(*model.Calendar)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveCalendar)
		return
	}

	// Events go first so no event is left pointing at a dead calendar.
	if err := a.eventsService.DeleteCalendarEvents(r.Context(), cal.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete calendar events: %w", err))
		return
	}

	if err := a.calendars.DeleteCalendar(r.Context(), a.db, cal.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete calendar: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
