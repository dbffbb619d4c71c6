package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/view"
)

func (a *Api) getGridHandler(w http.ResponseWriter, r *http.Request) {
	date := view.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		var err error
		date, err = time.ParseInLocation(dateFormat, v, time.Local)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid date format: %w", err))
			return
		}
	}

	mode := view.ModeMonth
	if v := r.URL.Query().Get("view"); v != "" {
		var err error
		mode, err = view.ParseMode(v)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	var cells []view.Cell
	switch mode {
	case view.ModeWeek, view.ModeDay:
		// Day view serves the surrounding week; the selected flag on
		// the requested date marks the day itself.
		cells = view.WeekGrid(date)
	default:
		cells = view.MonthGrid(date)
	}

	resp := &struct {
		Date  string      `json:"date"`
		View  string      `json:"view"`
		Cells []view.Cell `json:"cells"`
	}{
		Date:  date.Format(dateFormat),
		View:  mode.String(),
		Cells: cells,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) navigateGridHandler(w http.ResponseWriter, r *http.Request) {
	date := view.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		var err error
		date, err = time.ParseInLocation(dateFormat, v, time.Local)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid date format: %w", err))
			return
		}
	}

	mode := view.ModeMonth
	if v := r.URL.Query().Get("view"); v != "" {
		var err error
		mode, err = view.ParseMode(v)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	stepped := date
	switch v := r.URL.Query().Get("direction"); v {
	case "", "today":
		stepped = view.Today()
	default:
		direction, err := view.ParseDirection(v)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
		stepped = view.Step(direction, mode, date)
	}

	resp := &struct {
		Date string `json:"date"`
		View string `json:"view"`
	}{
		Date: stepped.Format(dateFormat),
		View: mode.String(),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
