package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lunacal-app/lunacal-backend/internal/lunar"
)

func (a *Api) getLunarDayHandler(w http.ResponseWriter, r *http.Request) {
	date, err := time.ParseInLocation(dateFormat, chi.URLParam(r, "date"), time.Local)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid date format: %w", err))
		return
	}

	info, err := lunar.Convert(date)
	if err != nil {
		switch {
		case errors.Is(err, lunar.ErrOutOfRange):
			a.unprocessableResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("convert date: %w", err))
		}
		return
	}

	if err := a.writeJSON(w, http.StatusOK, info, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getLunarTermsHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid year %v", chi.URLParam(r, "year")))
		return
	}

	terms, err := lunar.TermsForYear(year)
	if err != nil {
		switch {
		case errors.Is(err, lunar.ErrOutOfRange):
			a.unprocessableResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("terms for year: %w", err))
		}
		return
	}

	if err := a.writeJSON(w, http.StatusOK, terms, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
