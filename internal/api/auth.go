package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gerow/go-color"
	"github.com/lunacal-app/lunacal-backend/internal/config"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

const (
	defaultCalendarName  = "默认"
	defaultCalendarColor = "4285f4"
)

func (a *Api) signInGoogleHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		AuthCode string `json:"auth_code"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	tokenInfo, err := a.tokenParser.GetInfoGoogle(r.Context(), req.AuthCode)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	user, err := a.users.GetUserByEmail(r.Context(), a.db, tokenInfo.Email)
	if err != nil {
		if !errors.Is(err, model.ErrNoRecord) {
			a.serverErrorResponse(w, r, err)
			return
		}

		user, err = a.registerUser(r, tokenInfo.Name, tokenInfo.Email, tokenInfo.PhoneNumber, tokenInfo.Picture)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
	}

	tokens, err := a.generateTokens(r.Context(), user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, tokens, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// registerUser creates the user together with their default calendar, in
// one transaction.
func (a *Api) registerUser(r *http.Request, name, email, phone, photo string) (*model.User, error) {
	tx, err := a.db.BeginTx(r.Context(), nil)
	if err != nil {
		return nil, fmt.Errorf("tx begin: %w", err)
	}
	defer tx.Rollback(r.Context())

	userCreate := &model.UserCreate{
		FullName:    name,
		Email:       email,
		PhoneNumber: phone,
		Photo:       photo,
		Notify:      true,
	}
	id, err := a.users.CreateUser(r.Context(), tx, userCreate)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	defaultColor, err := color.HTMLToRGB(defaultCalendarColor)
	if err != nil {
		return nil, fmt.Errorf("parse default color: %w", err)
	}

	if _, err := a.calendars.CreateCalendar(r.Context(), tx, &model.CalendarCreate{
		UserID:    id,
		Name:      defaultCalendarName,
		Color:     defaultColor,
		IsDefault: true,
	}); err != nil {
		return nil, fmt.Errorf("create default calendar: %w", err)
	}

	if err := tx.Commit(r.Context()); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &model.User{ID: id, UserCreate: *userCreate}, nil
}

func (a *Api) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	input := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}

	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	id, err := a.refreshTokens.Get(r.Context(), input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.unauthorizedResponse(w, r, errors.New("no such session"))
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	accessToken, err := a.jwts.CreateToken(id)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	newRefreshToken := ""
	for {
		newRefreshToken, err = a.generateRandomString(config.SessionTokenLength())
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}

		if err := a.refreshTokens.Refresh(r.Context(), input.RefreshToken, newRefreshToken); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				continue
			}
			a.serverErrorResponse(w, r, err)
			return
		}

		break
	}

	response := &struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}

	if err := a.writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	input := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}

	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.refreshTokens.Delete(r.Context(), input.RefreshToken); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.unauthorizedResponse(w, r, errors.New("no such session"))
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
