package user

import (
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

type userDTO struct {
	ID          int64
	FullName    string
	Email       string
	PhoneNumber string
	Photo       string
	PushToken   string
	Notify      bool
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			FullName:    dto.FullName,
			Email:       dto.Email,
			PhoneNumber: dto.PhoneNumber,
			Photo:       dto.Photo,
			PushToken:   dto.PushToken,
			Notify:      dto.Notify,
		},
	}
}
