package events

import (
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

type eventDTO struct {
	ID             int64
	CalendarID     int64
	Title          string
	Description    string
	Location       string
	AllDay         bool
	StartTime      time.Time
	EndTime        time.Time
	RecurrenceRule string
	RecurrenceEnd  *time.Time
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			CalendarID:     dto.CalendarID,
			Title:          dto.Title,
			Description:    dto.Description,
			Location:       dto.Location,
			AllDay:         dto.AllDay,
			From:           dto.StartTime,
			To:             dto.EndTime,
			RecurrenceRule: dto.RecurrenceRule,
			RecurrenceEnd:  dto.RecurrenceEnd,
		},
	}
}
