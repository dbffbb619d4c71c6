package reminders

import (
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

type reminderDTO struct {
	ID           int64
	EventID      int64
	ReminderTime time.Time
	Type         int
	IsSent       bool
}

func mapToReminder(dto *reminderDTO) *model.Reminder {
	return &model.Reminder{
		ID:     dto.ID,
		IsSent: dto.IsSent,
		ReminderCreate: model.ReminderCreate{
			EventID:      dto.EventID,
			ReminderTime: dto.ReminderTime,
			Type:         model.ReminderType(dto.Type),
		},
	}
}
