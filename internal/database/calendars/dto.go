package calendars

import (
	"fmt"

	"github.com/gerow/go-color"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

type calendarDTO struct {
	ID        int64
	UserID    int64
	Name      string
	Color     string
	IsDefault bool
}

func mapToCalendar(d *calendarDTO) (*model.Calendar, error) {
	colorRGB, err := color.HTMLToRGB(d.Color)
	if err != nil {
		return nil, fmt.Errorf("map color from %v", d.Color)
	}

	return &model.Calendar{
		ID: d.ID,
		CalendarCreate: model.CalendarCreate{
			UserID:    d.UserID,
			Name:      d.Name,
			Color:     colorRGB,
			IsDefault: d.IsDefault,
		},
	}, nil
}
