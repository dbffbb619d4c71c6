package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

const (
	dateTimeFormat = time.RFC3339
	dateFormat     = "2006-01-02"
)

// dateTime marshals as an ISO-8601 instant.
type dateTime time.Time

func (d dateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateTimeFormat))
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}

	*d = dateTime(t)
	return nil
}

type calendarResp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}

func mapToCalendarResp(c *model.Calendar) (*calendarResp, error) {
	return &calendarResp{
		ID:        c.ID,
		Name:      c.Name,
		Color:     "#" + c.Color.ToHTML(),
		IsDefault: c.IsDefault,
	}, nil
}

type eventResp struct {
	ID             int64     `json:"id"`
	CalendarID     int64     `json:"calendar_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location,omitempty"`
	AllDay         bool      `json:"all_day"`
	From           dateTime  `json:"from"`
	To             dateTime  `json:"to"`
	RecurrenceRule string    `json:"recurrence_rule,omitempty"`
	RecurrenceEnd  *dateTime `json:"recurrence_end,omitempty"`
}

func mapToEventResp(e *model.Event) (*eventResp, error) {
	resp := &eventResp{
		ID:             e.ID,
		CalendarID:     e.CalendarID,
		Title:          e.Title,
		Description:    e.Description,
		Location:       e.Location,
		AllDay:         e.AllDay,
		From:           dateTime(e.From),
		To:             dateTime(e.To),
		RecurrenceRule: e.RecurrenceRule,
	}
	if e.RecurrenceEnd != nil {
		end := dateTime(*e.RecurrenceEnd)
		resp.RecurrenceEnd = &end
	}

	return resp, nil
}

const (
	reminderTypeNotification = "notification"
	reminderTypeEmail        = "email"
)

func parseReminderType(s string) (model.ReminderType, error) {
	switch s {
	case reminderTypeNotification:
		return model.ReminderTypeNotification, nil
	case reminderTypeEmail:
		return model.ReminderTypeEmail, nil
	default:
		return 0, fmt.Errorf("unknown reminder type %q", s)
	}
}

func reminderTypeString(t model.ReminderType) string {
	if t == model.ReminderTypeEmail {
		return reminderTypeEmail
	}
	return reminderTypeNotification
}

type reminderResp struct {
	ID           int64    `json:"id"`
	EventID      int64    `json:"event_id"`
	ReminderTime dateTime `json:"reminder_time"`
	Type         string   `json:"type"`
	IsSent       bool     `json:"is_sent"`
}

func mapToReminderResp(rem *model.Reminder) (*reminderResp, error) {
	return &reminderResp{
		ID:           rem.ID,
		EventID:      rem.EventID,
		ReminderTime: dateTime(rem.ReminderTime),
		Type:         reminderTypeString(rem.Type),
		IsSent:       rem.IsSent,
	}, nil
}
