package model

import "time"

type ReminderType int

const (
	ReminderTypeNotification ReminderType = iota
	ReminderTypeEmail
)

type ReminderCreate struct {
	EventID      int64
	ReminderTime time.Time
	Type         ReminderType
}

type Reminder struct {
	ID     int64
	IsSent bool
	ReminderCreate
}

type RemindersFilter struct {
	EventID     *int64
	PendingOnly bool
	From        time.Time
	To          time.Time
}
