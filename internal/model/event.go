package model

import "time"

type EventCreate struct {
	CalendarID     int64
	Title          string
	Description    string
	Location       string
	AllDay         bool
	From           time.Time
	To             time.Time
	RecurrenceRule string
	RecurrenceEnd  *time.Time
}

type Event struct {
	ID int64
	EventCreate
}

// EventUpdate carries a partial update; nil fields are left untouched.
type EventUpdate struct {
	CalendarID     *int64
	Title          *string
	Description    *string
	Location       *string
	AllDay         *bool
	From           *time.Time
	To             *time.Time
	RecurrenceRule *string
	RecurrenceEnd  *time.Time
}

type EventsFilter struct {
	From        time.Time
	To          time.Time
	CalendarIDs []int64
}
