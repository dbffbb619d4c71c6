package model

import (
	"github.com/gerow/go-color"
)

type CalendarCreate struct {
	UserID    int64
	Name      string
	Color     color.RGB
	IsDefault bool
}

type Calendar struct {
	ID int64
	CalendarCreate
}
