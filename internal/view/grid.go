// Package view derives render-ready calendar state: month/week grids,
// per-date event buckets, period navigation and the shared in-memory
// collections the pieces read from.
package view

import (
	"time"

	"github.com/lunacal-app/lunacal-backend/internal/lunar"
)

// monthGridSize keeps the month view at six full weeks no matter how
// the month lands on the weekday grid.
const monthGridSize = 42

// Cell is one day of a calendar grid.
type Cell struct {
	Date       time.Time            `json:"date"`
	InPeriod   bool                 `json:"in_period"`
	IsToday    bool                 `json:"is_today"`
	IsSelected bool                 `json:"is_selected"`
	Lunar      *lunar.SimpleDayInfo `json:"lunar,omitempty"`
}

// MonthGrid returns the 42 cells of the month view around selected:
// leading days back to the previous Sunday, the month itself, and
// trailing days of the next month. The first cell is always a Sunday.
func MonthGrid(selected time.Time) []Cell {
	return monthGrid(selected, time.Now())
}

func monthGrid(selected, now time.Time) []Cell {
	selectedDay := DateOnly(selected)
	today := DateOnly(now)

	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]Cell, 0, monthGridSize)
	for i := 0; i < monthGridSize; i++ {
		date := start.AddDate(0, 0, i)
		cells = append(cells, newCell(date, selectedDay, today, date.Month() == first.Month()))
	}

	return cells
}

// WeekGrid returns the 7 cells of the week containing selected,
// Sunday through Saturday.
func WeekGrid(selected time.Time) []Cell {
	return weekGrid(selected, time.Now())
}

func weekGrid(selected, now time.Time) []Cell {
	selectedDay := DateOnly(selected)
	today := DateOnly(now)

	start := selectedDay.AddDate(0, 0, -int(selectedDay.Weekday()))

	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		cells = append(cells, newCell(date, selectedDay, today, true))
	}

	return cells
}

func newCell(date, selectedDay, today time.Time, inPeriod bool) Cell {
	cell := Cell{
		Date:       date,
		InPeriod:   inPeriod,
		IsToday:    date.Equal(today),
		IsSelected: date.Equal(selectedDay),
	}

	// Out-of-range dates render without lunar annotation rather than
	// failing the whole grid.
	if info, err := lunar.Simple(date); err == nil {
		cell.Lunar = info
	}

	return cell
}

// DateOnly truncates an instant to its local calendar day. Bucketing and
// grid comparisons always happen on local days, never UTC, so events at
// timezone boundaries land on the day the user sees.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
