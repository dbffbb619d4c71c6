package view

import "time"

// Step moves the selected date one period in the given direction. Month
// steps use AddDate's normalizing arithmetic, so stepping out of a long
// month into a short one can shift the day of month.
func Step(direction Direction, mode Mode, current time.Time) time.Time {
	sign := 1
	if direction == DirectionPrev {
		sign = -1
	}

	switch mode {
	case ModeMonth:
		return current.AddDate(0, sign, 0)
	case ModeWeek:
		return current.AddDate(0, 0, sign*7)
	default:
		return current.AddDate(0, 0, sign)
	}
}

// Today returns the current local calendar day.
func Today() time.Time {
	return DateOnly(time.Now())
}
