package view

import "fmt"

type Mode int

const (
	ModeMonth Mode = iota
	ModeWeek
	ModeDay
)

func (m Mode) String() string {
	switch m {
	case ModeWeek:
		return "week"
	case ModeDay:
		return "day"
	default:
		return "month"
	}
}

type Direction int

const (
	DirectionPrev Direction = iota
	DirectionNext
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "month":
		return ModeMonth, nil
	case "week":
		return ModeWeek, nil
	case "day":
		return ModeDay, nil
	default:
		return 0, fmt.Errorf("unknown view mode %q", s)
	}
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "prev":
		return DirectionPrev, nil
	case "next":
		return DirectionNext, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
