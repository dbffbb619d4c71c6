package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepMonth(t *testing.T) {
	current := localDate(2025, time.June, 15)

	assert.Equal(t, localDate(2025, time.July, 15), Step(DirectionNext, ModeMonth, current))
	assert.Equal(t, localDate(2025, time.May, 15), Step(DirectionPrev, ModeMonth, current))
}

func TestStepMonthNormalizes(t *testing.T) {
	// Stepping from Jan 31 lands past the end of February.
	got := Step(DirectionNext, ModeMonth, localDate(2025, time.January, 31))
	assert.Equal(t, localDate(2025, time.March, 3), got)
}

func TestStepMonthRoundTrip(t *testing.T) {
	current := localDate(2025, time.April, 10)
	back := Step(DirectionPrev, ModeMonth, Step(DirectionNext, ModeMonth, current))
	assert.Equal(t, current, back)
}

func TestStepWeek(t *testing.T) {
	current := localDate(2025, time.December, 25)

	assert.Equal(t, localDate(2026, time.January, 1), Step(DirectionNext, ModeWeek, current))
	assert.Equal(t, localDate(2025, time.December, 18), Step(DirectionPrev, ModeWeek, current))
}

func TestStepDay(t *testing.T) {
	current := localDate(2025, time.February, 28)

	assert.Equal(t, localDate(2025, time.March, 1), Step(DirectionNext, ModeDay, current))
	assert.Equal(t, localDate(2025, time.February, 27), Step(DirectionPrev, ModeDay, current))
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{"month": ModeMonth, "week": ModeWeek, "day": ModeDay} {
		got, err := ParseMode(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := ParseMode("year")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	got, err := ParseDirection("prev")
	assert.NoError(t, err)
	assert.Equal(t, DirectionPrev, got)

	got, err = ParseDirection("next")
	assert.NoError(t, err)
	assert.Equal(t, DirectionNext, got)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
