package lunar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSexagenaryName(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"cycle opens with jiazi", 0, "甲子"},
		{"index 41 is yisi", 41, "乙巳"},
		{"cycle closes with guihai", 59, "癸亥"},
		{"wraps past sixty", 60, "甲子"},
		{"negative index wraps", -1, "癸亥"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sexagenaryName(tt.index))
		})
	}
}

func TestYearCycleIndex(t *testing.T) {
	assert.Equal(t, 0, yearCycleIndex(4))
	assert.Equal(t, 41, yearCycleIndex(2025))
	assert.Equal(t, 0, yearCycleIndex(1984))
}

func TestYearZodiac(t *testing.T) {
	assert.Equal(t, "蛇", yearZodiac(2025))
	assert.Equal(t, "鼠", yearZodiac(1984))
	assert.Equal(t, "龙", yearZodiac(2024))
}

func TestJulianDayNumber(t *testing.T) {
	assert.Equal(t, 2451545, julianDayNumber(2000, 1, 1))
	assert.Equal(t, 2440588, julianDayNumber(1970, 1, 1))
}

func TestDayCycleIndex(t *testing.T) {
	// 2000-01-01 fell on a wuwu day.
	index := dayCycleIndex(julianDayNumber(2000, 1, 1))
	assert.Equal(t, "戊午", sexagenaryName(index))
}

func TestIsAuspiciousOfficer(t *testing.T) {
	assert.True(t, isAuspiciousOfficer("青龙"))
	assert.True(t, isAuspiciousOfficer("司命"))
	assert.False(t, isAuspiciousOfficer("白虎"))
	assert.False(t, isAuspiciousOfficer(""))
}
