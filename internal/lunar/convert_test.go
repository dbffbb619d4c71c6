package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

func TestConvert(t *testing.T) {
	info, err := Convert(date(2025, time.December, 25))
	require.NoError(t, err)

	assert.Equal(t, 2025, info.LunarYear)
	assert.Equal(t, "冬月", info.LunarMonthName)
	assert.Equal(t, "初六", info.LunarDayName)
	assert.False(t, info.IsLeapMonth)

	assert.Equal(t, "乙巳", info.YearGanZhi)
	assert.Equal(t, "蛇", info.Zodiac)
	assert.NotEmpty(t, info.MonthGanZhi)
	assert.NotEmpty(t, info.DayGanZhi)

	assert.Equal(t, "摩羯", info.StarSign)

	assert.NotEmpty(t, info.Yi)
	assert.NotEmpty(t, info.Ji)
	assert.NotEmpty(t, info.DayOfficer)

	require.NotNil(t, info.NextTerm)
	assert.True(t, info.NextTerm.Date.After(date(2025, time.December, 25)))
}

func TestDayOfficerIsDutyCycle(t *testing.T) {
	duties := map[string]struct{}{
		"建": {}, "除": {}, "满": {}, "平": {}, "定": {}, "执": {},
		"破": {}, "危": {}, "成": {}, "收": {}, "开": {}, "闭": {},
	}

	for day := 1; day <= 12; day++ {
		info, err := Convert(date(2025, time.December, day))
		require.NoError(t, err)

		assert.Contains(t, duties, info.DayOfficer)
		assert.False(t, info.IsAuspicious)
	}
}

func TestConvertSpringFestival(t *testing.T) {
	info, err := Convert(date(2025, time.January, 29))
	require.NoError(t, err)

	assert.Equal(t, "正月", info.LunarMonthName)
	assert.Equal(t, "初一", info.LunarDayName)
	assert.Contains(t, info.LunarFestivals, "春节")
	assert.Equal(t, "乙巳", info.YearGanZhi)
}

func TestConvertOutOfRange(t *testing.T) {
	_, err := Convert(date(1800, time.June, 1))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Convert(date(2200, time.June, 1))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSimple(t *testing.T) {
	info, err := Simple(date(2025, time.January, 29))
	require.NoError(t, err)

	assert.True(t, info.IsFirstDay)
	assert.Equal(t, "正月", info.LunarMonthName)
	assert.Equal(t, "初一", info.LunarDayName)
	assert.Equal(t, "春节", info.Festival)
}

func TestSimpleOrdinaryDay(t *testing.T) {
	info, err := Simple(date(2025, time.December, 25))
	require.NoError(t, err)

	assert.False(t, info.IsFirstDay)
	assert.Equal(t, "初六", info.LunarDayName)
}

func TestSimpleOutOfRange(t *testing.T) {
	_, err := Simple(date(1899, time.December, 31))
	assert.ErrorIs(t, err, ErrOutOfRange)
}
