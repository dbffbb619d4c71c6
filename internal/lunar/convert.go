// Package lunar annotates Gregorian dates with traditional Chinese
// almanac information: the lunisolar date, sexagenary cycles, solar
// terms, festivals, statutory holidays and day-quality assessments.
//
// New-moon and solar-term instants come from the lunar-go tables; the
// sexagenary arithmetic for years and days is computed here from the
// cycle indices so the two sources cross-check each other.
package lunar

import (
	"container/list"
	"errors"
	"fmt"
	"time"

	"github.com/6tail/lunar-go/HolidayUtil"
	"github.com/6tail/lunar-go/calendar"
)

// The delegated astronomical tables cover this range.
const (
	MinYear = 1900
	MaxYear = 2100
)

var ErrOutOfRange = errors.New("date outside supported lunisolar range")

// Holiday is a statutory holiday entry. IsWork marks a compensatory
// working day attached to the holiday rather than a day off.
type Holiday struct {
	Name   string `json:"name"`
	IsWork bool   `json:"is_work"`
}

// Term is a solar term with the Gregorian date it falls on.
type Term struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// DayInfo is the full almanac record for one calendar day. Every field
// is a pure function of the date.
type DayInfo struct {
	LunarYear      int    `json:"lunar_year"`
	LunarMonth     int    `json:"lunar_month"`
	LunarDay       int    `json:"lunar_day"`
	LunarMonthName string `json:"lunar_month_name"`
	LunarDayName   string `json:"lunar_day_name"`
	LunarYearName  string `json:"lunar_year_name"`
	IsLeapMonth    bool   `json:"is_leap_month"`

	YearGanZhi  string `json:"year_gan_zhi"`
	MonthGanZhi string `json:"month_gan_zhi"`
	DayGanZhi   string `json:"day_gan_zhi"`
	Zodiac      string `json:"zodiac"`

	SolarTerm string `json:"solar_term,omitempty"`
	NextTerm  *Term  `json:"next_term,omitempty"`

	StarSign string `json:"star_sign"`

	Festivals      []string `json:"festivals"`
	LunarFestivals []string `json:"lunar_festivals"`
	OtherFestivals []string `json:"other_festivals"`

	Holiday *Holiday `json:"holiday,omitempty"`

	Yi []string `json:"yi"`
	Ji []string `json:"ji"`

	PositionXi  string `json:"position_xi"`
	PositionFu  string `json:"position_fu"`
	PositionCai string `json:"position_cai"`

	Chong string `json:"chong"`
	Sha   string `json:"sha"`

	Mansion     string `json:"mansion"`
	MansionLuck string `json:"mansion_luck"`

	PengZu string `json:"peng_zu"`
	NaYin  string `json:"na_yin"`

	DayOfficer   string `json:"day_officer"`
	IsAuspicious bool   `json:"is_auspicious"`
}

// SimpleDayInfo is the subset a month-grid cell renders.
type SimpleDayInfo struct {
	LunarDayName   string `json:"lunar_day_name"`
	LunarMonthName string `json:"lunar_month_name"`
	IsFirstDay     bool   `json:"is_first_day"`
	SolarTerm      string `json:"solar_term,omitempty"`
	Festival       string `json:"festival,omitempty"`
	IsHoliday      bool   `json:"is_holiday"`
	IsWorkday      bool   `json:"is_workday"`
}

// Convert returns the full almanac record for the local calendar day of t.
func Convert(t time.Time) (*DayInfo, error) {
	year, month, day, err := localYmd(t)
	if err != nil {
		return nil, err
	}

	solar := calendar.NewSolarFromYmd(year, month, day)
	lunarDay := solar.GetLunar()

	info := &DayInfo{
		LunarYear:      lunarDay.GetYear(),
		LunarMonth:     lunarDay.GetMonth(),
		LunarDay:       lunarDay.GetDay(),
		LunarMonthName: lunarDay.GetMonthInChinese() + "月",
		LunarDayName:   lunarDay.GetDayInChinese(),
		LunarYearName:  lunarDay.GetYearInChinese(),
		IsLeapMonth:    lunarDay.GetMonth() < 0,

		YearGanZhi:  sexagenaryName(yearCycleIndex(lunarDay.GetYear())),
		MonthGanZhi: lunarDay.GetMonthInGanZhi(),
		DayGanZhi:   sexagenaryName(dayCycleIndex(julianDayNumber(year, month, day))),
		Zodiac:      yearZodiac(lunarDay.GetYear()),

		SolarTerm: lunarDay.GetJieQi(),

		StarSign: solar.GetXingZuo(),

		Festivals:      listStrings(solar.GetFestivals()),
		LunarFestivals: listStrings(lunarDay.GetFestivals()),
		OtherFestivals: listStrings(solar.GetOtherFestivals()),

		Yi: listStrings(lunarDay.GetDayYi()),
		Ji: listStrings(lunarDay.GetDayJi()),

		PositionXi:  lunarDay.GetDayPositionXiDesc(),
		PositionFu:  lunarDay.GetDayPositionFuDesc(),
		PositionCai: lunarDay.GetDayPositionCaiDesc(),

		Chong: lunarDay.GetDayChongDesc(),
		Sha:   lunarDay.GetDaySha(),

		Mansion:     lunarDay.GetXiu() + "宿",
		MansionLuck: lunarDay.GetXiuLuck(),

		PengZu: lunarDay.GetPengZuGan() + " " + lunarDay.GetPengZuZhi(),
		NaYin:  lunarDay.GetDayNaYin(),

		DayOfficer: lunarDay.GetZhiXing(),
	}
	info.IsAuspicious = isAuspiciousOfficer(info.DayOfficer)

	if next := lunarDay.GetNextJieQi(); next != nil {
		s := next.GetSolar()
		info.NextTerm = &Term{
			Name: next.GetName(),
			Date: time.Date(s.GetYear(), time.Month(s.GetMonth()), s.GetDay(), 0, 0, 0, 0, t.Location()),
		}
	}

	if h := HolidayUtil.GetHoliday(ymdKey(year, month, day)); h != nil {
		info.Holiday = &Holiday{Name: h.GetName(), IsWork: h.IsWork()}
	}

	return info, nil
}

// Simple returns the month-cell annotation for the local calendar day of t.
// A lunar festival outranks a solar one when both fall on the day.
func Simple(t time.Time) (*SimpleDayInfo, error) {
	year, month, day, err := localYmd(t)
	if err != nil {
		return nil, err
	}

	solar := calendar.NewSolarFromYmd(year, month, day)
	lunarDay := solar.GetLunar()

	festival := ""
	if lf := listStrings(lunarDay.GetFestivals()); len(lf) > 0 {
		festival = lf[0]
	} else if sf := listStrings(solar.GetFestivals()); len(sf) > 0 {
		festival = sf[0]
	}

	info := &SimpleDayInfo{
		LunarDayName:   lunarDay.GetDayInChinese(),
		LunarMonthName: lunarDay.GetMonthInChinese() + "月",
		IsFirstDay:     lunarDay.GetDay() == 1,
		SolarTerm:      lunarDay.GetJieQi(),
		Festival:       festival,
	}

	if h := HolidayUtil.GetHoliday(ymdKey(year, month, day)); h != nil {
		info.IsHoliday = !h.IsWork()
		info.IsWorkday = h.IsWork()
	}

	return info, nil
}

func ymdKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func localYmd(t time.Time) (int, int, int, error) {
	year, month, day := t.Date()
	if year < MinYear || year > MaxYear {
		return 0, 0, 0, fmt.Errorf("%w: %04d-%02d-%02d", ErrOutOfRange, year, int(month), day)
	}
	return year, int(month), day, nil
}

func listStrings(l *list.List) []string {
	if l == nil {
		return nil
	}

	res := make([]string, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		if s, ok := e.Value.(string); ok {
			res = append(res, s)
		}
	}

	return res
}
