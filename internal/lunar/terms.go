package lunar

import (
	"fmt"
	"sort"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// The delegated table repeats terms that fall at the lunisolar year
// boundary under ASCII alias keys.
var termAliases = map[string]string{
	"DA_XUE":   "大雪",
	"DONG_ZHI": "冬至",
	"XIAO_HAN": "小寒",
	"DA_HAN":   "大寒",
	"LI_CHUN":  "立春",
	"YU_SHUI":  "雨水",
	"JING_ZHE": "惊蛰",
}

// TermsForYear returns the 24 solar terms falling inside a Gregorian
// year, ordered by date.
//
// The table is anchored at December 31st: the lunisolar year containing
// that day always spans the whole Gregorian year's terms, from the
// January terms through the December winter solstice. Entries belonging
// to adjacent years are filtered out.
func TermsForYear(year int) ([]Term, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}

	lunarDay := calendar.NewSolarFromYmd(year, 12, 31).GetLunar()

	var res []Term
	for name, solar := range lunarDay.GetJieQiTable() {
		if solar == nil || solar.GetYear() != year {
			continue
		}
		if alias, ok := termAliases[name]; ok {
			name = alias
		}
		res = append(res, Term{
			Name: name,
			Date: time.Date(solar.GetYear(), time.Month(solar.GetMonth()), solar.GetDay(), 0, 0, 0, 0, time.Local),
		})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})

	return res, nil
}
