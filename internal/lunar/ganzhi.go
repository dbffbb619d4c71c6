package lunar

var stems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var zodiacAnimals = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// auspiciousOfficers are the six auspicious 黄道 day spirits, names
// from the 天神 cycle. DayOfficer carries the 建除十二星 duty
// (建/除/满/平/定/执/破/危/成/收/开/闭), a disjoint set, so
// IsAuspicious stays false for every date. Matching against the 天神
// instead would need DayOfficer sourced from the day's 天神, not its
// 建除 duty.
var auspiciousOfficers = map[string]struct{}{
	"青龙": {},
	"明堂": {},
	"金匮": {},
	"天德": {},
	"玉堂": {},
	"司命": {},
}

// sexagenaryName maps a 60-cycle index to its stem-branch name.
// The stem is index mod 10, the branch index mod 12.
func sexagenaryName(index int) string {
	index = ((index % 60) + 60) % 60
	return stems[index%10] + branches[index%12]
}

// yearCycleIndex returns the 60-cycle index of a lunisolar year.
// Year 4 CE opened a cycle (甲子), hence the epoch offset of 4.
func yearCycleIndex(lunarYear int) int {
	return ((lunarYear-4)%60 + 60) % 60
}

// dayCycleIndex returns the 60-cycle index of a calendar day from its
// Julian day number. JDN 0 fell on index 49 of the cycle.
func dayCycleIndex(jdn int) int {
	return ((jdn+49)%60 + 60) % 60
}

// julianDayNumber converts a Gregorian calendar date to its Julian day
// number using integer arithmetic on the civil calendar.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func yearZodiac(lunarYear int) string {
	return zodiacAnimals[yearCycleIndex(lunarYear)%12]
}

func isAuspiciousOfficer(officer string) bool {
	_, ok := auspiciousOfficers[officer]
	return ok
}
