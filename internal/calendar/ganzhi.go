package calendar

// GanZhi returns the stem-branch pair at a position of the sexagenary
// cycle. Offset 0 is 甲子; negative offsets wrap backwards.
func GanZhi(offset int) string {
	return heavenlyStems[mod(offset, 10)] + earthlyBranches[mod(offset, 12)]
}

// GanZhiYear returns the stem-branch label of a lunar year.
func GanZhiYear(lunarYear int) string {
	return GanZhi(lunarYear - 4)
}

// ChineseMonth returns the traditional name of a lunar month, 正月 through
// 腊月. The leap prefix is not included.
func ChineseMonth(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", outOfRange("lunar month", month, 1, 12)
	}
	return monthNames[month-1] + monthSuffix, nil
}

// ChineseDay returns the traditional name of a lunar day, 初一 through 三十.
func ChineseDay(day int) (string, error) {
	if day < 1 || day > 30 {
		return "", outOfRange("lunar day", day, 1, 30)
	}
	switch day {
	case 10:
		return "初十", nil
	case 20:
		return "二十", nil
	case 30:
		return "三十", nil
	}
	return dayTensPrefixes[day/10] + chineseDigits[day%10], nil
}

func leapMonthName(month int) string {
	return leapPrefix + monthNames[month-1] + monthSuffix
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
