package calendar

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// SolarDate is a Gregorian calendar date.
type SolarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d SolarDate) String() string {
	return formatYMD(d.Year, d.Month, d.Day)
}

// LunarDate is a date of the Chinese lunisolar calendar. Leap marks the
// intercalary month that follows the regular month of the same number.
type LunarDate struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Day   int  `json:"day"`
	Leap  bool `json:"leap"`
}

func (d LunarDate) String() string {
	if d.Leap {
		return fmt.Sprintf("%04d-L%02d-%02d", d.Year, d.Month, d.Day)
	}
	return formatYMD(d.Year, d.Month, d.Day)
}

// ParseDate parses a YYYY-MM-DD Gregorian date. Only the shape of the input
// is checked here; month and day ranges are checked by the converter.
func ParseDate(s string) (SolarDate, error) {
	if len(s) != len(dateLayout) || s[4] != '-' || s[7] != '-' {
		return SolarDate{}, invalidArgument("date %q must be formatted as YYYY-MM-DD", s)
	}
	var parts [3]int
	for i, field := range []string{s[0:4], s[5:7], s[8:10]} {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return SolarDate{}, invalidArgument("date %q must be formatted as YYYY-MM-DD", s)
		}
		parts[i] = n
	}
	return SolarDate{Year: parts[0], Month: parts[1], Day: parts[2]}, nil
}

// FormatDate renders a time's calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatYMD(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Reference instants, at UTC midnight so day differences are exact.
var (
	// lunarEpoch is solar 1900-01-31, lunar 1900-01-01.
	lunarEpoch = time.Date(1900, time.January, 31, 0, 0, 0, 0, time.UTC)
	// cycleEpoch is solar 1900-01-01, ten days after a 甲子 day.
	cycleEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func utcDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
