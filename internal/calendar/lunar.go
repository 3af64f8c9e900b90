// Package calendar converts dates between the Gregorian calendar and the
// Chinese lunisolar calendar for 1900-01-31 through 2100-12-31, and derives
// the stem-branch labels, zodiac animal and solar terms of a date.
//
// All tables are immutable package state; every function is safe for
// concurrent use.
package calendar

import (
	"fmt"
	"math/bits"
)

// Supported year range, shared by both calendars.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Bit layout of a lunarYearInfo entry.
const (
	leapMonthMask    = 0xf
	bigMonthMask     = 0xfff0
	bigLeapMonthFlag = 0x10000
	firstMonthFlag   = 0x8000

	smallMonthDays = 29
	bigMonthDays   = 30
	baseYearDays   = 12 * smallMonthDays
)

func init() {
	if len(lunarYearInfo) != MaxYear-MinYear+1 {
		panic(fmt.Sprintf("calendar: lunar year table has %d entries, want %d", len(lunarYearInfo), MaxYear-MinYear+1))
	}
	for i, info := range lunarYearInfo {
		if info>>17 != 0 || info&leapMonthMask > 12 {
			panic(fmt.Sprintf("calendar: malformed lunar year entry %#x for %d", info, MinYear+i))
		}
	}
}

// MonthSpan is one month of a lunar year in calendar order.
type MonthSpan struct {
	Month int  `json:"month"`
	Leap  bool `json:"leap"`
	Days  int  `json:"days"`
}

// YearDays returns the total number of days in a lunar year.
func YearDays(year int) (int, error) {
	if err := checkYear("lunar year", year); err != nil {
		return 0, err
	}
	return yearDays(year), nil
}

// LeapMonth returns the leap month of a lunar year, or 0 when it has none.
func LeapMonth(year int) (int, error) {
	if err := checkYear("lunar year", year); err != nil {
		return 0, err
	}
	return leapMonth(year), nil
}

// LeapMonthDays returns the length of a lunar year's leap month: 0 when it
// has none, otherwise 29 or 30.
func LeapMonthDays(year int) (int, error) {
	if err := checkYear("lunar year", year); err != nil {
		return 0, err
	}
	return leapMonthDays(year), nil
}

// MonthDays returns the length (29 or 30) of a regular lunar month. Use
// LeapMonthDays for the leap month.
func MonthDays(year, month int) (int, error) {
	if err := checkYear("lunar year", year); err != nil {
		return 0, err
	}
	if month < 1 || month > 12 {
		return 0, outOfRange("lunar month", month, 1, 12)
	}
	return monthDays(year, month), nil
}

// Months returns the 12 or 13 months of a lunar year in calendar order. A
// leap month immediately follows the regular month it shares a number with.
func Months(year int) ([]MonthSpan, error) {
	if err := checkYear("lunar year", year); err != nil {
		return nil, err
	}
	return months(year), nil
}

func checkYear(name string, year int) error {
	if year < MinYear || year > MaxYear {
		return outOfRange(name, year, MinYear, MaxYear)
	}
	return nil
}

// The helpers below assume a year already inside [MinYear, MaxYear].

func yearInfo(year int) uint32 {
	return lunarYearInfo[year-MinYear]
}

func yearDays(year int) int {
	return baseYearDays + bits.OnesCount32(yearInfo(year)&bigMonthMask) + leapMonthDays(year)
}

func leapMonth(year int) int {
	return int(yearInfo(year) & leapMonthMask)
}

func leapMonthDays(year int) int {
	if leapMonth(year) == 0 {
		return 0
	}
	if yearInfo(year)&bigLeapMonthFlag != 0 {
		return bigMonthDays
	}
	return smallMonthDays
}

func monthDays(year, month int) int {
	if yearInfo(year)&(firstMonthFlag>>(month-1)) != 0 {
		return bigMonthDays
	}
	return smallMonthDays
}

func months(year int) []MonthSpan {
	leap := leapMonth(year)
	spans := make([]MonthSpan, 0, 13)
	for m := 1; m <= 12; m++ {
		spans = append(spans, MonthSpan{Month: m, Days: monthDays(year, m)})
		if m == leap {
			spans = append(spans, MonthSpan{Month: m, Leap: true, Days: leapMonthDays(year)})
		}
	}
	return spans
}
