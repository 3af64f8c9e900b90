package calendar

import (
	"fmt"
	"time"
)

// Converter turns dates of one calendar into full Conversion records. The
// zero value is not usable; construct one with NewConverter.
type Converter struct {
	clock    Clock
	location *time.Location
}

// Option configures a Converter.
type Option func(*Converter)

// WithClock sets the clock used to decide Conversion.IsToday.
func WithClock(clock Clock) Option {
	return func(c *Converter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the time zone in which "today" and time.Time inputs are
// read. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Converter) {
		if loc != nil {
			c.location = loc
		}
	}
}

// NewConverter creates a Converter backed by the system clock unless an
// option says otherwise.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		clock:    RealClock{},
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// SolarToLunar converts a Gregorian date using the system clock and local
// time zone. See Converter.SolarToLunar.
func SolarToLunar(year, month, day int) (Conversion, error) {
	return defaultConverter.SolarToLunar(year, month, day)
}

// LunarToSolar converts a lunar date using the system clock and local time
// zone. See Converter.LunarToSolar.
func LunarToSolar(year, month, day int, leap bool) (Conversion, error) {
	return defaultConverter.LunarToSolar(year, month, day, leap)
}

// Today converts the current local date.
func Today() (Conversion, error) {
	return defaultConverter.Today()
}

// Location reports the time zone the converter reads "today" in.
func (c *Converter) Location() *time.Location {
	return c.location
}

// Today converts the clock's current date in the converter's time zone.
func (c *Converter) Today() (Conversion, error) {
	return c.SolarToLunarTime(c.clock.Now())
}

// SolarToLunarTime converts the calendar date of t as seen in the
// converter's time zone.
func (c *Converter) SolarToLunarTime(t time.Time) (Conversion, error) {
	t = t.In(c.location)
	return c.SolarToLunar(t.Year(), int(t.Month()), t.Day())
}

// SolarToLunar converts a Gregorian date in [1900-01-31, 2100-12-31].
// Dates outside the range, and days that do not exist in the month, fail
// with ErrOutOfRange.
func (c *Converter) SolarToLunar(year, month, day int) (Conversion, error) {
	if err := checkSolarDate(year, month, day); err != nil {
		return Conversion{}, err
	}
	date := utcDate(year, month, day)
	lunar := lunarFromOffset(daysBetween(lunarEpoch, date))
	return c.build(date, lunar), nil
}

// LunarToSolar converts a lunar date in [1900-01-01, 2100-12-01]. leap
// selects the leap month and is only valid when month is the year's leap
// month; otherwise ErrInvalidArgument is returned, as it is for a day past
// the end of a 29-day month.
func (c *Converter) LunarToSolar(year, month, day int, leap bool) (Conversion, error) {
	if err := checkYear("lunar year", year); err != nil {
		return Conversion{}, err
	}
	if month < 1 || month > 12 {
		return Conversion{}, outOfRange("lunar month", month, 1, 12)
	}
	if day < 1 || day > bigMonthDays {
		return Conversion{}, outOfRange("lunar day", day, 1, bigMonthDays)
	}

	leapOf := leapMonth(year)
	if leap && leapOf != month {
		if leapOf == 0 {
			return Conversion{}, invalidArgument("lunar year %d has no leap month", year)
		}
		return Conversion{}, invalidArgument("lunar month %d of %d is not a leap month, the leap month is %d", month, year, leapOf)
	}
	if year == MaxYear && month == 12 && day > 1 {
		return Conversion{}, fmt.Errorf("%w: lunar date %s is after %d-12-01",
			ErrOutOfRange, LunarDate{Year: year, Month: month, Day: day, Leap: leap}, MaxYear)
	}

	offset := 0
	for y := MinYear; y < year; y++ {
		offset += yearDays(y)
	}
	for _, span := range months(year) {
		if span.Month == month && span.Leap == leap {
			if day > span.Days {
				return Conversion{}, invalidArgument("lunar day %d exceeds the %d days of %s", day, span.Days,
					LunarDate{Year: year, Month: month, Leap: leap}.monthLabel())
			}
			break
		}
		offset += span.Days
	}

	date := lunarEpoch.AddDate(0, 0, offset+day-1)
	return c.SolarToLunar(date.Year(), int(date.Month()), date.Day())
}

func checkSolarDate(year, month, day int) error {
	if err := checkYear("solar year", year); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return outOfRange("solar month", month, 1, 12)
	}
	if limit := solarDays(year, month); day < 1 || day > limit {
		return outOfRange("solar day", day, 1, limit)
	}
	if year == MinYear && month == 1 && day < lunarEpoch.Day() {
		return fmt.Errorf("%w: solar date %s is before %s", ErrOutOfRange, formatYMD(year, month, day), FormatDate(lunarEpoch))
	}
	return nil
}

// lunarFromOffset walks the year table, then the month sequence, consuming
// offset days counted from lunarEpoch.
func lunarFromOffset(offset int) LunarDate {
	year := MinYear
	for ; year < MaxYear; year++ {
		n := yearDays(year)
		if offset < n {
			break
		}
		offset -= n
	}
	for _, span := range months(year) {
		if offset < span.Days {
			return LunarDate{Year: year, Month: span.Month, Day: offset + 1, Leap: span.Leap}
		}
		offset -= span.Days
	}
	panic(fmt.Sprintf("calendar: day offset past the end of lunar year %d", year))
}

func (c *Converter) build(date time.Time, lunar LunarDate) Conversion {
	year, month, day := date.Year(), int(date.Month()), date.Day()

	weekday := int(date.Weekday())
	label := weekdayPrefix + chineseDigits[weekday]
	if weekday == 0 {
		weekday = 7
	}

	terms := solarTermDays[year-MinYear]
	first, second := terms[2*month-2], terms[2*month-1]
	monthOffset := (year-MinYear)*12 + month + 11
	if day >= first {
		monthOffset++
	}

	var term *string
	switch day {
	case first:
		name := solarTermNames[2*month-2]
		term = &name
	case second:
		name := solarTermNames[2*month-1]
		term = &name
	}

	dayCn, _ := ChineseDay(lunar.Day)

	return Conversion{
		SolarDate: formatYMD(year, month, day),
		SYear:     year,
		SMonth:    month,
		SDay:      day,

		LunarDate: formatYMD(lunar.Year, lunar.Month, lunar.Day),
		LYear:     lunar.Year,
		LMonth:    lunar.Month,
		LDay:      lunar.Day,
		IsLeap:    lunar.Leap,

		Weekday:      weekday,
		WeekdayLabel: label,

		GzYear:  GanZhiYear(lunar.Year),
		GzMonth: GanZhi(monthOffset),
		GzDay:   GanZhi(daysBetween(cycleEpoch, date) + 10),
		Animal:  zodiacAnimals[mod(lunar.Year-4, 12)],
		MonthCn: lunar.monthLabel(),
		DayCn:   dayCn,

		IsToday: c.isToday(year, month, day),
		IsTerm:  term != nil,
		Term:    term,
	}
}

func (c *Converter) isToday(year, month, day int) bool {
	now := c.clock.Now().In(c.location)
	return now.Year() == year && int(now.Month()) == month && now.Day() == day
}

func (d LunarDate) monthLabel() string {
	if d.Leap {
		return leapMonthName(d.Month)
	}
	name, _ := ChineseMonth(d.Month)
	return name
}
