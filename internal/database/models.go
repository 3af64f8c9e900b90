package database

import (
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// AlmanacDay is one stored Gregorian date with its lunar counterpart.
type AlmanacDay struct {
	SolarDate string `json:"solar_date"` // YYYY-MM-DD
	SYear     int    `json:"s_year"`
	SMonth    int    `json:"s_month"`
	SDay      int    `json:"s_day"`

	LunarYear  int  `json:"lunar_year"`
	LunarMonth int  `json:"lunar_month"`
	LunarDay   int  `json:"lunar_day"`
	IsLeap     bool `json:"is_leap"`

	Weekday int `json:"weekday"` // 1=Monday through 7=Sunday

	GzYear  string  `json:"gz_year"`
	GzMonth string  `json:"gz_month"`
	GzDay   string  `json:"gz_day"`
	Animal  string  `json:"animal"`
	MonthCn string  `json:"month_cn"`
	DayCn   string  `json:"day_cn"`
	Term    *string `json:"term"` // nullable

	UpdatedAt time.Time `json:"updated_at"`
}

// AlmanacDayFromConversion maps a conversion result onto a storable row.
func AlmanacDayFromConversion(c calendar.Conversion) AlmanacDay {
	day := AlmanacDay{
		SolarDate:  c.SolarDate,
		SYear:      c.SYear,
		SMonth:     c.SMonth,
		SDay:       c.SDay,
		LunarYear:  c.LYear,
		LunarMonth: c.LMonth,
		LunarDay:   c.LDay,
		IsLeap:     c.IsLeap,
		Weekday:    c.Weekday,
		GzYear:     c.GzYear,
		GzMonth:    c.GzMonth,
		GzDay:      c.GzDay,
		Animal:     c.Animal,
		MonthCn:    c.MonthCn,
		DayCn:      c.DayCn,
	}
	if c.Term != nil {
		term := *c.Term
		day.Term = &term
	}
	return day
}

// AlmanacStats summarizes the stored almanac.
type AlmanacStats struct {
	TotalDays     int        `json:"total_days"`
	EarliestDate  string     `json:"earliest_date"`
	LatestDate    string     `json:"latest_date"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
}

// YearRange bounds a query by year, inclusive. A zero bound is open.
type YearRange struct {
	From int
	To   int
}

func (r YearRange) bounds() (int, int) {
	from, to := r.From, r.To
	if from == 0 {
		from = calendar.MinYear
	}
	if to == 0 {
		to = calendar.MaxYear
	}
	return from, to
}
