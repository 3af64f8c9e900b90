package calendar

// Conversion describes a single day in both calendars. It is returned by
// value and never modified after construction.
type Conversion struct {
	SolarDate string `json:"solarDate"`
	SYear     int    `json:"sYear"`
	SMonth    int    `json:"sMonth"`
	SDay      int    `json:"sDay"`

	LunarDate string `json:"lunarDate"`
	LYear     int    `json:"lYear"`
	LMonth    int    `json:"lMonth"`
	LDay      int    `json:"lDay"`
	IsLeap    bool   `json:"isLeap"`

	// Weekday is 1 (Monday) through 7 (Sunday).
	Weekday      int    `json:"weekday"`
	WeekdayLabel string `json:"weekdayLabel"`

	GzYear  string `json:"gzYear"`
	GzMonth string `json:"gzMonth"`
	GzDay   string `json:"gzDay"`
	Animal  string `json:"animal"`
	MonthCn string `json:"monthCn"`
	DayCn   string `json:"dayCn"`

	IsToday bool    `json:"isToday"`
	IsTerm  bool    `json:"isTerm"`
	Term    *string `json:"term"`
}

// Solar returns the Gregorian side of the conversion.
func (c Conversion) Solar() SolarDate {
	return SolarDate{Year: c.SYear, Month: c.SMonth, Day: c.SDay}
}

// Lunar returns the lunar side of the conversion.
func (c Conversion) Lunar() LunarDate {
	return LunarDate{Year: c.LYear, Month: c.LMonth, Day: c.LDay, Leap: c.IsLeap}
}

// TermName returns the solar term falling on the day, or "".
func (c Conversion) TermName() string {
	if c.Term == nil {
		return ""
	}
	return *c.Term
}
