package calendar

// ZodiacSign returns the Western zodiac sign of a Gregorian month and day,
// e.g. 水瓶座. The year is irrelevant, so 2-29 is accepted.
func ZodiacSign(month, day int) (string, error) {
	if month < 1 || month > 12 {
		return "", outOfRange("solar month", month, 1, 12)
	}
	if limit := solarDays(2000, month); day < 1 || day > limit {
		return "", outOfRange("solar day", day, 1, limit)
	}
	i := month
	if day < zodiacCutoffs[month-1] {
		i--
	}
	return zodiacSigns[i] + zodiacSuffix, nil
}
