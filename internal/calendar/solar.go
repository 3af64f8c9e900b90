package calendar

import (
	"fmt"
	"strconv"
)

const (
	termChunkWidth  = 5
	termsPerChunk   = 4
	termsPerYear    = 24
	termEntryLength = termChunkWidth * termsPerYear / termsPerChunk
)

// solarTermDays is solarTermInfo decoded once at startup.
var solarTermDays = decodeSolarTermTable()

func decodeSolarTermTable() [MaxYear - MinYear + 1][termsPerYear]int {
	var table [MaxYear - MinYear + 1][termsPerYear]int
	if len(solarTermInfo) != len(table) {
		panic(fmt.Sprintf("calendar: solar term table has %d entries, want %d", len(solarTermInfo), len(table)))
	}
	for i, entry := range solarTermInfo {
		days, err := decodeSolarTermEntry(entry)
		if err != nil {
			panic(fmt.Sprintf("calendar: solar term entry for %d: %v", MinYear+i, err))
		}
		table[i] = days
	}
	return table
}

// decodeSolarTermEntry unpacks one year's term string. Each hex chunk is
// rendered as a six digit decimal number split 1+2+1+2.
func decodeSolarTermEntry(entry string) ([termsPerYear]int, error) {
	var days [termsPerYear]int
	if len(entry) != termEntryLength {
		return days, fmt.Errorf("length %d, want %d", len(entry), termEntryLength)
	}
	for chunk := 0; chunk < termsPerYear/termsPerChunk; chunk++ {
		hex := entry[chunk*termChunkWidth : (chunk+1)*termChunkWidth]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return days, fmt.Errorf("chunk %q: %w", hex, err)
		}
		digits := strconv.FormatUint(v, 10)
		if len(digits) != 6 {
			return days, fmt.Errorf("chunk %q decodes to %q, want 6 digits", hex, digits)
		}
		groups := [termsPerChunk]string{digits[0:1], digits[1:3], digits[3:4], digits[4:6]}
		for j, g := range groups {
			d, _ := strconv.Atoi(g)
			if d < 1 || d > 31 {
				return days, fmt.Errorf("chunk %q yields day %d", hex, d)
			}
			days[chunk*termsPerChunk+j] = d
		}
	}
	return days, nil
}

// SolarTerm is one of the 24 solar terms placed in a Gregorian year.
type SolarTerm struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Date  string `json:"date"`
}

// SolarTermDay returns the Gregorian day of month on which the n-th solar
// term of a year falls. n=1 is 小寒; terms 2m-1 and 2m fall in month m.
func SolarTermDay(year, n int) (int, error) {
	if err := checkYear("solar year", year); err != nil {
		return 0, err
	}
	if n < 1 || n > termsPerYear {
		return 0, outOfRange("solar term index", n, 1, termsPerYear)
	}
	return solarTermDays[year-MinYear][n-1], nil
}

// SolarTermName returns the name of the n-th solar term, n in [1, 24].
func SolarTermName(n int) (string, error) {
	if n < 1 || n > termsPerYear {
		return "", outOfRange("solar term index", n, 1, termsPerYear)
	}
	return solarTermNames[n-1], nil
}

// SolarTerms lists all 24 solar terms of a Gregorian year in order.
func SolarTerms(year int) ([]SolarTerm, error) {
	if err := checkYear("solar year", year); err != nil {
		return nil, err
	}
	terms := make([]SolarTerm, termsPerYear)
	for i := range terms {
		month := i/2 + 1
		day := solarTermDays[year-MinYear][i]
		terms[i] = SolarTerm{
			Index: i + 1,
			Name:  solarTermNames[i],
			Month: month,
			Day:   day,
			Date:  formatYMD(year, month, day),
		}
	}
	return terms, nil
}

// SolarDays returns the number of days in a Gregorian month.
func SolarDays(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, outOfRange("solar month", month, 1, 12)
	}
	return solarDays(year, month), nil
}

func solarDays(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerSolarMonth[month-1]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// Animal returns the zodiac animal of a year. The animal of a lunar year
// changes at the lunar new year; pass a Gregorian year only for a rough
// answer.
func Animal(year int) string {
	return zodiacAnimals[mod(year-4, 12)]
}
