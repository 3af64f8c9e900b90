package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearDays(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{1987, 384},
		{2022, 355},
		{2023, 384},
	}
	for _, tt := range tests {
		got, err := YearDays(tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "YearDays(%d)", tt.year)
	}

	_, err := YearDays(1899)
	assert.True(t, IsOutOfRange(err))
	_, err = YearDays(2101)
	assert.True(t, IsOutOfRange(err))
}

func TestLeapMonth(t *testing.T) {
	tests := []struct {
		year      int
		wantMonth int
		wantDays  int
	}{
		{2020, 4, 29},
		{2022, 0, 0},
		{2023, 2, 29},
		{2033, 11, 29},
		{2100, 0, 0},
	}
	for _, tt := range tests {
		month, err := LeapMonth(tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.wantMonth, month, "LeapMonth(%d)", tt.year)

		days, err := LeapMonthDays(tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.wantDays, days, "LeapMonthDays(%d)", tt.year)
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{2023, 1, 29},
		{2023, 2, 30},
		{2023, 12, 30},
		{2024, 12, 29},
		{2100, 12, 29},
	}
	for _, tt := range tests {
		got, err := MonthDays(tt.year, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "MonthDays(%d, %d)", tt.year, tt.month)
	}

	_, err := MonthDays(2023, 0)
	assert.True(t, IsOutOfRange(err))
	_, err = MonthDays(2023, 13)
	assert.True(t, IsOutOfRange(err))
}

func TestMonths2023(t *testing.T) {
	want := []MonthSpan{
		{Month: 1, Days: 29},
		{Month: 2, Days: 30},
		{Month: 2, Leap: true, Days: 29},
		{Month: 3, Days: 29},
		{Month: 4, Days: 30},
		{Month: 5, Days: 30},
		{Month: 6, Days: 29},
		{Month: 7, Days: 30},
		{Month: 8, Days: 30},
		{Month: 9, Days: 29},
		{Month: 10, Days: 30},
		{Month: 11, Days: 29},
		{Month: 12, Days: 30},
	}
	got, err := Months(2023)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLunarYearTableConsistency(t *testing.T) {
	total := 0
	for year := MinYear; year <= MaxYear; year++ {
		days, err := YearDays(year)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, days, 353, "year %d", year)
		assert.LessOrEqual(t, days, 385, "year %d", year)

		spans, err := Months(year)
		require.NoError(t, err)
		leap, _ := LeapMonth(year)
		if leap == 0 {
			assert.Len(t, spans, 12, "year %d", year)
		} else {
			assert.Len(t, spans, 13, "year %d", year)
		}

		sum := 0
		for _, s := range spans {
			assert.Contains(t, []int{29, 30}, s.Days, "year %d month %d", year, s.Month)
			sum += s.Days
		}
		assert.Equal(t, days, sum, "year %d month lengths", year)
		total += days
	}

	// Lunar 2101-01-01 falls on 2101-01-29.
	end := utcDate(2101, 1, 29)
	assert.Equal(t, daysBetween(lunarEpoch, end), total)
}
