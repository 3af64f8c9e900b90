package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGanZhi(t *testing.T) {
	assert.Equal(t, "甲子", GanZhi(0))
	assert.Equal(t, "癸亥", GanZhi(59))
	assert.Equal(t, "甲子", GanZhi(60))
	assert.Equal(t, "癸亥", GanZhi(-1))

	assert.Equal(t, "甲子", GanZhiYear(1984))
	assert.Equal(t, "癸卯", GanZhiYear(2023))
	assert.Equal(t, "甲辰", GanZhiYear(2024))
}

func TestChineseMonth(t *testing.T) {
	tests := map[int]string{1: "正月", 2: "二月", 10: "十月", 11: "冬月", 12: "腊月"}
	for month, want := range tests {
		got, err := ChineseMonth(month)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ChineseMonth(13)
	assert.True(t, IsOutOfRange(err))
}

func TestChineseDay(t *testing.T) {
	tests := map[int]string{
		1:  "初一",
		9:  "初九",
		10: "初十",
		11: "十一",
		15: "十五",
		20: "二十",
		21: "廿一",
		29: "廿九",
		30: "三十",
	}
	for day, want := range tests {
		got, err := ChineseDay(day)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ChineseDay(%d)", day)
	}

	for _, day := range []int{0, 31} {
		_, err := ChineseDay(day)
		assert.True(t, IsOutOfRange(err), "day %d", day)
	}
}

func TestZodiacSign(t *testing.T) {
	tests := []struct {
		month, day int
		want       string
	}{
		{1, 19, "摩羯座"},
		{1, 20, "水瓶座"},
		{2, 19, "双鱼座"},
		{2, 29, "双鱼座"},
		{11, 13, "天蝎座"},
		{11, 30, "射手座"},
		{12, 31, "摩羯座"},
	}
	for _, tt := range tests {
		got, err := ZodiacSign(tt.month, tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ZodiacSign(%d, %d)", tt.month, tt.day)
	}

	_, err := ZodiacSign(4, 31)
	assert.True(t, IsOutOfRange(err))
	_, err = ZodiacSign(0, 1)
	assert.True(t, IsOutOfRange(err))
}
