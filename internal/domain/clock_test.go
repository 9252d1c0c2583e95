package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want ClockTime
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"7:05", 425},
		{"23:59", 1439},
		{"24:00", 1440},
		{"18:45:30", 1125},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "input=%s", tc.in)
		assert.Equal(t, tc.want, got, "input=%s", tc.in)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "7", "25:00", "24:30", "12:60", "ab:cd", "12:5"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrInvalidClock, "input=%q", in)
	}
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "09:05", ClockAt(9, 5).String())
	assert.Equal(t, "00:00", ClockTime(1440).String())
}

func TestClockTime_On(t *testing.T) {
	date := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)
	got := MustClock("08:30").On(date)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), got)
}

func TestClockTime_OnUsesWallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	spring := time.Date(2026, 3, 8, 0, 0, 0, 0, ny)

	got := MustClock("15:00").On(spring)
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, ny), ClockTime(MinutesPerDay).On(spring))
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"Monday": time.Monday,
		"mon":    time.Monday,
		"TUE":    time.Tuesday,
		"sunday": time.Sunday,
	} {
		got, err := ParseWeekday(in)
		require.NoError(t, err, "input=%s", in)
		assert.Equal(t, want, got)
	}

	_, err := ParseWeekday("mo")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
	_, err = ParseWeekday("funday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(b, c))
}
