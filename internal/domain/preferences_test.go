package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreferences_IsSleepHour_WrapsMidnight(t *testing.T) {
	p := Preferences{SleepTime: MustClock("23:00"), AwakeTime: MustClock("07:00")}

	for h := 0; h < 7; h++ {
		assert.True(t, p.IsSleepHour(h), "hour %d", h)
	}
	assert.True(t, p.IsSleepHour(23))
	for h := 7; h < 23; h++ {
		assert.False(t, p.IsSleepHour(h), "hour %d", h)
	}
}

func TestPreferences_IsSleepHour_SameDay(t *testing.T) {
	// Night-shift sleeper: asleep 02:00 to 10:00.
	p := Preferences{SleepTime: MustClock("02:00"), AwakeTime: MustClock("10:00")}

	assert.False(t, p.IsSleepHour(1))
	assert.True(t, p.IsSleepHour(2))
	assert.True(t, p.IsSleepHour(9))
	assert.False(t, p.IsSleepHour(10))
}

func TestPreferences_IsSleepHour_EqualTimesMeansNoSleep(t *testing.T) {
	p := Preferences{SleepTime: MustClock("08:00"), AwakeTime: MustClock("08:00")}
	for h := 0; h < 24; h++ {
		assert.False(t, p.IsSleepHour(h))
	}
}

func TestHourOverlaps(t *testing.T) {
	start, end := MustClock("09:30"), MustClock("11:00")
	assert.False(t, HourOverlaps(8, start, end))
	assert.True(t, HourOverlaps(9, start, end))
	assert.True(t, HourOverlaps(10, start, end))
	assert.False(t, HourOverlaps(11, start, end))
}

func TestClassCommitment_Validate(t *testing.T) {
	ok := ClassCommitment{Subject: "Math", Weekday: time.Monday, Start: MustClock("09:00"), End: MustClock("10:00")}
	assert.NoError(t, ok.Validate())

	backwards := ok
	backwards.End = MustClock("08:00")
	assert.ErrorIs(t, backwards.Validate(), ErrInvalidRange)

	unnamed := ok
	unnamed.Subject = " "
	assert.ErrorIs(t, unnamed.Validate(), ErrEmptyName)
}

func TestStudyWindow_Covers(t *testing.T) {
	w := StudyWindow{Weekday: time.Tuesday, Start: MustClock("18:00"), End: MustClock("20:00"), Focus: FocusHigh}
	assert.True(t, w.Covers(time.Tuesday, 18))
	assert.True(t, w.Covers(time.Tuesday, 19))
	assert.False(t, w.Covers(time.Tuesday, 20))
	assert.False(t, w.Covers(time.Wednesday, 18))
}

func TestParsePriorityAndFocus(t *testing.T) {
	p, err := ParsePriority(" High ")
	assert.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)

	f, err := ParseFocus("")
	assert.NoError(t, err)
	assert.Equal(t, FocusNone, f)

	_, err = ParseFocus("extreme")
	assert.ErrorIs(t, err, ErrInvalidFocus)
}
