package webinar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingAheadOfSchedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scheduled := now.Add(1*time.Hour + 2*time.Minute + 3*time.Second)

	c := Remaining(scheduled, now)
	assert.Equal(t, Countdown{
		Days: "00", Hours: "01", Minutes: "02", Seconds: "03",
		State: StateCounting,
	}, c)
}

func TestRemainingWithDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scheduled := now.Add(49*time.Hour + 30*time.Second)

	c := Remaining(scheduled, now)
	assert.Equal(t, "02", c.Days)
	assert.Equal(t, "01", c.Hours)
	assert.Equal(t, "00", c.Minutes)
	assert.Equal(t, "30", c.Seconds)
	assert.Equal(t, StateCounting, c.State)
}

func TestRemainingPastScheduleIsStarted(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, scheduled := range []time.Time{now, now.Add(-time.Second), now.Add(-48 * time.Hour)} {
		c := Remaining(scheduled, now)
		assert.Equal(t, StateStarted, c.State)
		assert.Equal(t, Countdown{Days: "00", Hours: "00", Minutes: "00", Seconds: "00", State: StateStarted}, c)
	}
}

func TestParseScheduleMoscow(t *testing.T) {
	got, err := ParseSchedule("2026-09-15", "18:30")
	require.NoError(t, err)

	// Moscow is UTC+3 year-round
	assert.Equal(t, time.Date(2026, 9, 15, 15, 30, 0, 0, time.UTC), got.UTC())
}

func TestParseScheduleRejectsMalformedInput(t *testing.T) {
	_, err := ParseSchedule("15.09.2026", "18:30")
	assert.Error(t, err)

	_, err = ParseSchedule("2026-09-15", "half past six")
	assert.Error(t, err)
}

func TestTickerStopsAtStarted(t *testing.T) {
	scheduled := time.Now().Add(25 * time.Millisecond)
	ticks := make(chan Countdown, 64)

	ticker := StartTicker(scheduled, 5*time.Millisecond, func(c Countdown) {
		ticks <- c
	})
	defer ticker.Stop()

	var last Countdown
	deadline := time.After(2 * time.Second)
	for last.State != StateStarted {
		select {
		case last = <-ticks:
		case <-deadline:
			t.Fatal("ticker never reached started state")
		}
	}

	// No further ticks after the terminal one
	select {
	case c := <-ticks:
		t.Fatalf("unexpected tick after started: %+v", c)
	case <-time.After(50 * time.Millisecond):
	}
}
