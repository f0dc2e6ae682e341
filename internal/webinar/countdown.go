package webinar

import (
	"fmt"
	"time"
)

// State of the countdown clock. The transition is one-way: once started,
// a webinar never goes back to counting.
type State string

const (
	StateCounting State = "counting"
	StateStarted  State = "started"
)

// Countdown is one tick of the remaining-time clock. Components are
// floored to integers and zero-padded to two digits.
type Countdown struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	State   State  `json:"state"`
}

// Schedules are authored in Moscow time regardless of where the server
// or the viewer runs.
var moscow *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		// MSK has had no DST since 2014
		loc = time.FixedZone("MSK", 3*60*60)
	}
	moscow = loc
}

// ParseSchedule interprets a stored date ("2006-01-02") and clock
// ("15:04") pair as a Moscow-time instant
func ParseSchedule(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, moscow)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid webinar schedule %q %q: %w", date, clock, err)
	}
	return t, nil
}

// Remaining computes the countdown between now and the scheduled instant
func Remaining(scheduled, now time.Time) Countdown {
	d := scheduled.Sub(now)
	if d <= 0 {
		return Countdown{Days: "00", Hours: "00", Minutes: "00", Seconds: "00", State: StateStarted}
	}

	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	return Countdown{
		Days:    pad(days),
		Hours:   pad(hours),
		Minutes: pad(minutes),
		Seconds: pad(seconds),
		State:   StateCounting,
	}
}

func pad(n int) string {
	return fmt.Sprintf("%02d", n)
}
