package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sandertv/gophertunnel/minecraft/text"
)

const (
	// TicksPerDay is the length of a full day/night cycle in ticks.
	TicksPerDay = 24000
	// TicksPerHour is the number of ticks in a single in-game hour.
	TicksPerHour = TicksPerDay / 24
	// TicksPerSecond is the number of ticks in a second of real time.
	TicksPerSecond = 20
)

// ErrTicksOutOfRange is returned when a time of day outside of [0, TicksPerDay]
// is converted to a clock.
var ErrTicksOutOfRange = errors.New("ticks out of range")

var (
	clock12Form = regexp.MustCompile(`^(0[1-9]|1[0-2]):([0-5]\d)([APap][Mm])$`)
	clock24Form = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// Is12HourClock reports if s is a 12-hour clock time such as 07:30PM.
func Is12HourClock(s string) bool { return clock12Form.MatchString(s) }

// Is24HourClock reports if s is a 24-hour clock time such as 19:30.
func Is24HourClock(s string) bool { return clock24Form.MatchString(s) }

// Convert12To24 converts a 12-hour clock time to the 24-hour clock. false is
// returned if s is not a 12-hour clock time.
func Convert12To24(s string) (string, bool) {
	m := clock12Form.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	pm := strings.EqualFold(m[3], "pm")
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// TicksToClock converts a world time of day to a 24-hour clock. A time of 0
// ticks is sunrise, 06:00. When colour is true, the digits are red and the
// separator dark grey.
func TicksToClock(ticks int64, colour bool) (string, error) {
	if ticks < 0 || ticks > TicksPerDay {
		return "", fmt.Errorf("convert %d: %w", ticks, ErrTicksOutOfRange)
	}
	hour, minute := clockOf(ticks)
	if colour {
		return text.Colourf("<red>%02d</red><dark-grey>:</dark-grey><red>%02d</red>", hour, minute), nil
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func clockOf(ticks int64) (hour, minute int64) {
	ticks %= TicksPerDay
	hour = (ticks/TicksPerHour + 6) % 24
	minute = (ticks % TicksPerHour) * 60 / TicksPerHour
	return hour, minute
}

// ClockToTicks converts a 24-hour clock time to the world time of day in
// ticks, the inverse of TicksToClock.
func ClockToTicks(s string) (int64, error) {
	m := clock24Form.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%q is not a 24-hour clock time", s)
	}
	hour, _ := strconv.ParseInt(m[1], 10, 64)
	minute, _ := strconv.ParseInt(m[2], 10, 64)
	return ((hour+18)%24)*TicksPerHour + minute*TicksPerHour/60, nil
}

// DurationToTicks converts a real time duration to server ticks, rounding
// down.
func DurationToTicks(d time.Duration) int64 {
	return int64(d / (time.Second / TicksPerSecond))
}

// TicksToDuration converts server ticks to a real time duration.
func TicksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * (time.Second / TicksPerSecond)
}
