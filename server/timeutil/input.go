// Package timeutil converts between the ways time is written in commands and
// the tick based time of a Minecraft world.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDurationInput is returned when a duration argument is not of
	// the form <n>s, <n>m or <n>h.
	ErrInvalidDurationInput = errors.New("invalid duration input")
	// ErrDurationOverflow is returned when a duration argument is too large to
	// be represented by a time.Duration.
	ErrDurationOverflow = errors.New("duration out of range")
)

var (
	secondsForm = regexp.MustCompile(`^\d+[sS]$`)
	minutesForm = regexp.MustCompile(`^\d+[mM]$`)
	hoursForm   = regexp.MustCompile(`^\d+[hH]$`)
)

// IsSeconds reports if s is written as a number of seconds, such as 10s.
func IsSeconds(s string) bool { return secondsForm.MatchString(s) }

// IsMinutes reports if s is written as a number of minutes, such as 5m.
func IsMinutes(s string) bool { return minutesForm.MatchString(s) }

// IsHours reports if s is written as a number of hours, such as 1h.
func IsHours(s string) bool { return hoursForm.MatchString(s) }

// ParseDurationInput parses a command argument written in seconds, minutes or
// hours into a time.Duration.
func ParseDurationInput(s string) (time.Duration, error) {
	var unit time.Duration
	switch {
	case IsSeconds(s):
		unit = time.Second
	case IsMinutes(s):
		unit = time.Minute
	case IsHours(s):
		unit = time.Hour
	default:
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidDurationInput)
	}
	n, err := strconv.ParseInt(strings.TrimRight(s, "sSmMhH"), 10, 64)
	if err != nil || n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("parse %q: %w", s, ErrDurationOverflow)
	}
	return time.Duration(n) * unit, nil
}
