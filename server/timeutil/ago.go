package timeutil

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var agoMagnitudes = []humanize.RelTimeMagnitude{
	{D: 3 * time.Second, Format: "a moment %s", DivBy: 1},
	{D: 6 * time.Second, Format: "a few moments %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Month, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: humanize.Year},
}

// Ago describes how long before now then was, for example "3 days ago" or "a
// moment ago". Times after now are described as "from now".
func Ago(then, now time.Time) string {
	return humanize.CustomRelTime(then, now, "ago", "from now", agoMagnitudes)
}
