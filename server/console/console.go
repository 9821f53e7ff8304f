package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/df-mc/pluginapi/server"
	"github.com/df-mc/pluginapi/server/cmd"
	"github.com/df-mc/pluginapi/server/numeric"
	"github.com/df-mc/pluginapi/server/text"
	"github.com/df-mc/pluginapi/server/timeutil"
	"github.com/go-gl/mathgl/mgl64"
)

// Console provides a simple CLI that reads command lines from an io.Reader
// (defaulting to os.Stdin) and reports how their arguments are parsed.
type Console struct {
	conf   server.Config
	log    *slog.Logger
	reader io.Reader
}

// New returns a Console using the parsers of the provided Config. The console
// reads from os.Stdin and writes its reports to the Config's logger.
func New(conf server.Config) *Console {
	log := conf.Log
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		conf:   conf,
		log:    log,
		reader: os.Stdin,
	}
}

// WithReader sets a custom reader for the console input. It enables testing the
// console without relying on os.Stdin.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run starts consuming command lines from the console. It blocks until the
// context is cancelled or the underlying reader reaches EOF.
func (c *Console) Run(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			c.log.Debug("Console input closed.", "opened", timeutil.Ago(start, time.Now()))
			return
		}
		line, ok := cmd.ParseLine(scanner.Text(), c.log)
		if !ok {
			continue
		}
		if strings.EqualFold(line.Label(), "help") {
			page := 1
			if arg, ok := line.Arg(0); ok {
				page, _ = strconv.Atoi(arg)
			}
			c.log.Info(c.Help(page))
			continue
		}
		c.report(c.Inspect(line))
	}
}

// Report describes how the arguments of a command line were parsed.
type Report struct {
	// Label is the label of the command.
	Label string
	// Grouped holds the arguments with quoted strings merged into single
	// arguments. It is nil if a quotation mark was left open.
	Grouped []string
	// Quoted is the first quoted string in the arguments, if HasQuoted is true.
	Quoted    cmd.QuotedSpan
	HasQuoted bool
	// Flags holds the presence of every flag accepted by the command.
	Flags map[string]bool
	// Unknown holds the flags passed that the command does not accept.
	Unknown []string
	// Strings holds the arguments accepted by the configured quoted string
	// parser, keyed by argument index.
	Strings map[int]string
	// Percentages holds the arguments that are percentages, keyed by argument
	// index.
	Percentages map[int]float64
	// Durations holds arguments such as 10s, 5m and 2h, keyed by argument index.
	Durations map[int]time.Duration
	// Ticks holds arguments that are clock times such as 18:00 or 06:30PM,
	// converted to world time ticks, keyed by argument index.
	Ticks map[int]int64
	// Position is the first three consecutive arguments forming a position.
	Position    mgl64.Vec3
	HasPosition bool
}

// Inspect parses the arguments of line with the parsers of the console.
func (c *Console) Inspect(line *cmd.Context) Report {
	flags := line.Flags(c.conf.Flags(line.Label())...)
	r := Report{
		Label:       line.Label(),
		Flags:       flags.Presence(),
		Unknown:     flags.Unknown(),
		Strings:     make(map[int]string),
		Percentages: make(map[int]float64),
		Durations:   make(map[int]time.Duration),
		Ticks:       make(map[int]int64),
	}
	r.Quoted, r.HasQuoted = line.FindQuoted()
	grouped, err := line.Grouped()
	if err != nil {
		c.log.Debug("Arguments could not be grouped.", "err", err)
	}
	r.Grouped = grouped

	args := line.Args()
	for i, arg := range args {
		if c.conf.Quoted != nil {
			if v, ok := c.conf.Quoted.Parse(arg).Value(); ok {
				r.Strings[i] = v
			}
		}
		if c.conf.Percentage != nil {
			if v, ok := c.conf.Percentage.Parse(arg).Value(); ok {
				r.Percentages[i] = v
			}
		}
		if d, err := timeutil.ParseDurationInput(arg); err == nil {
			r.Durations[i] = d
		}
		if ticks, ok := clockTicks(arg); ok {
			r.Ticks[i] = ticks
		}
		if !r.HasPosition && i+3 <= len(args) {
			if pos, err := cmd.ParsePosition(args[i], args[i+1], args[i+2], c.conf.Origin); err == nil {
				r.Position, r.HasPosition = pos, true
			}
		}
	}
	return r
}

// clockTicks converts a 12 or 24 hour clock argument to world time ticks.
func clockTicks(arg string) (int64, bool) {
	if timeutil.Is12HourClock(arg) {
		arg, _ = timeutil.Convert12To24(arg)
	}
	ticks, err := timeutil.ClockToTicks(arg)
	return ticks, err == nil
}

func (c *Console) report(r Report) {
	var passed []string
	for name, ok := range r.Flags {
		if ok {
			passed = append(passed, "--"+name)
		}
	}
	slices.Sort(passed)
	attrs := []any{
		"flags", text.PlainList("Passed", passed),
		"unknown", text.PlainList("Unknown", r.Unknown),
		"quoted", text.FormatBool(r.HasQuoted, text.YesNo, text.BoolOptions{}),
	}
	if r.Grouped != nil {
		attrs = append(attrs, "args", len(r.Grouped))
	}
	if r.HasQuoted {
		attrs = append(attrs, "quotedText", r.Quoted.String(), "quotedArgs", r.Quoted.Len())
	}
	if r.HasPosition {
		attrs = append(attrs, "position", r.Position)
	}
	c.log.Info("Parsed command "+text.Quoted(r.Label)+".", attrs...)

	for _, i := range sortedKeys(r.Strings) {
		c.log.Info("Quoted argument.", "index", i, "value", r.Strings[i])
	}
	for _, i := range sortedKeys(r.Percentages) {
		c.log.Info("Percentage argument.", "index", i, "value", numeric.RoundToDigits(r.Percentages[i], 2))
	}
	for _, i := range sortedKeys(r.Durations) {
		c.log.Info("Duration argument.", "index", i, "value", r.Durations[i], "ticks", timeutil.DurationToTicks(r.Durations[i]))
	}
	for _, i := range sortedKeys(r.Ticks) {
		clock, _ := timeutil.TicksToClock(r.Ticks[i], false)
		c.log.Info("Clock argument.", "index", i, "ticks", r.Ticks[i], "clock", clock)
	}
}

func sortedKeys[V any](m map[int]V) []int {
	return slices.Sorted(maps.Keys(m))
}

// Help returns a page of the commands with registered flags, along with the
// flags each of them accepts. Pages are numbered from 1 and out of range pages
// are clamped.
func (c *Console) Help(page int) string {
	var labels []string
	if c.conf.Registry != nil {
		labels = c.conf.Registry.Labels()
	}
	perPage := max(c.conf.PageSize, 1)
	pages := max(numeric.PageCount(len(labels), perPage), 1)
	index := min(max(page, 1), pages) - 1
	start, end := numeric.PageBounds(index, perPage, len(labels))

	entries := make([]string, 0, end-start)
	for _, label := range labels[start:end] {
		var names []string
		for _, f := range c.conf.Flags(label) {
			names = append(names, f.String())
		}
		entries = append(entries, label+" "+strings.Join(names, " "))
	}
	return text.PlainList(fmt.Sprintf("Commands (page %d of %d)", index+1, pages), entries)
}
