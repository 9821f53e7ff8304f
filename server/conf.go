package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/df-mc/pluginapi/server/cmd"
	"github.com/df-mc/pluginapi/server/parse"
	"github.com/df-mc/pluginapi/server/text"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"
)

// Config contains the parsers and settings used to interpret command lines.
// A Config is usually obtained by calling UserConfig.Config.
type Config struct {
	// Log is the Logger that parse diagnostics are written to. If nil, Log is
	// set to slog.Default().
	Log *slog.Logger
	// GlobalFlags are the flags accepted by every command.
	GlobalFlags []cmd.Flag
	// Registry holds the flags accepted by specific commands. If nil, only
	// GlobalFlags are recognised.
	Registry *FlagRegistry
	// Quoted parses single arguments as quoted strings.
	Quoted *parse.QuotedStringParser
	// Percentage parses single arguments as percentages.
	Percentage *parse.PercentageParser
	// Origin is the position that relative coordinates passed on the console
	// are resolved against.
	Origin mgl64.Vec3
	// PageSize is the number of entries shown per page in paginated output.
	PageSize int
}

// Flags returns the flags accepted by the command with the label passed: the
// global flags followed by the flags registered for the command that are not
// also global.
func (conf Config) Flags(label string) []cmd.Flag {
	flags := slices.Clone(conf.GlobalFlags)
	for _, f := range conf.Registry.Flags(label) {
		if !slices.ContainsFunc(flags, func(g cmd.Flag) bool { return strings.EqualFold(g.Name(), f.Name()) }) {
			flags = append(flags, f)
		}
	}
	return flags
}

// UserConfig is the user configuration for parsing command lines. It may be
// serialised and can be converted to a Config by calling UserConfig.Config().
type UserConfig struct {
	Commands struct {
		// GlobalFlags are the names of the flags accepted by every command.
		GlobalFlags []string
		// FlagsFile is the file that flags of specific commands are stored in.
		// It is created if it does not yet exist.
		FlagsFile string
		// PageSize is the number of entries shown per page.
		PageSize int
	}
	Quoted struct {
		// Mode is either "strict", requiring the whole argument to be quoted,
		// or "any", finding the first quoted part of an argument.
		Mode string
		// Quotes is "either", "double" or "single" and controls which
		// quotation marks are searched for.
		Quotes string
		// OutputWithQuotes re-wraps parsed strings in OutputQuote.
		OutputWithQuotes bool
		// OutputQuote is the quotation mark used for output, either " or '.
		OutputQuote string
	}
	Percentage struct {
		// AcceptFractional accepts percentages such as 10.5%.
		AcceptFractional bool
		// AcceptNegative accepts percentages below zero.
		AcceptNegative bool
		// AcceptZero accepts a percentage of exactly zero.
		AcceptZero bool
		// AcceptOmittedSign accepts percentages without a % sign.
		AcceptOmittedSign bool
	}
	Console struct {
		// Origin is the position, as three coordinates, that relative
		// coordinates on the console are resolved against.
		Origin string
	}
}

// Config converts a UserConfig to a Config. Unknown enumeration values are
// logged and replaced by their defaults. An error is returned if a flag name
// is invalid or if the flags file could not be loaded.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	if log == nil {
		log = slog.Default()
	}
	conf := Config{Log: log, PageSize: uc.Commands.PageSize}
	if conf.PageSize <= 0 {
		log.Warn("Invalid page size, using default.", "value", uc.Commands.PageSize)
		conf.PageSize = DefaultConfig().Commands.PageSize
	}

	for _, name := range uc.Commands.GlobalFlags {
		f, err := cmd.NewFlag(strings.TrimSpace(name))
		if err != nil {
			return conf, fmt.Errorf("global flags: %w", err)
		}
		conf.GlobalFlags = append(conf.GlobalFlags, f)
	}
	if file := strings.TrimSpace(uc.Commands.FlagsFile); file != "" {
		reg, err := LoadFlagRegistry(file)
		if err != nil {
			return conf, fmt.Errorf("load flag registry: %w", err)
		}
		conf.Registry = reg
	}

	quoted := parse.DefaultQuotedStringConfig()
	quoted.Mode = searchMode(uc.Quoted.Mode, log)
	quoted.Search = quoteFilter(uc.Quoted.Quotes, log)
	if uc.Quoted.OutputWithQuotes {
		quoted = quoted.WithOutputQuotes(outputQuote(uc.Quoted.OutputQuote, log))
	}
	conf.Quoted = quoted.New()

	conf.Percentage = parse.PercentageConfig{
		AcceptFractional:  uc.Percentage.AcceptFractional,
		AcceptNegative:    uc.Percentage.AcceptNegative,
		AcceptZero:        uc.Percentage.AcceptZero,
		AcceptOmittedSign: uc.Percentage.AcceptOmittedSign,
	}.New()

	if origin := strings.Fields(uc.Console.Origin); len(origin) == 3 {
		pos, err := cmd.ParsePosition(origin[0], origin[1], origin[2], mgl64.Vec3{})
		if err != nil {
			log.Warn("Invalid console origin, using 0 0 0.", "value", uc.Console.Origin, "err", err)
		}
		conf.Origin = pos
	} else if len(origin) != 0 {
		log.Warn("Console origin must hold three coordinates, using 0 0 0.", "value", uc.Console.Origin)
	}
	return conf, nil
}

func searchMode(name string, log *slog.Logger) parse.SearchMode {
	switch {
	case name == "", text.EqualFoldAny(name, "strict"):
		return parse.SearchStrict
	case text.EqualFoldAny(name, "any"):
		return parse.SearchAny
	}
	log.Warn("Unknown quoted string search mode, using strict.", "value", name)
	return parse.SearchStrict
}

func quoteFilter(name string, log *slog.Logger) parse.QuoteFilter {
	switch {
	case name == "", text.EqualFoldAny(name, "either", "both"):
		return parse.QuotesEither
	case text.EqualFoldAny(name, "double"):
		return parse.QuotesDouble
	case text.EqualFoldAny(name, "single"):
		return parse.QuotesSingle
	}
	log.Warn("Unknown quotation filter, using either.", "value", name)
	return parse.QuotesEither
}

func outputQuote(s string, log *slog.Logger) text.Quote {
	if q, ok := text.QuoteOf(s); ok && len(s) == 1 {
		return q
	}
	if s != "" {
		log.Warn("Unknown output quotation mark, using double quotes.", "value", s)
	}
	return text.DoubleQuote
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Commands.GlobalFlags = []string{cmd.FlagGUI.Name()}
	c.Commands.FlagsFile = "flags.toml"
	c.Commands.PageSize = 8
	c.Quoted.Mode = "strict"
	c.Quoted.Quotes = "either"
	c.Quoted.OutputQuote = text.DoubleQuote.String()
	pc := parse.DefaultPercentageConfig()
	c.Percentage.AcceptFractional = pc.AcceptFractional
	c.Percentage.AcceptNegative = pc.AcceptNegative
	c.Percentage.AcceptZero = pc.AcceptZero
	c.Percentage.AcceptOmittedSign = pc.AcceptOmittedSign
	c.Console.Origin = "0 0 0"
	return c
}

// LoadUserConfig reads the UserConfig stored in the TOML file at path. Values
// missing from the file keep their defaults. If the file does not exist, it
// is created holding DefaultConfig.
func LoadUserConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return c, errors.New("config path must not be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read config: %w", err)
		}
		return c, writeUserConfig(path, c)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func writeUserConfig(path string, c UserConfig) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
