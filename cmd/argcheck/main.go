package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/df-mc/pluginapi/server"
	"github.com/df-mc/pluginapi/server/console"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Config string   `short:"c" long:"config" default:"config.toml" description:"Path of the TOML configuration file, created if missing"`
	Debug  bool     `long:"debug" description:"Log parse diagnostics at debug level"`
	Exec   []string `short:"e" long:"exec" description:"Inspect a command line and exit instead of reading standard input"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = heredoc.Doc(`
		argcheck reads command lines and reports how their arguments are parsed:
		quoted strings spanning several arguments, flags such as --gui and -g,
		percentages, durations, clock times and positions.

		Type "help [page]" to list the commands with registered flags.
	`)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	uc, err := server.LoadUserConfig(opts.Config)
	if err != nil {
		log.Error("Could not load config.", "path", opts.Config, "err", err)
		os.Exit(1)
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("Invalid config.", "path", opts.Config, "err", err)
		os.Exit(1)
	}

	c := console.New(conf)
	if len(opts.Exec) != 0 {
		c = c.WithReader(strings.NewReader(strings.Join(opts.Exec, "\n")))
	} else {
		fmt.Fprintln(os.Stderr, "Reading command lines from standard input.")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	c.Run(ctx)
}
