package cmd

import (
	"io"
	"log/slog"
)

// Logger is the sink that soft parse failures, such as out of range argument
// indices or unknown flags, are reported to. *slog.Logger implements Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// discard is used when a nil Logger is passed.
var discard Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func orDiscard(log Logger) Logger {
	if log == nil {
		return discard
	}
	return log
}
