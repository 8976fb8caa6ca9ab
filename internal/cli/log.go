package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/zephyrtronium/arith/internal/log"
)

// logLevel configures the default logger's level as a side effect of
// parsing, so that it applies to messages logged while flags are resolved.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))
	return nil
}

// logFormat is like logLevel for the log format.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))
	return nil
}

type logConfig struct {
	Level  logLevel  `default:"warn" enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format logFormat `default:"text" enum:"text,json"                   help:"Set log format."`
	Caller bool      `default:"false"                                  help:"Include caller information." negatable:""`
	Time   bool      `default:"false"                                  help:"Include timestamps."         negatable:""`
}

func (*logConfig) group() kong.Group {
	return kong.Group{
		Key:   "log",
		Title: "Logging options",
	}
}

// start applies the complete logging configuration to the default logger.
func (f *logConfig) start(ctx context.Context, w io.Writer) {
	log.Config(
		log.WithOutput(w),
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithCaller(f.Caller),
		log.WithTimestamps(f.Time),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.Bool("caller", f.Caller),
		slog.Bool("time", f.Time),
	)
}
