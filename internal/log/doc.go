// Package log provides leveled, structured logging for the arith command
// based on [log/slog].
//
// A process-wide default logger writes to standard error. [Config] replaces
// its configuration with functional options:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatJSON))
//	log.Debug("parsed", slog.Int("tokens", n))
//
// Each level has a context-aware variant, e.g. [DebugContext]. The
// context-unaware functions use [DefaultContextProvider].
package log
