package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/zephyrtronium/arith/internal/log"
)

type profileConfig struct {
	Mode string `default:"off" enum:"off,cpu,mem" help:"Write a profile of the run." name:"profile"`
	Dir  string `default:"."                      help:"Profile output directory."  name:"profile-dir" type:"path"`
}

func (profileConfig) group() kong.Group {
	return kong.Group{
		Key:   "profile",
		Title: "Profiling",
	}
}

// start starts profiling if configured. The returned function stops it.
func (f profileConfig) start(ctx context.Context) (stop func()) {
	var mode func(*profile.Profile)
	switch f.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return func() {}
	}

	log.DebugContext(ctx, "profile start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)
	p := profile.Start(mode, profile.ProfilePath(f.Dir), profile.Quiet, profile.NoShutdownHook)
	return func() {
		p.Stop()
		log.DebugContext(ctx, "profile stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
	}
}
