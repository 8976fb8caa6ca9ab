// Command arith evaluates arithmetic expressions.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/zephyrtronium/arith/internal/cli"
	"github.com/zephyrtronium/arith/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := &cli.Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		TTY: term.IsTerminal(int(os.Stdin.Fd())),
	}
	err := cli.Run(ctx, os.Exit, s, os.Args[1:]...)
	if err != nil {
		log.ErrorContext(ctx, "run failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
