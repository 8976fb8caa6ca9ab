package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/arith/internal/log"
)

// Eval evaluates expressions given as arguments or read line by line.
type Eval struct {
	Parse parseConfig `embed:""`

	Exprs []string `arg:"" help:"Expressions to evaluate." name:"expr" optional:""`
	In    string   `help:"Read expressions from a file, one per line, or '-' for stdin." placeholder:"FILE" short:"i"`
	Fmt   string   `default:"%v" help:"Format verb for results."`
	Echo  bool     `help:"Print each expression fully parenthesized before its result."`
	Jobs  int      `default:"1" help:"Number of expressions to evaluate concurrently." short:"j"`
}

// Run executes the eval command. With no expressions and no input file, a
// terminal on stdin starts an interactive session instead.
func (e *Eval) Run(ctx context.Context, s *Streams) error {
	srcs := e.Exprs
	if len(srcs) == 0 {
		if e.In == "" && s.TTY {
			return runREPL(ctx, s, e.Parse, e.Fmt)
		}
		var err error
		srcs, err = readLines(s.In, e.In)
		if err != nil {
			return err
		}
	}

	jobs := e.Jobs
	if jobs < 1 {
		log.WarnContext(ctx, "jobs must be positive, using 1", slog.Int("jobs", jobs))
		jobs = 1
	}
	log.DebugContext(ctx, "eval start",
		slog.Int("exprs", len(srcs)),
		slog.Int("jobs", jobs),
	)
	results := make([]outcome, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, src := range srcs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Parse.evaluate(gctx, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "eval")
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			diagnose(s.Err, r.src, r.err)
			continue
		}
		if e.Echo {
			fmt.Fprintf(s.Out, "%s : ", r.tree)
		}
		fmt.Fprintf(s.Out, e.Fmt+"\n", r.value)
	}
	log.InfoContext(ctx, "eval done",
		slog.Int("exprs", len(results)),
		slog.Int("failed", failed),
	)
	if failed > 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}

// readLines reads expressions from the named file, or from stdin if path is
// empty or "-". Blank lines and lines starting with '#' are skipped.
func readLines(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Wrap(sc.Err(), "read input")
}
