package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/log"
)

// Tokens prints the tokens of an expression, one per line.
type Tokens struct {
	Expr string `arg:"" help:"Expression to scan." name:"expr"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context, s *Streams) error {
	toks, err := arith.Scan(t.Expr)
	if err != nil {
		diagnose(s.Err, t.Expr, err)
		return errors.Wrap(err, "scan")
	}
	log.DebugContext(ctx, "scanned", slog.Int("tokens", len(toks)))
	for _, tok := range toks {
		fmt.Fprintln(s.Out, tok)
	}
	return nil
}
