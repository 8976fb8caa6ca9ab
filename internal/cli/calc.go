package cli

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/log"
)

// parseConfig holds the parsing flags shared by commands that evaluate.
type parseConfig struct {
	Strict   bool `help:"Reject anything following a complete expression."`
	MaxDepth int  `default:"0" help:"Maximum nesting of groups, negations, and function calls (0 for no limit)." name:"max-depth"`
}

func (p parseConfig) options() []arith.ParseOption {
	var opts []arith.ParseOption
	if p.Strict {
		opts = append(opts, arith.RequireEnd())
	}
	if p.MaxDepth > 0 {
		opts = append(opts, arith.MaxDepth(p.MaxDepth))
	}
	return opts
}

// outcome is the result of running one expression through the pipeline.
type outcome struct {
	src   string
	value float64
	// tree is the rendered expression. It is empty if err is not nil.
	tree string
	err  error
}

// evaluate scans, parses, and evaluates src. Errors are wrapped with the
// stage that produced them.
func (p parseConfig) evaluate(ctx context.Context, src string) outcome {
	r := outcome{src: src}
	l := log.Default().With(slog.String("src", src))
	toks, err := arith.Scan(src)
	if err != nil {
		r.err = errors.Wrap(err, "scan")
		return r
	}
	l.TraceContext(ctx, "scanned", slog.Int("tokens", len(toks)))
	e, err := arith.Parse(toks, p.options()...)
	if err != nil {
		r.err = errors.Wrap(err, "parse")
		return r
	}
	r.tree = arith.Render(e)
	r.value = arith.Evaluate(e)
	l.DebugContext(ctx, "evaluated",
		slog.String("tree", r.tree),
		slog.Float64("value", r.value),
	)
	return r
}
