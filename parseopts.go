package arith

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	endopt   struct{}
	depthopt int
)

// parsectx holds the state of a parse.
type parsectx struct {
	// toks is the input and pos is the index of the next token to consume.
	toks []Token
	pos  int
	// depth is the current factor nesting depth, tracked only when max > 0.
	depth int
	max   int
	// end indicates that trailing tokens are an error.
	end bool
}

// RequireEnd tells the parser to reject tokens that follow a complete
// expression with a *TrailingError. Without it, "2 3" evaluates to 2.
func RequireEnd() ParseOption {
	return endopt{}
}

func (endopt) parseOption(p parsectx) parsectx {
	p.end = true
	return p
}

// MaxDepth limits the nesting of factors, i.e. parenthesized groups,
// negations, and function applications, to n. Deeper expressions fail with a
// *DepthError. Zero means no limit. Panics if n is negative.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		panic("arith: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.max = int(o)
	return p
}
