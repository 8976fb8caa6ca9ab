package arith

import (
	"math"
	"strconv"
)

// keywords maps lowercased identifiers to their tokens.
var keywords = map[string]Token{
	"e":    ConstantToken(E),
	"pi":   ConstantToken(Pi),
	"sqrt": FunctionToken(Sqrt),
	"sin":  FunctionToken(Sin),
	"cos":  FunctionToken(Cos),
	"tan":  FunctionToken(Tan),
	"log":  FunctionToken(Log),
	"ln":   FunctionToken(Ln),
	"lg":   FunctionToken(Lg),
}

// Keywords returns the identifiers the lexer recognizes, in a fixed order.
func Keywords() []string {
	return []string{"e", "pi", "sqrt", "sin", "cos", "tan", "log", "ln", "lg"}
}

var funcnames = [...]string{
	Sqrt: "sqrt",
	Sin:  "sin",
	Cos:  "cos",
	Tan:  "tan",
	Log:  "log",
	Ln:   "ln",
	Lg:   "lg",
}

var funcimpls = [...]func(float64) float64{
	Sqrt: math.Sqrt,
	Sin:  math.Sin,
	Cos:  math.Cos,
	Tan:  math.Tan,
	Log:  math.Log10,
	Ln:   math.Log,
	Lg:   math.Log2,
}

func (fn Function) valid() bool {
	return fn > fnNone && int(fn) < len(funcnames)
}

// String returns the keyword that names fn.
func (fn Function) String() string {
	if !fn.valid() {
		return "Function(" + strconv.Itoa(int(fn)) + ")"
	}
	return funcnames[fn]
}

// Call applies fn to x.
func (fn Function) Call(x float64) float64 {
	if !fn.valid() {
		panic("arith: call of invalid function " + fn.String())
	}
	return funcimpls[fn](x)
}

func (c Constant) valid() bool {
	return c == Pi || c == E
}

// Value returns the numeric value of c.
func (c Constant) Value() float64 {
	switch c {
	case Pi:
		return math.Pi
	case E:
		return math.E
	default:
		panic("arith: invalid constant " + c.String())
	}
}
