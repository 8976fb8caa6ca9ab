package arith

import "math"

// Evaluate computes the value of an expression. Evaluation follows IEEE 754
// double precision rules: division by zero, out-of-domain function arguments,
// and the like produce infinities or NaN rather than errors.
func Evaluate(e *Expr) float64 {
	switch e.Kind {
	case ExprLiteral:
		return e.Value
	case ExprNeg:
		return -Evaluate(e.Left)
	case ExprCall:
		return e.Func.Call(Evaluate(e.Left))
	case ExprBinary:
		l, r := Evaluate(e.Left), Evaluate(e.Right)
		switch e.Op {
		case OpAdd:
			return l + r
		case OpSub:
			return l - r
		case OpMul:
			return l * r
		case OpDiv:
			return l / r
		case OpMod:
			return math.Mod(l, r)
		case OpPow:
			return math.Pow(l, r)
		}
		panic("arith: invalid binary operator " + e.Op.String())
	default:
		panic("arith: invalid AST node " + e.Kind.String())
	}
}

// Eval is the same as Evaluate(e).
func (e *Expr) Eval() float64 {
	return Evaluate(e)
}

// Eval is a shortcut to scan, parse, and evaluate an expression.
func Eval(text string, opts ...ParseOption) (float64, error) {
	e, err := ParseString(text, opts...)
	if err != nil {
		return 0, err
	}
	return Evaluate(e), nil
}
