package arith

import (
	"strconv"
	"strings"
)

// Expr is a node in the abstract syntax tree of an expression. Each node
// exclusively owns its children.
type Expr struct {
	Kind ExprKind
	// Op is the operator of an ExprBinary.
	Op Operator
	// Func is the function of an ExprCall.
	Func Function
	// Value is the value of an ExprLiteral.
	Value float64

	// Left is the left operand of an ExprBinary, or the operand of an
	// ExprNeg or ExprCall.
	Left *Expr
	// Right is the right operand of an ExprBinary.
	Right *Expr
}

// ExprKind identifies the variant of an Expr.
type ExprKind int8

const (
	exprNone ExprKind = iota

	ExprLiteral // Value
	ExprNeg     // -Left
	ExprCall    // Func(Left)
	ExprBinary  // Left Op Right
)

//go:generate go tool stringer -type=ExprKind -trimprefix=Expr

// Literal creates a number node.
func Literal(v float64) *Expr {
	return &Expr{Kind: ExprLiteral, Value: v}
}

// Neg creates a negation of x.
func Neg(x *Expr) *Expr {
	return &Expr{Kind: ExprNeg, Left: x}
}

// Call creates an application of fn to x.
func Call(fn Function, x *Expr) *Expr {
	return &Expr{Kind: ExprCall, Func: fn, Left: x}
}

// Binary creates a binary operation.
func Binary(op Operator, l, r *Expr) *Expr {
	return &Expr{Kind: ExprBinary, Op: op, Left: l, Right: r}
}

// Render formats an expression with every operation parenthesized, e.g.
// "((1+2)*(-3))". Function calls are followed by a space: "sin(1) ".
func Render(e *Expr) string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

// String is the same as Render(e).
func (e *Expr) String() string {
	return Render(e)
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.Kind {
	case ExprLiteral:
		b.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
	case ExprNeg:
		b.WriteString("(-")
		e.Left.fmt(b)
		b.WriteByte(')')
	case ExprCall:
		b.WriteString(e.Func.String())
		b.WriteByte('(')
		e.Left.fmt(b)
		b.WriteString(") ")
	case ExprBinary:
		b.WriteByte('(')
		e.Left.fmt(b)
		b.WriteByte(byte(e.Op))
		e.Right.fmt(b)
		b.WriteByte(')')
	default:
		panic("arith: invalid node kind " + e.Kind.String() + " after writing " + b.String())
	}
}
