package arith

import "strconv"

// Token is a lexical unit of an expression. Kind selects which of the other
// fields is meaningful.
type Token struct {
	Kind      TokenKind
	Number    float64
	Operator  Operator
	Delimiter Delimiter
	Function  Function
	Constant  Constant
}

// TokenKind identifies the variant of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenConstant is a named constant, pi or e.
	TokenConstant
	// TokenOperator is one of + - * / % ^.
	TokenOperator
	// TokenDelimiter is an open or close parenthesis.
	TokenDelimiter
	// TokenFunction is a named function.
	TokenFunction
)

//go:generate go tool stringer -type=TokenKind -trimprefix=Token

// Operator is a binary or unary arithmetic operator.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpMod Operator = '%'
	OpPow Operator = '^'
)

// Operators contains the runes which are lexed as operators.
const Operators = "+-*/%^"

func (op Operator) String() string {
	return string(rune(op))
}

// Delimiter is a grouping rune.
type Delimiter byte

const (
	Open  Delimiter = '('
	Close Delimiter = ')'
)

func (d Delimiter) String() string {
	return string(rune(d))
}

// Function is a named function of one argument.
type Function int8

const (
	fnNone Function = iota
	Sqrt
	Sin
	Cos
	Tan
	// Log is the base 10 logarithm.
	Log
	// Ln is the natural logarithm.
	Ln
	// Lg is the base 2 logarithm.
	Lg
)

// Constant is a named mathematical constant.
type Constant int8

const (
	constNone Constant = iota
	Pi
	E
)

func (c Constant) String() string {
	switch c {
	case Pi:
		return "pi"
	case E:
		return "e"
	default:
		return "Constant(" + strconv.Itoa(int(c)) + ")"
	}
}

// NumberToken creates a number token.
func NumberToken(v float64) Token {
	return Token{Kind: TokenNumber, Number: v}
}

// ConstantToken creates a constant token.
func ConstantToken(c Constant) Token {
	return Token{Kind: TokenConstant, Constant: c}
}

// OperatorToken creates an operator token.
func OperatorToken(op Operator) Token {
	return Token{Kind: TokenOperator, Operator: op}
}

// DelimiterToken creates a parenthesis token.
func DelimiterToken(d Delimiter) Token {
	return Token{Kind: TokenDelimiter, Delimiter: d}
}

// FunctionToken creates a function token.
func FunctionToken(fn Function) Token {
	return Token{Kind: TokenFunction, Function: fn}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return t.Kind.String() + ":" + strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenConstant:
		return t.Kind.String() + ":" + t.Constant.String()
	case TokenOperator:
		return t.Kind.String() + ":" + t.Operator.String()
	case TokenDelimiter:
		return t.Kind.String() + ":" + t.Delimiter.String()
	case TokenFunction:
		return t.Kind.String() + ":" + t.Function.String()
	default:
		return t.Kind.String()
	}
}

// is reports whether t is the operator op.
func (t Token) is(op Operator) bool {
	return t.Kind == TokenOperator && t.Operator == op
}

// isDelim reports whether t is the delimiter d.
func (t Token) isDelim(d Delimiter) bool {
	return t.Kind == TokenDelimiter && t.Delimiter == d
}
