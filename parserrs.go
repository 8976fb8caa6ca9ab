package arith

import "strconv"

// ParenError is an error indicating a group with no closing parenthesis.
type ParenError struct {
	// Index is the token index where a close parenthesis was expected.
	Index int
	// Found is the token found instead, or nil at the end of input.
	Found *Token
}

func (err *ParenError) Error() string {
	if err.Found == nil {
		return "token " + strconv.Itoa(err.Index) + ": open parenthesis with no close parenthesis"
	}
	return "token " + strconv.Itoa(err.Index) + ": expected close parenthesis, found " + err.Found.String()
}

// FactorError is an error indicating a token that cannot start a term, or an
// input that ends where a term is expected.
type FactorError struct {
	// Index is the index of the offending token.
	Index int
	// Token is the offending token, or nil at the end of input.
	Token *Token
}

func (err *FactorError) Error() string {
	if err.Token == nil {
		return "token " + strconv.Itoa(err.Index) + ": unexpected end of expression"
	}
	return "token " + strconv.Itoa(err.Index) + ": unexpected " + err.Token.String()
}

// TrailingError is an error indicating tokens after a complete expression.
// It is only returned when parsing with RequireEnd.
type TrailingError struct {
	// Index is the index of the first unconsumed token.
	Index int
	// Token is the first unconsumed token.
	Token Token
}

func (err *TrailingError) Error() string {
	return "token " + strconv.Itoa(err.Index) + ": unexpected " + err.Token.String() + " after expression"
}

// DepthError is an error indicating an expression nested more deeply than
// allowed by MaxDepth.
type DepthError struct {
	// Index is the index of the token that would exceed the limit.
	Index int
	// Max is the depth limit.
	Max int
}

func (err *DepthError) Error() string {
	return "token " + strconv.Itoa(err.Index) + ": expression nested deeper than " + strconv.Itoa(err.Max)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid characters in the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharacterError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*IdentifierError)(nil)
)
