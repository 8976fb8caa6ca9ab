// Package arith implements a double-precision calculator for expressions like
// "2(3 + sin(pi/6))".
//
// Evaluation is a three stage pipeline. Scan converts text into Tokens, Parse
// builds an Expr tree from the tokens, and Evaluate computes its value.
// Render, or Expr.String, writes the tree back out with every operation
// parenthesized.
//
// The grammar recognizes + - * / % ^, parentheses, unary minus, the functions
// sqrt (or √), sin, cos, tan, log (base 10), ln (base e), and lg (base 2),
// and the constants pi (or π) and e. Names are case-insensitive. A term
// followed by a parenthesized group is a multiplication, so "2(3)" is 6.
// Functions and unary minus apply to a single factor: "sin cos 0" is
// sin(cos(0)), and "sqrt 4^2" is (sqrt 4)^2. Note that ^ groups to the left,
// so "2^3^2" is 64.
//
// Unless parsing with RequireEnd, anything following a complete expression is
// ignored: "1 2" evaluates to 1.
package arith
