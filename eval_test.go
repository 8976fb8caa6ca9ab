package arith_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "12.3+12.0", 12.3 + 12.0},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"mod", "7%4", 3},
		{"mod-neg", "-7%4", -3},
		{"mod-frac", "5.5%2", 1.5},
		{"prec", "1+2*3", 7},
		{"paren", "(1+2)*3", 9},
		{"implicit", "2(3)", 6},
		{"implicit-chain", "(1+2)(3)", 9},
		{"pow", "2^3^2", 64},
		{"pow-frac", "4^0.5", 2},
		{"negneg", "--5", 5},
		{"neg-pow", "-2^2", 4},
		{"pi", "pi", math.Pi},
		{"trailing-pi", "2π", 2},
		{"e", "e", math.E},
		{"sqrt", "sqrt 16", 4},
		{"sqrt-glyph", "√(9+16)", 5},
		{"lg", "lg 8", 3},
		{"sin-cos", "sin cos 0", math.Sin(1)},
		{"trig", "sin(12.0) + 10.0 * 2.5 + ln7", math.Sin(12) + 10*2.5 + math.Log(7)},
		{"tan", "tan 0", 0},
		{"trailing", "3 4", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.Eval(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}
}

func TestEvalApprox(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"sin-pi-6", "sin(pi/6)", 0.5},
		{"cos-pi", "cos π", -1},
		{"sin-cos-0", "sin cos 0", 0.8414709848},
		{"pythag", "sin(1)^2 + cos(1)^2", 1},
		{"log", "log 1000", 3},
		{"log-case", "LOG(0.01)", -2},
		{"ln", "ln e", 1},
		{"lg", "lg(1/4)", -2},
		{"implicit-call", "2(3 + sin(pi/6))", 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.Eval(c.src, arith.RequireEnd())
			require.NoError(t, err)
			assert.InDelta(t, c.r, r, 1e-9)
		})
	}
}

func TestEvalIEEE(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		check func(float64) bool
	}{
		{"div-zero", "1/0", func(x float64) bool { return math.IsInf(x, 1) }},
		{"div-neg-zero", "-1/0", func(x float64) bool { return math.IsInf(x, -1) }},
		{"zero-zero", "0/0", math.IsNaN},
		{"mod-zero", "1%0", math.IsNaN},
		{"pow-neg", "0^-1", func(x float64) bool { return math.IsInf(x, 1) }},
		{"sqrt-neg", "sqrt -1", math.IsNaN},
		{"ln-zero", "ln 0", func(x float64) bool { return math.IsInf(x, -1) }},
		{"log-neg", "log -10", math.IsNaN},
		{"neg-zero", "-0", func(x float64) bool { return x == 0 && math.Signbit(x) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.Eval(c.src)
			require.NoError(t, err)
			assert.True(t, c.check(r), "%s = %v", c.src, r)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := arith.Eval("1+@")
	var ce *arith.CharacterError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, '@', ce.Char)

	_, err = arith.Eval("(1+2")
	var pe *arith.ParenError
	assert.ErrorAs(t, err, &pe)

	_, err = arith.Eval("1 2", arith.RequireEnd())
	var te *arith.TrailingError
	assert.ErrorAs(t, err, &te)
}

func TestEvaluateTree(t *testing.T) {
	e := arith.Binary(arith.OpAdd,
		arith.Literal(1),
		arith.Neg(arith.Call(arith.Sqrt, arith.Literal(9))),
	)
	assert.Equal(t, -2.0, arith.Evaluate(e))
	assert.Equal(t, -2.0, e.Eval())
}

func TestEvaluateConcurrent(t *testing.T) {
	e := arith.MustParse("sqrt(2)^2 + sin(pi/2)")
	want := arith.Evaluate(e)
	done := make(chan float64)
	for i := 0; i < 8; i++ {
		go func() {
			done <- arith.Evaluate(e)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
