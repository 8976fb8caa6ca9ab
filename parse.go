package arith

import "strconv"

// Additive       = Multiplicative { ('+' | '-') Multiplicative }
// Multiplicative = Implicit { ('*' | '/' | '%') Implicit }
// Implicit       = Power { '(' Additive ')' }
// Power          = Factor { '^' Factor }
// Factor         = '(' Additive ')' | func Factor | '-' Factor | const | num
//
// Every binary level is left-associative, including '^'.

// Parse builds an expression tree from tokens. The given options are applied
// in order. Unless RequireEnd is given, tokens following a complete
// expression are ignored, so "1 2" parses as "1".
func Parse(tokens []Token, opts ...ParseOption) (*Expr, error) {
	p := parsectx{toks: tokens}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	e, err := p.additive()
	if err != nil {
		return nil, err
	}
	if p.end {
		if tok, ok := p.peek(); ok {
			return nil, &TrailingError{Index: p.pos, Token: tok}
		}
	}
	return e, nil
}

// ParseString scans and parses an expression.
func ParseString(text string, opts ...ParseOption) (*Expr, error) {
	toks, err := Scan(text)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

// MustParse is like ParseString but panics if the expression cannot be
// scanned or parsed.
func MustParse(text string, opts ...ParseOption) *Expr {
	e, err := ParseString(text, opts...)
	if err != nil {
		panic("arith: MustParse(" + strconv.Quote(text) + "): " + err.Error())
	}
	return e
}

// peek returns the next token without consuming it.
func (p *parsectx) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

// next consumes and returns the next token.
func (p *parsectx) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parsectx) additive() (*Expr, error) {
	e, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !tok.is(OpAdd) && !tok.is(OpSub) {
			return e, nil
		}
		p.pos++
		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		e = Binary(tok.Operator, e, rhs)
	}
}

func (p *parsectx) multiplicative() (*Expr, error) {
	e, err := p.implicit()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !tok.is(OpMul) && !tok.is(OpDiv) && !tok.is(OpMod) {
			return e, nil
		}
		p.pos++
		rhs, err := p.implicit()
		if err != nil {
			return nil, err
		}
		e = Binary(tok.Operator, e, rhs)
	}
}

// implicit parses a power term followed by any number of parenthesized
// groups, each of which multiplies it: a(b)(c) -> (a*b)*c.
func (p *parsectx) implicit() (*Expr, error) {
	e, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !tok.isDelim(Open) {
			return e, nil
		}
		leave, err := p.enter()
		if err != nil {
			return nil, err
		}
		p.pos++
		rhs, err := p.group()
		leave()
		if err != nil {
			return nil, err
		}
		e = Binary(OpMul, e, rhs)
	}
}

func (p *parsectx) power() (*Expr, error) {
	e, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !tok.is(OpPow) {
			return e, nil
		}
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		e = Binary(OpPow, e, rhs)
	}
}

// enter descends one level of nesting. It fails if that exceeds the maximum
// depth. Otherwise, the caller must call leave when it is done with the level.
func (p *parsectx) enter() (leave func(), err error) {
	if p.max <= 0 {
		return func() {}, nil
	}
	if p.depth >= p.max {
		return nil, &DepthError{Index: p.pos, Max: p.max}
	}
	p.depth++
	return func() { p.depth-- }, nil
}

// factor parses a single number, constant, parenthesized group, negation, or
// function application. Functions and negation take a single factor, so
// "sin x^2" is "(sin x)^2" and "-2^2" is "(-2)^2".
func (p *parsectx) factor() (*Expr, error) {
	leave, err := p.enter()
	if err != nil {
		return nil, err
	}
	defer leave()
	k := p.pos
	tok, ok := p.next()
	if !ok {
		return nil, &FactorError{Index: k}
	}
	switch tok.Kind {
	case TokenDelimiter:
		if tok.Delimiter != Open {
			break
		}
		return p.group()
	case TokenFunction:
		if !tok.Function.valid() {
			break
		}
		arg, err := p.factor()
		if err != nil {
			return nil, err
		}
		return Call(tok.Function, arg), nil
	case TokenOperator:
		if tok.Operator != OpSub {
			break
		}
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		return Neg(x), nil
	case TokenConstant:
		if !tok.Constant.valid() {
			break
		}
		return Literal(tok.Constant.Value()), nil
	case TokenNumber:
		return Literal(tok.Number), nil
	}
	return nil, &FactorError{Index: k, Token: &tok}
}

// group parses the contents of a parenthesized expression after its opening
// parenthesis, through the closing one.
func (p *parsectx) group() (*Expr, error) {
	e, err := p.additive()
	if err != nil {
		return nil, err
	}
	k := p.pos
	tok, ok := p.next()
	if !ok {
		return nil, &ParenError{Index: k}
	}
	if !tok.isDelim(Close) {
		return nil, &ParenError{Index: k, Found: &tok}
	}
	return e, nil
}
