package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	fold cases.Caser
	// col is the number of runes consumed from src.
	col int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		fold: cases.Lower(language.Und),
	}
}

// Scan converts an expression into its tokens. Scanning stops at the first
// invalid character, number, or identifier.
func Scan(text string) ([]Token, error) {
	return ScanReader(strings.NewReader(text))
}

// ScanReader is like Scan but reads the expression from src until EOF.
func ScanReader(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '√':
			return FunctionToken(Sqrt), nil
		case r == 'π':
			return ConstantToken(Pi), nil
		case r == '(':
			return DelimiterToken(Open), nil
		case r == ')':
			return DelimiterToken(Close), nil
		case strings.ContainsRune(Operators, r):
			return OperatorToken(Operator(r)), nil
		case isdigit(r), r == '.':
			l.unreadRune()
			return l.scanNum()
		case unicode.IsLetter(r):
			l.unreadRune()
			return l.scanIdent()
		default:
			return Token{}, &CharacterError{Col: l.col, Char: r}
		}
	}
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scanNum scans a maximal run of digits and dots.
func (l *lexer) scanNum() (Token, error) {
	col := l.col + 1
	if err := l.scanWhile(func(r rune) bool { return isdigit(r) || r == '.' }); err != nil {
		return Token{}, err
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// A long enough run of digits overflows, but it is still a numeral.
		if !errors.Is(err, strconv.ErrRange) {
			return Token{}, &NumberError{Col: col, Text: text, Err: err}
		}
	}
	return NumberToken(v), nil
}

// scanIdent scans a maximal run of letters and looks it up as a keyword.
func (l *lexer) scanIdent() (Token, error) {
	col := l.col + 1
	if err := l.scanWhile(unicode.IsLetter); err != nil {
		return Token{}, err
	}
	text := l.buf.String()
	tok, ok := keywords[l.fold.String(text)]
	if !ok {
		return Token{}, &IdentifierError{Col: col, Text: text}
	}
	return tok, nil
}

// scanWhile writes runes to the buffer as long as they satisfy ok.
func (l *lexer) scanWhile(ok func(rune) bool) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides scanning, so we have
				// scanned at least one rune.
				return nil
			}
			return err
		}
		if !ok(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// CharacterError indicates a rune that cannot begin any token. It implements
// InputError.
type CharacterError struct {
	// Col is the 1-based rune position of Char.
	Col int
	// Char is the invalid rune.
	Char rune
}

func (err *CharacterError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharacterError) Pos() int {
	return err.Col
}

// NumberError indicates a run of digits and dots that is not a number, e.g.
// "1.2.3". It implements InputError.
type NumberError struct {
	// Col is the 1-based rune position of the start of the number.
	Col int
	// Text is the run of digits and dots.
	Text string
	// Err is the error from parsing Text.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// IdentifierError indicates a run of letters that is not a known function or
// constant name. It implements InputError.
type IdentifierError struct {
	// Col is the 1-based rune position of the start of the identifier.
	Col int
	// Text is the identifier as written.
	Text string
}

func (err *IdentifierError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Text))
}

func (err *IdentifierError) Pos() int {
	return err.Col
}
