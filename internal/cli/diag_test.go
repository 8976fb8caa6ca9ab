package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/arith"
)

func TestCaretPad(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		want string
	}{
		{"first", "@", 1, ""},
		{"ascii", "1+@", 3, "  "},
		{"wide", "汉字x", 3, "    "},
		{"tab", "\t1+@", 4, "\t  "},
		{"past-end", "1", 5, " "},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, caretPad(c.src, c.col))
		})
	}
}

func TestSuggest(t *testing.T) {
	cases := map[string]string{
		"sine":      "sin",
		"SINE":      "sin",
		"sqt":       "sqrt",
		"co":        "cos",
		"tangent":   "tan",
		"logarithm": "log",
		"x":         "",
		"foo":       "",
	}
	for word, want := range cases {
		assert.Equal(t, want, suggest(word), word)
	}
}

func TestDiagnose(t *testing.T) {
	color.NoColor = true
	cases := []struct {
		name string
		src  string
		err  error
		want string
	}{
		{
			name: "char",
			src:  "1+@",
			err:  &arith.CharacterError{Col: 3, Char: '@'},
			want: "error: 3: invalid character '@'\n  1+@\n    ^\n",
		},
		{
			name: "ident",
			src:  "2 sine 1",
			err:  errors.Wrap(&arith.IdentifierError{Col: 3, Text: "sine"}, "scan"),
			want: "error: scan: 3: unknown identifier \"sine\"\n  2 sine 1\n    ^\n  did you mean \"sin\"?\n",
		},
		{
			name: "parse",
			src:  "(1",
			err:  &arith.ParenError{Index: 2},
			want: "error: token 2: open parenthesis with no close parenthesis\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			diagnose(&b, c.src, c.err)
			assert.Equal(t, c.want, b.String())
		})
	}
}
