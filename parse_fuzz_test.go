package arith_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("2(3)(4")
	f.Add("sin cos √π")
	f.Add("--5^e%")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := arith.Scan(s)
		if err != nil {
			if _, ok := err.(arith.InputError); !ok {
				t.Errorf("scan error %v does not implement InputError", err)
			}
			return
		}
		e, err := arith.Parse(toks)
		if err != nil {
			return
		}
		// The rendered form must parse back, except that infinities from
		// overlong numerals render as words.
		if strings.Contains(e.String(), "Inf") {
			return
		}
		if _, err := arith.ParseString(e.String(), arith.RequireEnd()); err != nil {
			t.Errorf("%q renders as %q which does not parse: %v", s, e.String(), err)
		}
	})
}
