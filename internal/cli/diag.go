package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"

	"github.com/zephyrtronium/arith"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
	hintColor  = color.New(color.FgCyan)
)

// diagnose writes a description of err, which resulted from evaluating src,
// to w. Errors with a column get the source line and a caret under the
// offending character.
func diagnose(w io.Writer, src string, err error) {
	errorColor.Fprint(w, "error")
	fmt.Fprintf(w, ": %v\n", err)

	var ie arith.InputError
	if !errors.As(err, &ie) {
		return
	}
	fmt.Fprintf(w, "  %s\n  %s", src, caretPad(src, ie.Pos()))
	caretColor.Fprintln(w, "^")

	var id *arith.IdentifierError
	if errors.As(err, &id) {
		if kw := suggest(id.Text); kw != "" {
			hintColor.Fprintf(w, "  did you mean %q?\n", kw)
		}
	}
}

// caretPad returns the padding that places a caret under column col of src,
// counting columns from 1. Tabs are kept so the caret follows the terminal's
// tab stops.
func caretPad(src string, col int) string {
	var b strings.Builder
	for i, r := range []rune(src) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

// suggest returns the keyword closest to an unknown identifier, or the empty
// string if none is close. A keyword that word abbreviates wins, e.g. "sqt"
// for "sqrt". Otherwise the longest keyword that word spells out is used,
// e.g. "sin" for "sine".
func suggest(word string) string {
	word = strings.ToLower(word)
	keywords := arith.Keywords()
	if m := fuzzy.Find(word, keywords); len(m) > 0 {
		return m[0].Str
	}
	var best string
	for _, kw := range keywords {
		// Single letters are contained in too many words to be a useful hint.
		if len(kw) < 2 || len(kw) <= len(best) {
			continue
		}
		if len(fuzzy.Find(kw, []string{word})) > 0 {
			best = kw
		}
	}
	return best
}
