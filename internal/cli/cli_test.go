package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line with an empty configuration directory.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return runIn(t, stdin, args...)
}

func runIn(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true
	var out, errs bytes.Buffer
	s := &Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errs,
	}
	err = Run(context.Background(), func(code int) { t.Errorf("exit(%d)", code) }, s, args...)
	return out.String(), errs.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, _, err := run(t, "", "1+2*3", "2(3)", "2^3^2")
	require.NoError(t, err)
	assert.Equal(t, "7\n6\n64\n", out)
}

func TestEvalFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"fmt", []string{"eval", "--fmt", "%.2f", "pi"}, "3.14\n"},
		{"echo", []string{"eval", "--echo", "1+2*3"}, "(1+(2*3)) : 7\n"},
		{"echo-call", []string{"eval", "--echo", "sin 0"}, "sin(0)  : 0\n"},
		{"neg", []string{"eval", "--", "-2^2"}, "4\n"},
		{"trailing", []string{"eval", "3 4"}, "3\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, _, err := run(t, "", c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestEvalStdin(t *testing.T) {
	out, _, err := run(t, "1+1\n\n# powers\n2^10\n  sqrt 16  \n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "2\n1024\n4\n", out)
}

func TestEvalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("6/2(3)\n7%4\n"), 0o644))
	out, _, err := run(t, "ignored\n", "eval", "--in", path)
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n", out)

	_, _, err = run(t, "", "eval", "--in", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEvalJobs(t *testing.T) {
	var in, want strings.Builder
	for i := range 50 {
		in.WriteString(strings.Repeat("1+", i) + "0\n")
		want.WriteString(strconv.Itoa(i) + "\n")
	}
	out, _, err := run(t, in.String(), "eval", "-j", "8")
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestEvalJobsPositive(t *testing.T) {
	out, errs, err := run(t, "", "eval", "-j", "0", "1+1")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
	assert.Contains(t, errs, "jobs must be positive")
}

func TestEvalFailures(t *testing.T) {
	out, errs, err := run(t, "", "1+@", "2", "(1")
	assert.EqualError(t, err, "2 of 3 expressions failed")
	assert.Equal(t, "2\n", out)
	assert.Contains(t, errs, "error: scan: 3: invalid character '@'\n  1+@\n    ^\n")
	assert.Contains(t, errs, "error: parse: token 2: open parenthesis with no close parenthesis\n")
}

func TestEvalStrict(t *testing.T) {
	_, errs, err := run(t, "", "eval", "--strict", "1 2")
	assert.Error(t, err)
	assert.Contains(t, errs, "parse: ")

	_, _, err = run(t, "", "eval", "--max-depth", "2", "((1))")
	assert.Error(t, err)
	_, _, err = run(t, "", "eval", "--max-depth", "3", "((1))")
	assert.NoError(t, err)
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "", "tokens", "2(pi)+√x")
	require.Error(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "", "tokens", "2(pi)")
	require.NoError(t, err)
	assert.Equal(t, "Number:2\nDelimiter:(\nConstant:pi\nDelimiter:)\n", out)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.yaml")
	cfg := "fmt: '%.3f'\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	out, errs, err := run(t, "", "--config", path, "eval", "pi")
	require.NoError(t, err)
	assert.Equal(t, "3.142\n", out)
	assert.Contains(t, errs, "msg=evaluated src=pi tree=3.141592653589793")
	assert.Contains(t, errs, `msg="eval done" exprs=1 failed=0`)

	out, _, err = run(t, "", "--config", path, "eval", "--fmt", "%.1f", "pi")
	require.NoError(t, err)
	assert.Equal(t, "3.1\n", out)
}

func TestConfigDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "arith"), 0o755))
	cfg := filepath.Join(home, "arith", "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("echo: true\n"), 0o644))
	out, _, err := runIn(t, "", "eval", "2*3")
	require.NoError(t, err)
	assert.Equal(t, "(2*3) : 6\n", out)

	require.NoError(t, os.WriteFile(cfg, nil, 0o644))
	out, _, err = runIn(t, "", "eval", "2*3")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	require.NoError(t, os.WriteFile(cfg, []byte("echo: [\n"), 0o644))
	_, _, err = runIn(t, "", "eval", "2*3")
	assert.Error(t, err)
}
