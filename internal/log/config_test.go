package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"info+2", LevelInfo + 2},
		{"loud", DefaultLevel},
		{"", DefaultLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseLevel(c.in), "ParseLevel(%q)", c.in)
	}
}

func TestLevelString(t *testing.T) {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		assert.Equal(t, l, ParseLevel(l.String()))
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(" JSON "))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, DefaultFormat, ParseFormat("xml"))
	assert.Equal(t, "json", FormatJSON.String())
}
