package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, v bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return v }
	t.Cleanup(func() { isTerminal = orig })
}

func TestGetSimpleText(t *testing.T) {
	stubTerminal(t, true)
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  hello \n")), "Say hi", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Say hi")
}

func TestGetSimpleText_NoPromptWhenPiped(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("value\n")), "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Empty(t, out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("no newline")), "", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer

	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "", &out)
	assert.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	stubTerminal(t, false)
	var out bytes.Buffer

	got, err := GetMultiline(bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n")), "Notes", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestConfirm(t *testing.T) {
	stubTerminal(t, false)

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
		{"", false}, // EOF counts as no
	}
	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.input)+"_input", func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(bufio.NewReader(strings.NewReader(tc.input)), "Sure?", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
