package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	calls []string
	fail  map[string]error
}

func (s *stubExec) record(name string, args ...string) error {
	call := name
	if len(args) > 0 {
		call += " " + strings.Join(args, " ")
	}
	s.calls = append(s.calls, call)
	if err, ok := s.fail[name]; ok {
		return err
	}
	return nil
}

func (s *stubExec) Draw(ctx context.Context) error            { return s.record("draw") }
func (s *stubExec) History(ctx context.Context) error         { return s.record("history") }
func (s *stubExec) Show(ctx context.Context, id string) error { return s.record("show", id) }
func (s *stubExec) Add(ctx context.Context) error             { return s.record("add") }
func (s *stubExec) Note(ctx context.Context, id string) error { return s.record("note", id) }
func (s *stubExec) Delete(ctx context.Context, id string) error {
	return s.record("delete", id)
}
func (s *stubExec) Tags(ctx context.Context) error { return s.record("tags") }
func (s *stubExec) AddTag(ctx context.Context, category, tag string) error {
	return s.record("addtag", category, tag)
}
func (s *stubExec) RemoveTag(ctx context.Context, category, tag string) error {
	return s.record("rmtag", category, tag)
}
func (s *stubExec) Prefs(ctx context.Context) error { return s.record("prefs") }
func (s *stubExec) SetPref(ctx context.Context, key, value string) error {
	return s.record("set", key, value)
}
func (s *stubExec) Export(ctx context.Context, path string) error {
	return s.record("export", path)
}
func (s *stubExec) Import(ctx context.Context, path string) error {
	return s.record("import", path)
}
func (s *stubExec) Reset(ctx context.Context) error { return s.record("reset") }
func (s *stubExec) Info(ctx context.Context) error  { return s.record("info") }

// captureOutput swaps printlnFn for a recorder for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWithInput(t *testing.T, stub *stubExec, input string) {
	t.Helper()
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader(input)))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, strings.Join([]string{
		"draw",
		"history",
		"show reading_1",
		"note reading_1",
		"delete reading_1",
		"tags",
		"addtag emotions calm",
		"rmtag emotions calm",
		"prefs",
		"set theme dawn",
		"export backup.json",
		"import backup.json",
		"reset",
		"info",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"draw",
		"history",
		"show reading_1",
		"note reading_1",
		"delete reading_1",
		"tags",
		"addtag emotions calm",
		"rmtag emotions calm",
		"prefs",
		"set theme dawn",
		"export backup.json",
		"import backup.json",
		"reset",
		"info",
	}, stub.calls)
}

func TestRunREPL_ExitAndEOF(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "quit\ndraw\n")
	assert.Empty(t, stub.calls, "commands after quit are not executed")
	assert.Contains(t, *out, "Bye!")

	// EOF without exit also terminates
	stub2 := &stubExec{}
	runWithInput(t, stub2, "draw\n")
	assert.Equal(t, []string{"draw"}, stub2.calls)
}

func TestRunREPL_UsageForMissingArgs(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "show\nset theme\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, *out, "Usage: show <id>")
	assert.Contains(t, *out, "Usage: set <key> <value>")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	runWithInput(t, &stubExec{}, "abracadabra\nexit\n")
	assert.Contains(t, *out, "Unknown command: abracadabra")
}

func TestRunREPL_HandlerErrorKeepsLoopAlive(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{fail: map[string]error{"draw": errors.New("boom")}}

	runWithInput(t, stub, "draw\nhistory\nexit\n")

	assert.Equal(t, []string{"draw", "history"}, stub.calls)
	assert.Contains(t, *out, "Error: boom")
}

func TestRunREPL_EmptyLinesAndExportWithoutPath(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "\n\nexport\nexit\n")
	assert.Equal(t, []string{"export "}, stub.calls)
}
