package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Draw(ctx context.Context) error
	History(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Note(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Tags(ctx context.Context) error
	AddTag(ctx context.Context, category, tag string) error
	RemoveTag(ctx context.Context, category, tag string) error
	Prefs(ctx context.Context) error
	SetPref(ctx context.Context, key, value string) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
	Reset(ctx context.Context) error
	Info(ctx context.Context) error
}

const helpText = `Available commands:
  draw                     show or draw today's card
  add                      perform and save a new reading
  history                  list saved readings
  show <id>                print one reading in full
  note <id>                attach notes to a reading
  delete <id>              delete a reading
  tags                     show the tag vocabulary
  addtag <category> <tag>  add a vocabulary tag
  rmtag <category> <tag>   remove a vocabulary tag
  prefs                    show preferences
  set <key> <value>        change a preference
  export [file]            export all data
  import <file>            import data, replacing everything
  reset                    reset all data to defaults
  info                     storage details
  exit | quit              leave`

// runREPL is a simple read-eval-print loop over the store. It reads one
// line per iteration, treats the first token as the command, and
// dispatches to methods on a. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop keeps
// going; a failed command should never take the session down.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("vesper> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "draw":
			err = a.Draw(ctx)

		case "add":
			err = a.Add(ctx)

		case "history", "list":
			err = a.History(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			err = a.Show(ctx, args[0])

		case "note":
			if len(args) != 1 {
				printlnFn("Usage: note <id>")
				continue
			}
			err = a.Note(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "tags":
			err = a.Tags(ctx)

		case "addtag":
			if len(args) != 2 {
				printlnFn("Usage: addtag <emotions|lifeAreas> <tag>")
				continue
			}
			err = a.AddTag(ctx, args[0], args[1])

		case "rmtag":
			if len(args) != 2 {
				printlnFn("Usage: rmtag <emotions|lifeAreas> <tag>")
				continue
			}
			err = a.RemoveTag(ctx, args[0], args[1])

		case "prefs":
			err = a.Prefs(ctx)

		case "set":
			if len(args) != 2 {
				printlnFn("Usage: set <key> <value>")
				continue
			}
			err = a.SetPref(ctx, args[0], args[1])

		case "export":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			err = a.Export(ctx, path)

		case "import":
			if len(args) != 1 {
				printlnFn("Usage: import <file>")
				continue
			}
			err = a.Import(ctx, args[0])

		case "reset":
			err = a.Reset(ctx)

		case "info":
			err = a.Info(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}

		if err != nil {
			printlnFn("Error: " + err.Error())
		}
	}
}
