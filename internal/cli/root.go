package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vesperapp/vesper/internal/config"
)

var (
	cfgFile       string
	backendFlag   string
	pathFlag      string
	logLevelFlag  string
	logFormatFlag string

	app *App
)

var rootCmd = &cobra.Command{
	Use:   "vesper",
	Short: "Local tarot journal",
	Long: `vesper keeps a tarot journal on this device: a daily card,
your reading history with notes and tags, and your preferences.

Run it without arguments for an interactive session, or use the
subcommands for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Run(cmd.Context())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app != nil {
			return app.Close()
		}
		return nil
	},
}

func initApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// flags are the last overlay, after defaults, JSON and env
	pf := rootCmd.PersistentFlags()
	if pf.Changed("backend") {
		cfg.StorageBackend = backendFlag
	}
	if pf.Changed("storage") {
		cfg.StoragePath = pathFlag
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = logFormatFlag
	}

	app, err = NewApp(cmd.Context(), cfg, newLogger(cfg))
	return err
}

// Run starts the interactive session.
func (a *App) Run(ctx context.Context) {
	if isTerminal() {
		fmt.Fprintln(a.out, "Vesper (type 'help' for commands)")
	}
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// assigned here rather than in the literal to avoid an
	// initialization cycle between rootCmd and initApp
	rootCmd.PersistentPreRunE = initApp

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to JSON config file")
	pf.StringVarP(&backendFlag, "backend", "b", "", "storage backend (sqlite, file or memory)")
	pf.StringVarP(&pathFlag, "storage", "s", "", "storage path (database file or profile directory)")
	pf.StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormatFlag, "log-format", "", "log format (console or json)")

	rootCmd.AddCommand(drawCmd, historyCmd, exportCmd, importCmd, infoCmd, resetCmd)
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Show or draw today's card",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Draw(cmd.Context())
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.History(cmd.Context())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return app.Export(cmd.Context(), path)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data, replacing everything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Import(cmd.Context(), args[0])
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show storage details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Info(cmd.Context())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all data to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Reset(cmd.Context())
	},
}
