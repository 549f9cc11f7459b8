// Package cli implements the interactive Vesper client: a REPL over the
// local store plus non-interactive subcommands for scripting.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/vesperapp/vesper/internal/config"
	"github.com/vesperapp/vesper/internal/logging"
	"github.com/vesperapp/vesper/internal/storage"
	"github.com/vesperapp/vesper/internal/storage/filekv"
	"github.com/vesperapp/vesper/internal/storage/memkv"
	"github.com/vesperapp/vesper/internal/storage/sqlitekv"
	"github.com/vesperapp/vesper/internal/vesper"
)

type App struct {
	cfg    *config.Config
	log    logging.Logger
	store  *vesper.Store
	closer func() error
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the configured substrate into a store and returns the
// client. The caller must Close it when done.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var (
		sub    storage.Substrate
		closer func() error
	)

	switch cfg.StorageBackend {
	case "sqlite":
		s, err := sqlitekv.Open(ctx, cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		sub = s
		closer = s.Close
	case "file":
		sub = filekv.New(cfg.StoragePath)
	case "memory":
		sub = memkv.New()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	log.Info(ctx, "storage ready", "backend", cfg.StorageBackend, "path", cfg.StoragePath)

	gw := storage.NewGateway(sub, log)
	return &App{
		cfg:    cfg,
		log:    log,
		store:  vesper.New(gw),
		closer: closer,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Close() error {
	if a.closer != nil {
		return a.closer()
	}
	return nil
}

// newLogger builds the zerolog-backed logger the CLI runs with.
func newLogger(cfg *config.Config) logging.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logging.NewZerologLogger(l)
}
