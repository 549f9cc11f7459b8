package cli

import (
	"context"
	"fmt"
	"os"
)

// Export writes the full document to the given file, or to standard
// output when path is empty.
func (a *App) Export(ctx context.Context, path string) error {
	data, err := a.store.Export(ctx)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintln(a.out, data)
		return nil
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(a.out, "Exported to %s\n", path)
	return nil
}

// Import replaces all stored data with the contents of the given file,
// after confirmation.
func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	ok, err := Confirm(a.reader, "Importing replaces all current data. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.store.Import(ctx, string(data)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported %s\n", path)
	return nil
}

// Reset restores the default document after confirmation.
func (a *App) Reset(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Reset all data to defaults?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.store.ResetAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All data reset.")
	return nil
}

// Info prints storage availability and usage.
func (a *App) Info(ctx context.Context) error {
	info, err := a.store.StorageInfo(ctx)
	if err != nil {
		return err
	}
	version, err := a.store.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Backend:        %s\n", a.cfg.StorageBackend)
	fmt.Fprintf(a.out, "Available:      %t\n", info.IsAvailable)
	fmt.Fprintf(a.out, "Schema version: %d\n", version)
	fmt.Fprintf(a.out, "Readings:       %d\n", info.ReadingCount)
	fmt.Fprintf(a.out, "Size:           %d bytes\n", info.EstimatedSize)
	return nil
}
