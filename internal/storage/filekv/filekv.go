// Package filekv stores each key as a JSON-suffixed file inside a profile
// directory. It is the zero-dependency storage backend for environments
// without SQLite.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/vesperapp/vesper/internal/storage"
)

type Substrate struct {
	dir string
}

// New returns a substrate rooted at dir. The directory is created on the
// first write.
func New(dir string) *Substrate {
	return &Substrate{dir: dir}
}

func (s *Substrate) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Substrate) Get(ctx context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", s.path(key), err)
	}
	return string(b), true, nil
}

func (s *Substrate) Set(ctx context.Context, key, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write cannot leave a
	// truncated document behind.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		if errors.Is(err, syscall.ENOSPC) {
			return fmt.Errorf("%w: %v", storage.ErrQuotaExceeded, err)
		}
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path(key), err)
	}
	return nil
}

func (s *Substrate) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", s.path(key), err)
	}
	return nil
}
