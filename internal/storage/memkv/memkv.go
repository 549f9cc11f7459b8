// Package memkv provides an in-memory Substrate used by tests and by the
// "memory" storage backend. It can simulate an unavailable substrate and
// quota exhaustion.
package memkv

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vesperapp/vesper/internal/storage"
)

var errUnavailable = errors.New("substrate unavailable")

type Substrate struct {
	mu          sync.Mutex
	data        map[string]string
	unavailable bool
	limit       int
}

func New() *Substrate {
	return &Substrate{data: make(map[string]string)}
}

// SetUnavailable makes every operation fail, simulating disabled storage.
func (s *Substrate) SetUnavailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = v
}

// SetValueLimit caps the size of a single stored value in bytes; larger
// writes fail with ErrQuotaExceeded. Small probe writes still succeed,
// mirroring a nearly-full real substrate. Zero means unlimited.
func (s *Substrate) SetValueLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = n
}

func (s *Substrate) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return "", false, errUnavailable
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Substrate) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return errUnavailable
	}
	if s.limit > 0 && len(value) > s.limit {
		return fmt.Errorf("%w: value of %d bytes exceeds limit", storage.ErrQuotaExceeded, len(value))
	}
	s.data[key] = value
	return nil
}

func (s *Substrate) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return errUnavailable
	}
	delete(s.data, key)
	return nil
}
