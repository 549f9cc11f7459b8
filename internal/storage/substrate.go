// Package storage reads and writes the single Vesper document through a
// pluggable key-value substrate, and runs schema migrations on read.
package storage

import "context"

// Substrate is the durable key-value facility the document lives in.
// Implementations are typically backed by SQLite or a plain file; tests
// use an in-memory map.
type Substrate interface {
	// Get returns the value stored under key. The second result is false
	// when no value exists, which is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value. It returns
	// an error wrapping ErrQuotaExceeded when the backing storage is full.
	Set(ctx context.Context, key, value string) error

	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
