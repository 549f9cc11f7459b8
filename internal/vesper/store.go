// Package vesper implements the typed CRUD surface over the single
// persisted document: preferences, the daily draw, reading history, the
// tag vocabulary, and maintenance utilities.
//
// Every operation is a full read-modify-write cycle against the document
// via the storage gateway. Two operations issued in succession from the
// same goroutine are strictly ordered, but there is no cross-process
// concurrency control: if two processes write concurrently the later
// write wins and the earlier one is silently lost. This is a known
// limitation, inherited deliberately rather than papered over with
// locking the substrate contract does not offer.
package vesper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vesperapp/vesper/internal/storage"
)

// Store exposes the domain operations. Construct one per profile with New
// and share it; the zero value is not usable.
type Store struct {
	gw *storage.Gateway

	// test seams
	now     func() time.Time
	entropy func() string
}

func New(gw *storage.Gateway) *Store {
	return &Store{
		gw:      gw,
		now:     time.Now,
		entropy: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:8] },
	}
}

// newReadingId builds a unique, roughly sortable reading id:
// a millisecond timestamp prefix plus random suffix.
func (s *Store) newReadingId() string {
	return fmt.Sprintf("reading_%d_%s", s.now().UnixMilli(), s.entropy())
}
