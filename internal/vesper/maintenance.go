package vesper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vesperapp/vesper/internal/models"
	"github.com/vesperapp/vesper/internal/storage"
)

// StorageInfo summarizes storage usage for the profile.
type StorageInfo struct {
	// IsAvailable reports whether the substrate is usable at all.
	IsAvailable bool

	// EstimatedSize is the serialized byte length of the current
	// document, 0 when the substrate is unavailable.
	EstimatedSize int

	ReadingCount int
}

// SchemaVersion returns the schema version of the stored document.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return 0, err
	}
	return doc.SchemaVersion, nil
}

// Export serializes the full document for backup. The output is
// pretty-printed; only the structure is contractual.
func (s *Store) Export(ctx context.Context) (string, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return string(b), nil
}

// Import parses serialized data and replaces the entire document. On
// invalid input it fails with ErrParse and leaves the stored document
// untouched; a failed import never partially overwrites state.
func (s *Store) Import(ctx context.Context, serialized string) error {
	var doc models.Document
	if err := json.Unmarshal([]byte(serialized), &doc); err != nil {
		return fmt.Errorf("%w: invalid import data: %v", storage.ErrParse, err)
	}
	return s.gw.Write(ctx, &doc)
}

// ResetAll replaces the document with the defaults, as on first run.
func (s *Store) ResetAll(ctx context.Context) error {
	return s.gw.Write(ctx, models.DefaultDocument())
}

// StorageInfo reports substrate availability and approximate usage.
func (s *Store) StorageInfo(ctx context.Context) (StorageInfo, error) {
	available := s.gw.Probe(ctx)

	doc, err := s.gw.Read(ctx)
	if err != nil {
		return StorageInfo{}, err
	}

	size := 0
	if available {
		b, err := json.Marshal(doc)
		if err != nil {
			return StorageInfo{}, fmt.Errorf("failed to serialize document: %w", err)
		}
		size = len(b)
	}

	return StorageInfo{
		IsAvailable:   available,
		EstimatedSize: size,
		ReadingCount:  len(doc.ReadingHistory),
	}, nil
}
