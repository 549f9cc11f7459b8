package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vesperapp/vesper/internal/logging"
	"github.com/vesperapp/vesper/internal/models"
)

const (
	// StorageKey is the substrate key holding the serialized document.
	StorageKey = "vesper_data"

	probeKey = "__vesper_probe__"
)

// Gateway serializes the document in and out of a Substrate. A missing
// document reads as the default document; a corrupt one fails with
// ErrParse. When the substrate is unusable the gateway degrades: reads
// return defaults and writes are dropped, both logged but never fatal.
type Gateway struct {
	sub Substrate
	log logging.Logger
}

func NewGateway(sub Substrate, log logging.Logger) *Gateway {
	return &Gateway{sub: sub, log: log.With("component", "storage")}
}

// Probe reports whether the substrate is usable, by performing a trivial
// write and delete. It never returns an error.
func (g *Gateway) Probe(ctx context.Context) bool {
	if err := g.sub.Set(ctx, probeKey, "ok"); err != nil {
		return false
	}
	if err := g.sub.Delete(ctx, probeKey); err != nil {
		return false
	}
	return true
}

// Read loads the current document. With no stored record it returns the
// default document. A record that fails to parse returns ErrParse; the
// gateway never silently falls back to defaults over corrupt data. A
// document written by an older schema version is migrated and persisted
// before being returned.
func (g *Gateway) Read(ctx context.Context) (*models.Document, error) {
	if !g.Probe(ctx) {
		g.log.Warn(ctx, "substrate unavailable, using default document")
		return models.DefaultDocument(), nil
	}

	raw, ok, err := g.sub.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if !ok {
		return models.DefaultDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		g.log.Error(ctx, "stored document is corrupt", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if doc.SchemaVersion != models.CurrentSchemaVersion {
		return g.migrate(ctx, &doc)
	}
	return &doc, nil
}

// Write replaces the stored document with doc. When the substrate is
// unavailable the write is dropped and logged; there is nowhere durable
// to put the data. Quota exhaustion surfaces as ErrQuotaExceeded.
func (g *Gateway) Write(ctx context.Context, doc *models.Document) error {
	if !g.Probe(ctx) {
		g.log.Warn(ctx, "substrate unavailable, document not persisted")
		return nil
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := g.sub.Set(ctx, StorageKey, string(b)); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// migrate brings an older document up to the current schema version and
// persists the result immediately. Version-specific transformations are
// applied in order as the schema evolves; with only version 1 extant
// this is an identity plus version bump.
func (g *Gateway) migrate(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if doc.SchemaVersion < models.CurrentSchemaVersion {
		g.log.Info(ctx, "migrating document",
			"from", doc.SchemaVersion, "to", models.CurrentSchemaVersion)
		doc.SchemaVersion = models.CurrentSchemaVersion
		if err := g.Write(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
