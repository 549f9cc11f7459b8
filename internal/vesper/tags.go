package vesper

import (
	"context"
	"fmt"
	"slices"

	"github.com/vesperapp/vesper/internal/models"
)

// TagCategory selects one of the two tag vocabularies.
type TagCategory string

const (
	TagEmotions  TagCategory = "emotions"
	TagLifeAreas TagCategory = "lifeAreas"
)

// AvailableTags returns the current tag vocabulary.
func (s *Store) AvailableTags(ctx context.Context) (models.AvailableTags, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return models.AvailableTags{}, err
	}
	return doc.AvailableTags, nil
}

// AddEmotionTag adds a tag to the emotions vocabulary. Adding an
// existing tag is a no-op.
func (s *Store) AddEmotionTag(ctx context.Context, tag string) error {
	return s.AddTag(ctx, tag, TagEmotions)
}

// AddLifeAreaTag adds a tag to the life-areas vocabulary. Adding an
// existing tag is a no-op.
func (s *Store) AddLifeAreaTag(ctx context.Context, tag string) error {
	return s.AddTag(ctx, tag, TagLifeAreas)
}

// AddTag adds a tag to the given vocabulary, idempotently.
func (s *Store) AddTag(ctx context.Context, tag string, category TagCategory) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}

	set, err := vocabulary(doc, category)
	if err != nil {
		return err
	}
	if slices.Contains(*set, tag) {
		return nil
	}
	*set = append(*set, tag)

	return s.gw.Write(ctx, doc)
}

// RemoveTag removes a tag from the given vocabulary; removing an absent
// tag is a no-op. Readings that already carry the tag keep it: the
// vocabulary and per-reading tags are independent.
func (s *Store) RemoveTag(ctx context.Context, tag string, category TagCategory) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}

	set, err := vocabulary(doc, category)
	if err != nil {
		return err
	}
	idx := slices.Index(*set, tag)
	if idx == -1 {
		return nil
	}
	*set = slices.Delete(*set, idx, idx+1)

	return s.gw.Write(ctx, doc)
}

func vocabulary(doc *models.Document, category TagCategory) (*[]string, error) {
	switch category {
	case TagEmotions:
		return &doc.AvailableTags.Emotions, nil
	case TagLifeAreas:
		return &doc.AvailableTags.LifeAreas, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTagCategory, category)
	}
}
