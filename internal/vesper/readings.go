package vesper

import (
	"context"
	"slices"

	"github.com/vesperapp/vesper/internal/models"
)

// ReadingDraft holds the caller-supplied fields of a new reading. Id and
// Timestamp are assigned by the store.
type ReadingDraft struct {
	SpreadType       string
	Cards            []models.TarotCard
	Question         string
	AIInterpretation string
	UserNotes        string
	Tags             []string
	Shared           bool
	ShareLink        string
}

// ReadingPatch carries a partial reading update. Nil fields are left
// untouched; Id and Timestamp cannot be patched.
type ReadingPatch struct {
	SpreadType       *string
	Cards            []models.TarotCard
	Question         *string
	AIInterpretation *string
	UserNotes        *string
	Tags             []string
	Shared           *bool
	ShareLink        *string
}

// ReadingHistory returns all readings, most recent first.
func (s *Store) ReadingHistory(ctx context.Context) ([]models.Reading, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.ReadingHistory, nil
}

// Reading returns the reading with the given id, or nil when absent.
func (s *Store) Reading(ctx context.Context, id string) (*models.Reading, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.ReadingHistory {
		if doc.ReadingHistory[i].Id == id {
			return &doc.ReadingHistory[i], nil
		}
	}
	return nil, nil
}

// AddReading assigns a fresh id and timestamp to the draft, prepends it
// to the history, persists, and returns the complete new reading.
func (s *Store) AddReading(ctx context.Context, draft ReadingDraft) (*models.Reading, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	r := models.Reading{
		Id:               s.newReadingId(),
		Timestamp:        s.now().UnixMilli(),
		SpreadType:       draft.SpreadType,
		Cards:            draft.Cards,
		Question:         draft.Question,
		AIInterpretation: draft.AIInterpretation,
		UserNotes:        draft.UserNotes,
		Tags:             draft.Tags,
		Shared:           draft.Shared,
		ShareLink:        draft.ShareLink,
	}
	// nil slices would serialize as JSON null
	if r.Cards == nil {
		r.Cards = []models.TarotCard{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}

	doc.ReadingHistory = append([]models.Reading{r}, doc.ReadingHistory...)
	if err := s.gw.Write(ctx, doc); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReading merges the patch into the reading with the given id,
// keeping its position in the history. It returns the updated reading,
// or nil (and no error) when no reading has that id; the store is then
// left unmodified.
func (s *Store) UpdateReading(ctx context.Context, id string, patch ReadingPatch) (*models.Reading, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(doc.ReadingHistory, func(r models.Reading) bool { return r.Id == id })
	if idx == -1 {
		return nil, nil
	}

	r := &doc.ReadingHistory[idx]
	if patch.SpreadType != nil {
		r.SpreadType = *patch.SpreadType
	}
	if patch.Cards != nil {
		r.Cards = patch.Cards
	}
	if patch.Question != nil {
		r.Question = *patch.Question
	}
	if patch.AIInterpretation != nil {
		r.AIInterpretation = *patch.AIInterpretation
	}
	if patch.UserNotes != nil {
		r.UserNotes = *patch.UserNotes
	}
	if patch.Tags != nil {
		r.Tags = patch.Tags
	}
	if patch.Shared != nil {
		r.Shared = *patch.Shared
	}
	if patch.ShareLink != nil {
		r.ShareLink = *patch.ShareLink
	}

	if err := s.gw.Write(ctx, doc); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteReading removes the reading with the given id and reports
// whether a removal occurred.
func (s *Store) DeleteReading(ctx context.Context, id string) (bool, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return false, err
	}

	before := len(doc.ReadingHistory)
	doc.ReadingHistory = slices.DeleteFunc(doc.ReadingHistory, func(r models.Reading) bool {
		return r.Id == id
	})
	if len(doc.ReadingHistory) == before {
		return false, nil
	}

	if err := s.gw.Write(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// ReadingsByTags returns readings whose tag set intersects the query
// tags (logical OR), preserving history order.
func (s *Store) ReadingsByTags(ctx context.Context, tags []string) ([]models.Reading, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Reading
	for _, r := range doc.ReadingHistory {
		for _, tag := range tags {
			if slices.Contains(r.Tags, tag) {
				result = append(result, r)
				break
			}
		}
	}
	return result, nil
}

// ReadingsByDateRange returns readings whose timestamp lies within
// [startMs, endMs], bounds inclusive.
func (s *Store) ReadingsByDateRange(ctx context.Context, startMs, endMs int64) ([]models.Reading, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Reading
	for _, r := range doc.ReadingHistory {
		if r.Timestamp >= startMs && r.Timestamp <= endMs {
			result = append(result, r)
		}
	}
	return result, nil
}

// ClearReadingHistory empties the history.
func (s *Store) ClearReadingHistory(ctx context.Context) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}
	doc.ReadingHistory = []models.Reading{}
	return s.gw.Write(ctx, doc)
}
