package vesper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperapp/vesper/internal/models"
)

func TestReadingHistory_EmptyOnFirstRead(t *testing.T) {
	s, _ := newTestStore(t)

	history, err := s.ReadingHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAddReading_AssignsIdAndTimestampAndPrepends(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	r1 := addReading(t, s, "single-card", "hopeful")
	require.NotEmpty(t, r1.Id)
	assert.Equal(t, int64(1700000000000), r1.Timestamp)
	assert.Equal(t, "single-card", r1.SpreadType)

	s.now = func() time.Time { return time.UnixMilli(1700000060000) }
	r2 := addReading(t, s, "three-card", "anxious")

	history, err := s.ReadingHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, r2.Id, history[0].Id, "newest reading first")
	assert.Equal(t, r1.Id, history[1].Id)
}

func TestAddReading_NormalizesNilSlices(t *testing.T) {
	s, _ := newTestStore(t)

	r, err := s.AddReading(context.Background(), ReadingDraft{SpreadType: "single-card"})
	require.NoError(t, err)
	assert.NotNil(t, r.Cards)
	assert.NotNil(t, r.Tags)
	assert.Empty(t, r.Cards)
	assert.Empty(t, r.Tags)
}

func TestReading_ById(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	r := addReading(t, s, "single-card")

	got, err := s.Reading(ctx, r.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *r, *got)

	got, err = s.Reading(ctx, "reading_0_deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateReading_MergesAndPreservesIdentity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	older := addReading(t, s, "single-card")
	newer := addReading(t, s, "three-card")

	notes := "the fool felt right"
	updated, err := s.UpdateReading(ctx, older.Id, ReadingPatch{UserNotes: &notes})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, notes, updated.UserNotes)
	assert.Equal(t, older.Id, updated.Id)
	assert.Equal(t, older.Timestamp, updated.Timestamp)
	assert.Equal(t, older.SpreadType, updated.SpreadType)
	assert.Equal(t, older.Cards, updated.Cards)
	assert.Equal(t, older.Tags, updated.Tags)
	assert.Equal(t, older.Shared, updated.Shared)

	// position in history is unchanged
	history, err := s.ReadingHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.Id, history[0].Id)
	assert.Equal(t, older.Id, history[1].Id)
	assert.Equal(t, notes, history[1].UserNotes)
}

func TestUpdateReading_UnknownIdLeavesStoreUnmodified(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	r := addReading(t, s, "single-card")
	before, err := s.ReadingHistory(ctx)
	require.NoError(t, err)

	notes := "x"
	updated, err := s.UpdateReading(ctx, "reading_0_deadbeef", ReadingPatch{UserNotes: &notes})
	require.NoError(t, err)
	assert.Nil(t, updated)

	after, err := s.ReadingHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, after[0].UserNotes)
	assert.Equal(t, r.Id, after[0].Id)
}

func TestDeleteReading(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	r1 := addReading(t, s, "single-card")
	r2 := addReading(t, s, "three-card")

	ok, err := s.DeleteReading(ctx, r1.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteReading(ctx, r1.Id)
	require.NoError(t, err)
	assert.False(t, ok, "second delete of the same id reports no removal")

	history, err := s.ReadingHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, r2.Id, history[0].Id)
}

func TestReadingsByTags_OrSemantics(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	r1 := addReading(t, s, "single-card", "career", "anxious")
	r2 := addReading(t, s, "single-card", "love", "hopeful")
	r3 := addReading(t, s, "single-card", "career", "confused")

	got, err := s.ReadingsByTags(ctx, []string{"career"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, r3.Id, got[0].Id)
	assert.Equal(t, r1.Id, got[1].Id)

	got, err = s.ReadingsByTags(ctx, []string{"love"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, r2.Id, got[0].Id)

	// OR across query tags, each reading listed once
	got, err = s.ReadingsByTags(ctx, []string{"career", "anxious"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ReadingsByTags(ctx, []string{"spirituality"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadingsByDateRange_InclusiveBounds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, ms := range []int64{1000, 2000, 3000} {
		ms := ms
		s.now = func() time.Time { return time.UnixMilli(ms) }
		addReading(t, s, "single-card")
	}

	got, err := s.ReadingsByDateRange(ctx, 1000, 3000)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = s.ReadingsByDateRange(ctx, 2000, 2000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2000), got[0].Timestamp)

	got, err = s.ReadingsByDateRange(ctx, 1001, 1999)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClearReadingHistory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	addReading(t, s, "single-card")
	addReading(t, s, "three-card")

	require.NoError(t, s.ClearReadingHistory(ctx))

	history, err := s.ReadingHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	// clearing history leaves the rest of the document alone
	prefs, err := s.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}
