package vesper

import (
	"context"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/vesperapp/vesper/internal/models"
)

// TestExport_WireFormat locks the export format against the golden file.
// The same structure is the import format and the stored layout, so any
// diff here is a compatibility break.
func TestExport_WireFormat(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	s.entropy = func() string { return "abcd1234" }

	require.NoError(t, s.SetPreference(ctx, PrefTheme, models.ThemeDawn))
	_, err := s.AddReading(ctx, ReadingDraft{
		SpreadType: "three-card",
		Cards: []models.TarotCard{
			{Id: "major-00", Name: "The Fool", Upright: true, Position: "Past"},
			{Id: "major-13", Name: "Death", Upright: false, Position: "Present"},
			{Id: "major-17", Name: "The Star", Upright: true, Position: "Future"},
		},
		Question:  "what is shifting?",
		UserNotes: "keep an open mind",
		Tags:      []string{"career", "hopeful"},
	})
	require.NoError(t, err)
	require.NoError(t, s.UpdateDailyDraw(ctx, models.DailyDraw{
		LastDrawDate: "2023-11-14",
		Card:         models.TarotCard{Id: "major-01", Name: "The Magician", Upright: true},
	}))

	exported, err := s.Export(ctx)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export", []byte(exported))
}
