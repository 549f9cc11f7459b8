package vesper

import (
	"context"

	"github.com/vesperapp/vesper/internal/models"
)

// DateLayout is the calendar-date format used by the daily draw.
const DateLayout = "2006-01-02"

// DailyDraw returns the stored daily draw, or nil when none exists.
func (s *Store) DailyDraw(ctx context.Context) (*models.DailyDraw, error) {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.DailyDraw, nil
}

// UpdateDailyDraw unconditionally replaces the daily draw.
func (s *Store) UpdateDailyDraw(ctx context.Context, draw models.DailyDraw) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}
	doc.DailyDraw = &draw
	return s.gw.Write(ctx, doc)
}

// ClearDailyDraw removes the daily draw.
func (s *Store) ClearDailyDraw(ctx context.Context) error {
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return err
	}
	doc.DailyDraw = nil
	return s.gw.Write(ctx, doc)
}

// NeedsNewDailyDraw reports whether a fresh draw is due: true when no
// draw exists or the stored draw is from a different local calendar day.
// The comparison is by calendar date, not elapsed time, so a draw made
// at 23:59 is already stale at 00:01.
func (s *Store) NeedsNewDailyDraw(ctx context.Context) (bool, error) {
	draw, err := s.DailyDraw(ctx)
	if err != nil {
		return false, err
	}
	if draw == nil {
		return true, nil
	}
	return draw.LastDrawDate != s.now().Format(DateLayout), nil
}
