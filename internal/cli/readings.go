package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vesperapp/vesper/internal/deck"
	"github.com/vesperapp/vesper/internal/vesper"
)

// History lists all stored readings, most recent first.
func (a *App) History(ctx context.Context) error {
	history, err := a.store.ReadingHistory(ctx)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No readings yet.")
		return nil
	}

	for _, r := range history {
		when := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04")
		line := fmt.Sprintf("%s  %s  %s", r.Id, when, r.SpreadType)
		if len(r.Tags) > 0 {
			line += "  [" + strings.Join(r.Tags, ", ") + "]"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Show prints one reading in full.
func (a *App) Show(ctx context.Context, id string) error {
	r, err := a.store.Reading(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Fprintf(a.out, "No reading with id %s\n", id)
		return nil
	}

	fmt.Fprintf(a.out, "Reading %s\n", r.Id)
	fmt.Fprintf(a.out, "  Date:   %s\n", time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04"))
	fmt.Fprintf(a.out, "  Spread: %s\n", r.SpreadType)
	for _, c := range r.Cards {
		fmt.Fprintf(a.out, "  Card:   %s\n", formatCard(c))
	}
	if r.Question != "" {
		fmt.Fprintf(a.out, "  Question: %s\n", r.Question)
	}
	if r.AIInterpretation != "" {
		fmt.Fprintf(a.out, "  Interpretation: %s\n", r.AIInterpretation)
	}
	if r.UserNotes != "" {
		fmt.Fprintf(a.out, "  Notes: %s\n", r.UserNotes)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(a.out, "  Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if r.Shared {
		fmt.Fprintf(a.out, "  Shared: %s\n", r.ShareLink)
	}
	return nil
}

// Add performs a new reading interactively: spread choice, draw,
// question, tags.
func (a *App) Add(ctx context.Context) error {
	spread, err := GetSimpleText(a.reader, "Spread (single/three)", a.out)
	if err != nil {
		return err
	}

	var spreadType string
	var count int
	switch spread {
	case "", "single", "s":
		spreadType, count = "single-card", 1
	case "three", "t", "3":
		spreadType, count = "three-card", 3
	default:
		fmt.Fprintf(a.out, "Unknown spread %q, expected single or three\n", spread)
		return nil
	}

	cards, err := deck.Draw(count)
	if err != nil {
		return err
	}
	for _, c := range cards {
		fmt.Fprintf(a.out, "Drawn: %s\n", formatCard(c))
	}

	question, err := GetSimpleText(a.reader, "Question (optional)", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	tagLine, err := GetSimpleText(a.reader, "Tags, comma separated (optional)", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	r, err := a.store.AddReading(ctx, vesper.ReadingDraft{
		SpreadType: spreadType,
		Cards:      cards,
		Question:   question,
		Tags:       splitTags(tagLine),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved reading %s\n", r.Id)
	return nil
}

// Note attaches free-text notes to an existing reading.
func (a *App) Note(ctx context.Context, id string) error {
	notes, err := GetMultiline(a.reader, "Notes", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	r, err := a.store.UpdateReading(ctx, id, vesper.ReadingPatch{UserNotes: &notes})
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Fprintf(a.out, "No reading with id %s\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "Updated reading %s\n", r.Id)
	return nil
}

// Delete removes a reading after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete reading %s?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	removed, err := a.store.DeleteReading(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(a.out, "Deleted reading %s\n", id)
	} else {
		fmt.Fprintf(a.out, "No reading with id %s\n", id)
	}
	return nil
}

func splitTags(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
