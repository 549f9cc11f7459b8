package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vesperapp/vesper/internal/vesper"
)

// Tags prints the current tag vocabulary.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.store.AvailableTags(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Emotions:   %s\n", strings.Join(tags.Emotions, ", "))
	fmt.Fprintf(a.out, "Life areas: %s\n", strings.Join(tags.LifeAreas, ", "))
	return nil
}

// AddTag adds a tag to the named vocabulary.
func (a *App) AddTag(ctx context.Context, category, tag string) error {
	cat, err := tagCategory(category)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}
	if err := a.store.AddTag(ctx, tag, cat); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %q to %s\n", tag, category)
	return nil
}

// RemoveTag removes a tag from the named vocabulary. Existing readings
// tagged with it are unaffected.
func (a *App) RemoveTag(ctx context.Context, category, tag string) error {
	cat, err := tagCategory(category)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}
	if err := a.store.RemoveTag(ctx, tag, cat); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %q from %s\n", tag, category)
	return nil
}

func tagCategory(s string) (vesper.TagCategory, error) {
	switch strings.ToLower(s) {
	case "emotion", "emotions":
		return vesper.TagEmotions, nil
	case "life", "lifearea", "lifeareas", "life-area", "life-areas":
		return vesper.TagLifeAreas, nil
	default:
		return "", fmt.Errorf("unknown category %q, expected emotions or lifeAreas", s)
	}
}
