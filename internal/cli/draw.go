package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vesperapp/vesper/internal/deck"
	"github.com/vesperapp/vesper/internal/models"
	"github.com/vesperapp/vesper/internal/vesper"
)

// Draw shows today's card, drawing a fresh one if the stored draw is
// from an earlier calendar day.
func (a *App) Draw(ctx context.Context) error {
	need, err := a.store.NeedsNewDailyDraw(ctx)
	if err != nil {
		return err
	}

	if !need {
		draw, err := a.store.DailyDraw(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Today's card: %s\n", formatCard(draw.Card))
		if draw.Question != "" {
			fmt.Fprintf(a.out, "Your question: %s\n", draw.Question)
		}
		return nil
	}

	question, err := GetSimpleText(a.reader, "Question for today (optional)", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	card := deck.DrawDaily()
	draw := models.DailyDraw{
		LastDrawDate: time.Now().Format(vesper.DateLayout),
		Card:         card,
		Question:     question,
	}
	if err := a.store.UpdateDailyDraw(ctx, draw); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Today's card: %s\n", formatCard(card))
	return nil
}

func formatCard(c models.TarotCard) string {
	orientation := "upright"
	if !c.Upright {
		orientation = "reversed"
	}
	if c.Position != "" {
		return fmt.Sprintf("%s: %s (%s)", c.Position, c.Name, orientation)
	}
	return fmt.Sprintf("%s (%s)", c.Name, orientation)
}
