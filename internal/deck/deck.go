// Package deck holds the card deck and the random draw used for the
// daily card and full readings.
package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/vesperapp/vesper/internal/models"
)

// ErrNotEnoughCards is returned when a draw asks for more distinct cards
// than the deck holds.
var ErrNotEnoughCards = errors.New("not enough cards in deck")

// Card is one deck entry, before orientation is decided.
type Card struct {
	Id   string
	Name string
}

// MajorArcana is the deck, in traditional order.
var MajorArcana = []Card{
	{"major-00", "The Fool"},
	{"major-01", "The Magician"},
	{"major-02", "The High Priestess"},
	{"major-03", "The Empress"},
	{"major-04", "The Emperor"},
	{"major-05", "The Hierophant"},
	{"major-06", "The Lovers"},
	{"major-07", "The Chariot"},
	{"major-08", "Strength"},
	{"major-09", "The Hermit"},
	{"major-10", "Wheel of Fortune"},
	{"major-11", "Justice"},
	{"major-12", "The Hanged Man"},
	{"major-13", "Death"},
	{"major-14", "Temperance"},
	{"major-15", "The Devil"},
	{"major-16", "The Tower"},
	{"major-17", "The Star"},
	{"major-18", "The Moon"},
	{"major-19", "The Sun"},
	{"major-20", "Judgement"},
	{"major-21", "The World"},
}

// ThreeCardPositions are the slot labels for a three-card spread.
var ThreeCardPositions = []string{"Past", "Present", "Future"}

// Draw returns n distinct cards from the deck, each with a random
// orientation. When n matches len(ThreeCardPositions) the cards carry
// the spread's position labels.
func Draw(n int) ([]models.TarotCard, error) {
	if n > len(MajorArcana) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, len(MajorArcana))
	}

	perm := rand.Perm(len(MajorArcana))
	cards := make([]models.TarotCard, 0, n)
	for i := 0; i < n; i++ {
		c := MajorArcana[perm[i]]
		card := models.TarotCard{
			Id:      c.Id,
			Name:    c.Name,
			Upright: rand.IntN(2) == 0,
		}
		if n == len(ThreeCardPositions) {
			card.Position = ThreeCardPositions[i]
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// DrawDaily returns the single featured card for the day.
func DrawDaily() models.TarotCard {
	cards, _ := Draw(1)
	return cards[0]
}
