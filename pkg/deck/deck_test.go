package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	// exactly the Cartesian product of suits and ranks
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}

	a.Len(seen, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			a.True(seen[Card{Rank: rank, Suit: suit}], fmt.Sprintf("missing %d of %s", rank, suit))
		}
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(1)

	d2 := New()
	d2.Shuffle(1)

	a.Equal(int64(1), d1.GetSeed())
	a.Equal(d1.HashCode(), d2.HashCode())

	d2.Shuffle(2)
	a.NotEqual(d1.HashCode(), d2.HashCode())

	// still a full deck after shuffling
	a.Equal(52, d2.CardsLeft())

	// reshuffling restores a full deck
	_, _ = d1.Draw()
	d1.Shuffle(3)
	a.Equal(52, d1.CardsLeft())
}

// TestDeck_ShuffleCoverage checks that shuffling moves every card around the
// deck rather than favoring a fixed order. With 200 shuffles the top of the
// deck should see most of the 52 distinct cards.
func TestDeck_ShuffleCoverage(t *testing.T) {
	a := assert.New(t)

	topCards := make(map[Card]bool)
	for seed := int64(1); seed <= 200; seed++ {
		d := New()
		d.Shuffle(seed)
		topCards[*d.Cards[0]] = true
	}

	a.GreaterOrEqual(len(topCards), 40)
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	drawn := make(Hand, 0, 52)
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		a.NoError(err)
		a.NotNil(card)
		drawn.AddCard(card)
	}

	a.False(d.CanDraw(1))

	card, err := d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)

	// every card was dealt exactly once
	seen := make(map[Card]bool)
	for _, card := range drawn {
		seen[*card] = true
	}
	a.Len(seen, 52)
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	expected := make([]*Card, 5)
	copy(expected, d.Cards[0:5])

	cards, err := d.DrawN(5)
	a.NoError(err)
	a.Len(cards, 5)
	a.Equal(47, d.CardsLeft())

	// order preserved and no drawn card remains in the deck
	for i, card := range cards {
		a.True(card.Equal(expected[i]))

		remaining := Hand(d.Cards)
		a.False(remaining.HasCard(card))
	}

	cards, err = d.DrawN(48)
	a.Nil(cards)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_RemoveCards(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	known := CardsFromString("2c,3d,14s,14h,10c")
	d.RemoveCards(known)

	a.Equal(47, d.CardsLeft())
	remaining := Hand(d.Cards)
	for _, card := range known {
		a.False(remaining.HasCard(card))
	}

	// removing the same cards again is a no-op
	d.RemoveCards(known)
	a.Equal(47, d.CardsLeft())
}
