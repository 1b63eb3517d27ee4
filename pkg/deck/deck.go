package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"time"

	"holdem-engine/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call Shuffle() or ShuffleWith()
// before dealing.
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will Fisher-Yates shuffle a full deck of cards.
// A seed of 0 picks a time-based seed; any other seed reproduces the same
// permutation, which tests rely on.
func (d *Deck) Shuffle(seed int64) {
	// always shuffle from a full, ordered deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.seed = seed
	d.ShuffleWith(rng.Seeded(seed))
}

// ShuffleWith will Fisher-Yates shuffle the remaining cards using the
// provided generator
func (d *Deck) ShuffleWith(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil
// card. Running out of cards in a correctly sized game is an invariant
// violation; callers must fail loudly rather than truncate the deal.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN draws n cards, preserving the draw order
func (d *Deck) DrawN(n int) (Hand, error) {
	cards := make(Hand, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// RemoveCards filters out every card matching the known set by suit and rank.
// The equity simulator uses this to guarantee a fresh deck never reproduces
// cards already assigned.
func (d *Deck) RemoveCards(known Hand) {
	cards := make([]*Card, 0, len(d.Cards))
	for _, card := range d.Cards {
		if !known.HasCard(card) {
			cards = append(cards, card)
		}
	}

	d.Cards = cards
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
