package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-engine/pkg/deck"
)

func TestRankHand(t *testing.T) {
	a := assert.New(t)

	runTest := func(t *testing.T, cards string, category Category, kickers []int) {
		t.Helper()

		rank, err := RankHand(deck.CardsFromString(cards))
		assert.NoError(t, err)
		assert.Equal(t, category, rank.Category, cards)
		assert.Equal(t, kickers, rank.Kickers, cards)
	}

	runTest(t, "14s,13s,12s,11s,10s", StraightFlush, []int{14, 13, 12, 11, 10})
	runTest(t, "6d,5d,4d,3d,2d", StraightFlush, []int{6, 5, 4, 3, 2})
	runTest(t, "9c,9d,9h,9s,2c", FourOfAKind, []int{9, 9, 9, 9, 2})
	runTest(t, "9c,9d,9h,2s,2c", FullHouse, []int{9, 9, 9, 2, 2})
	runTest(t, "14h,10h,8h,5h,2h", Flush, []int{14, 10, 8, 5, 2})
	runTest(t, "10c,9d,8h,7s,6c", Straight, []int{10, 9, 8, 7, 6})
	runTest(t, "9c,9d,9h,5s,2c", ThreeOfAKind, []int{9, 9, 9, 5, 2})
	runTest(t, "9c,9d,5h,5s,2c", TwoPair, []int{9, 9, 5, 5, 2})
	runTest(t, "9c,9d,7h,5s,2c", OnePair, []int{9, 9, 7, 5, 2})
	runTest(t, "13c,11d,9h,5s,2c", HighCard, []int{13, 11, 9, 5, 2})

	_, err := RankHand(deck.CardsFromString("2c,3c,4c,5c"))
	a.Equal(ErrWrongHandSize, err)

	_, err = RankHand(deck.CardsFromString("2c,3c,4c,5c,6c,7c"))
	a.Equal(ErrWrongHandSize, err)
}

// TestRankHand_Wheel documents the low-straight limitation: the ace is always
// ranked 14, so A-2-3-4-5 is not recognized as a straight. Do not "fix" this
// without revisiting every consumer of the ranking.
func TestRankHand_Wheel(t *testing.T) {
	a := assert.New(t)

	rank, err := RankHand(deck.CardsFromString("14h,2d,3c,4s,5h"))
	a.NoError(err)
	a.Equal(HighCard, rank.Category)
	a.Equal([]int{14, 5, 4, 3, 2}, rank.Kickers)

	// the suited variant is likewise a plain flush, not a straight flush
	rank, err = RankHand(deck.CardsFromString("14h,2h,3h,4h,5h"))
	a.NoError(err)
	a.Equal(Flush, rank.Category)
}

func TestRank_Compare_CategoryOrdering(t *testing.T) {
	a := assert.New(t)

	// weakest to strongest
	hands := []string{
		"13c,11d,9h,5s,2c",  // high card
		"9c,9d,7h,5s,2c",    // one pair
		"9c,9d,5h,5s,2c",    // two pair
		"9c,9d,9h,5s,2c",    // three of a kind
		"10c,9d,8h,7s,6c",   // straight
		"14h,10h,8h,5h,2h",  // flush
		"9c,9d,9h,2s,2c",    // full house
		"9c,9d,9h,9s,2c",    // four of a kind
		"14s,13s,12s,11s,10s", // straight flush
	}

	ranks := make([]Rank, len(hands))
	for i, hand := range hands {
		rank, err := RankHand(deck.CardsFromString(hand))
		a.NoError(err)
		ranks[i] = rank
	}

	for i := 1; i < len(ranks); i++ {
		a.Greater(ranks[i].Compare(ranks[i-1]), 0, hands[i])
	}
}

func TestRank_Compare_Kickers(t *testing.T) {
	a := assert.New(t)

	compare := func(h1, h2 string) int {
		r1, err := RankHand(deck.CardsFromString(h1))
		a.NoError(err)
		r2, err := RankHand(deck.CardsFromString(h2))
		a.NoError(err)
		return r1.Compare(r2)
	}

	// pair of kings beats pair of queens
	a.Greater(compare("13c,13d,7h,5s,2c", "12c,12d,7h,5s,2c"), 0)

	// same pair, higher side card wins
	a.Greater(compare("13c,13d,9h,5s,2c", "13h,13s,7h,5s,2c"), 0)

	// equal categories and equal kickers are equal
	a.Zero(compare("13c,13d,7h,5s,2c", "13h,13s,7d,5c,2d"))

	// ace-high flush beats king-high flush
	a.Greater(compare("14h,10h,8h,5h,2h", "13s,10s,8s,5s,2s"), 0)
}

func TestBestOf(t *testing.T) {
	a := assert.New(t)

	// seven cards holding a flush that needs the right five
	rank, err := BestOf(deck.CardsFromString("14h,9h,5h,3h,2h,13s,13d"))
	a.NoError(err)
	a.Equal(Flush, rank.Category)
	a.Equal([]int{14, 9, 5, 3, 2}, rank.Kickers)

	// a pair plus community straight picks the straight
	rank, err = BestOf(deck.CardsFromString("9c,9d,10c,11d,12h,13s,14c"))
	a.NoError(err)
	a.Equal(Straight, rank.Category)
	a.Equal([]int{14, 13, 12, 11, 10}, rank.Kickers)

	// five cards degenerate to RankHand
	rank, err = BestOf(deck.CardsFromString("9c,9d,7h,5s,2c"))
	a.NoError(err)
	a.Equal(OnePair, rank.Category)

	// six cards: drop the low kicker
	rank, err = BestOf(deck.CardsFromString("9c,9d,7h,5s,2c,14d"))
	a.NoError(err)
	a.Equal(OnePair, rank.Category)
	a.Equal([]int{14, 9, 9, 7, 5}, rank.Kickers)

	_, err = BestOf(deck.CardsFromString("2c,3c,4c,5c"))
	a.Equal(ErrInsufficientCards, err)
}

func TestForEachFiveCardSubset(t *testing.T) {
	a := assert.New(t)

	count := func(n int) int {
		c := 0
		forEachFiveCardSubset(n, func([]int) {
			c++
		})
		return c
	}

	a.Equal(1, count(5))
	a.Equal(6, count(6))
	a.Equal(21, count(7))
}
