// Package handrank evaluates five-card poker hands and selects the best hand
// from a larger set of cards.
package handrank

import (
	"errors"
	"sort"

	"holdem-engine/pkg/deck"
)

// ErrWrongHandSize is an error when RankHand is given anything but five cards
var ErrWrongHandSize = errors.New("hand must contain exactly five cards")

// ErrInsufficientCards is an error when fewer than five cards are available
var ErrInsufficientCards = errors.New("need at least five cards")

// ErrNoHands is an error when there are no hands to compare
var ErrNoHands = errors.New("no hands to evaluate")

// Rank is the outcome of evaluating a five-card hand: the category plus all
// five card ranks sorted descending. The kickers are raw sorted values used
// only for lexicographic tie-breaks within the same category; there is no
// kicker pruning.
type Rank struct {
	Category Category `json:"category"`
	Kickers  []int    `json:"kickers"`
}

// Compare returns a negative number if r is weaker than other, zero if they
// are equal, and a positive number if r is stronger
func (r Rank) Compare(other Rank) int {
	if r.Category != other.Category {
		return int(r.Category) - int(other.Category)
	}

	for i, kicker := range r.Kickers {
		if i >= len(other.Kickers) {
			return 1
		}

		if kicker != other.Kickers[i] {
			return kicker - other.Kickers[i]
		}
	}

	if len(r.Kickers) < len(other.Kickers) {
		return -1
	}

	return 0
}

// RankHand evaluates exactly five cards.
//
// A straight is five distinct ranks spanning exactly four, so the wheel
// (A-2-3-4-5) does not qualify: the ace is always ranked 14 and the hand
// falls through to high card. This is a known, intentionally preserved
// limitation.
func RankHand(cards deck.Hand) (Rank, error) {
	if len(cards) != 5 {
		return Rank{}, ErrWrongHandSize
	}

	kickers := make([]int, 5)
	counts := make(map[int]int)
	flush := true
	for i, card := range cards {
		kickers[i] = card.Rank
		counts[card.Rank]++

		if card.Suit != cards[0].Suit {
			flush = false
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(kickers)))

	straight := len(counts) == 5 && kickers[0]-kickers[4] == 4

	var pairs, trips, quads int
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	var category Category
	switch {
	case straight && flush:
		category = StraightFlush
	case quads == 1:
		category = FourOfAKind
	case trips == 1 && pairs == 1:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case trips == 1:
		category = ThreeOfAKind
	case pairs == 2:
		category = TwoPair
	case pairs == 1:
		category = OnePair
	default:
		category = HighCard
	}

	return Rank{Category: category, Kickers: kickers}, nil
}

// BestOf evaluates every five-card subset of the given cards and returns the
// strongest rank. Intended for the five to seven cards a hold'em player can
// draw from at showdown.
func BestOf(cards deck.Hand) (Rank, error) {
	if len(cards) < 5 {
		return Rank{}, ErrInsufficientCards
	}

	var best Rank
	found := false
	forEachFiveCardSubset(len(cards), func(idx []int) {
		five := deck.Hand{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]}

		// RankHand cannot fail on a five-card subset
		rank, _ := RankHand(five)
		if !found || rank.Compare(best) > 0 {
			best = rank
			found = true
		}
	})

	return best, nil
}

// forEachFiveCardSubset visits every 5-combination of indices in [0, n)
func forEachFiveCardSubset(n int, fn func(idx []int)) {
	idx := []int{0, 1, 2, 3, 4}
	for {
		fn(idx)

		i := 4
		for i >= 0 && idx[i] == n-5+i {
			i--
		}

		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < 5; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
