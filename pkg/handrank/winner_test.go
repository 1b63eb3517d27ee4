package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-engine/pkg/deck"
)

func TestFindWinner(t *testing.T) {
	a := assert.New(t)

	community := deck.CardsFromString("10c,6d,2h,13s,7c")

	hands := []deck.Hand{
		deck.CardsFromString("14s,3d"),  // high card
		deck.CardsFromString("13d,13h"), // trip kings
		deck.CardsFromString("10d,10h"), // trip tens
	}

	winners, label, err := FindWinner(hands, community)
	a.NoError(err)
	a.Equal([]int{1}, winners)
	a.Equal("Three of a kind", label)
}

func TestFindWinner_Tie(t *testing.T) {
	a := assert.New(t)

	// the straight on the board plays for everyone
	community := deck.CardsFromString("10c,11d,12h,13s,14c")

	hands := []deck.Hand{
		deck.CardsFromString("2s,3d"),
		deck.CardsFromString("4d,5h"),
		deck.CardsFromString("2c,9d"),
	}

	winners, label, err := FindWinner(hands, community)
	a.NoError(err)
	a.Equal([]int{0, 1, 2}, winners)
	a.Equal("Straight", label)
}

func TestFindWinner_LaterSeatWins(t *testing.T) {
	a := assert.New(t)

	community := deck.CardsFromString("10c,6d,2h,13s,7c")

	hands := []deck.Hand{
		deck.CardsFromString("6h,6s"), // trip sixes
		deck.CardsFromString("7d,7h"), // trip sevens
	}

	winners, label, err := FindWinner(hands, community)
	a.NoError(err)
	a.Equal([]int{1}, winners)
	a.Equal("Three of a kind", label)
}

func TestFindWinner_Errors(t *testing.T) {
	a := assert.New(t)

	_, _, err := FindWinner(nil, deck.CardsFromString("10c,6d,2h,13s,7c"))
	a.Equal(ErrNoHands, err)

	// too few cards to rank
	_, _, err = FindWinner([]deck.Hand{deck.CardsFromString("2s,3d")}, deck.CardsFromString("10c,6d"))
	a.Equal(ErrInsufficientCards, err)
}
