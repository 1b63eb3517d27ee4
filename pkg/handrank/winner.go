package handrank

import "holdem-engine/pkg/deck"

// FindWinner combines each hand with the community cards, evaluates the best
// five-card hand for each, and returns the indices of the winners along with
// the winning category's label.
//
// A hand strictly stronger than the running best replaces the winner set; an
// exact (category, kickers) tie joins it. Cross-suit nuances such as flush
// suit ordering are not modeled.
func FindWinner(hands []deck.Hand, community deck.Hand) ([]int, string, error) {
	if len(hands) == 0 {
		return nil, "", ErrNoHands
	}

	var best Rank
	winners := make([]int, 0, len(hands))

	for i, hand := range hands {
		combined := make(deck.Hand, 0, len(hand)+len(community))
		combined = append(combined, hand...)
		combined = append(combined, community...)

		rank, err := BestOf(combined)
		if err != nil {
			return nil, "", err
		}

		if cmp := rank.Compare(best); len(winners) == 0 || cmp > 0 {
			best = rank
			winners = append(winners[:0], i)
		} else if cmp == 0 {
			winners = append(winners, i)
		}
	}

	return winners, best.Category.String(), nil
}
