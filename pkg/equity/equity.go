// Package equity estimates a hold'em hand's chance of winning by Monte Carlo
// simulation. It is a pure layer over the deck and hand evaluator and never
// touches live table state.
package equity

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/handrank"
)

// ErrDuplicateCard is an error when the same card appears twice in the input
var ErrDuplicateCard = errors.New("duplicate card in input")

// ErrNotEnoughCards is an error when the known cards leave too few cards in
// the deck to complete the board
var ErrNotEnoughCards = errors.New("not enough cards left in the deck to complete the board")

// Options configures a simulation run
type Options struct {
	// Trials is the number of random board completions; 0 means 1,000
	Trials int

	// Seed makes the run reproducible; 0 uses a time-based seed
	Seed int64

	// Workers is the number of goroutines trials are split across; 0 means 1
	Workers int
}

// Result holds the estimated probabilities. A trial only counts as a win when
// the hero strictly beats every opponent, and only as a tie when the hero ties
// every opponent. A trial where the hero beats some opponents and ties the
// rest counts as neither; this scoring gap is intentionally preserved.
type Result struct {
	Win float64 `json:"win"`
	Tie float64 `json:"tie"`
}

// Estimate runs repeated random board completions and reports how often the
// hero's best five-card hand beats or ties every known opponent hand. The
// community may hold 0, 3, 4, or 5 cards; each trial completes it to 5 from a
// freshly shuffled deck with all known cards removed.
func Estimate(hero deck.Hand, community deck.Hand, opponents []deck.Hand, opts Options) (Result, error) {
	if err := validateInput(hero, community, opponents); err != nil {
		return Result{}, err
	}

	trials := opts.Trials
	if trials <= 0 {
		trials = 1000
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	if workers > trials {
		workers = trials
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	known := make(deck.Hand, 0, len(hero)+len(community)+len(opponents)*2)
	known = append(known, hero...)
	known = append(known, community...)
	for _, opp := range opponents {
		known = append(known, opp...)
	}

	type counts struct {
		wins, ties int
	}

	results := make(chan counts, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		n := trials / workers
		if w < trials%workers {
			n++
		}

		wg.Add(1)
		go func(generator rng.Generator, n int) {
			defer wg.Done()

			var c counts
			for i := 0; i < n; i++ {
				win, tie := runTrial(generator, hero, community, opponents, known)
				if win {
					c.wins++
				} else if tie {
					c.ties++
				}
			}

			results <- c
		}(rng.Seeded(seed+int64(w)), n)
	}

	wg.Wait()
	close(results)

	var wins, ties int
	for c := range results {
		wins += c.wins
		ties += c.ties
	}

	return Result{
		Win: float64(wins) / float64(trials),
		Tie: float64(ties) / float64(trials),
	}, nil
}

// runTrial completes the board once and scores the hero against every
// opponent
func runTrial(generator rng.Generator, hero, community deck.Hand, opponents []deck.Hand, known deck.Hand) (win, tie bool) {
	d := deck.New()
	d.ShuffleWith(generator)
	d.RemoveCards(known)

	// validateInput guarantees the deck still holds a full runout after the
	// known cards are removed
	drawn, _ := d.DrawN(5 - len(community))

	board := make(deck.Hand, 0, 5)
	board = append(board, community...)
	board = append(board, drawn...)

	heroRank, _ := handrank.BestOf(append(hero.Clone(), board...))

	beatsAll, tiesAll := true, true
	for _, opp := range opponents {
		oppRank, _ := handrank.BestOf(append(opp.Clone(), board...))

		c := heroRank.Compare(oppRank)
		if c <= 0 {
			beatsAll = false
		}

		if c != 0 {
			tiesAll = false
		}
	}

	// beating some opponents while tying others scores as neither a win nor
	// a tie
	if beatsAll {
		return true, false
	}

	return false, tiesAll
}

func validateInput(hero deck.Hand, community deck.Hand, opponents []deck.Hand) error {
	if len(hero) != 2 {
		return fmt.Errorf("hero hand must contain exactly two cards, got %d", len(hero))
	}

	switch len(community) {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("community must contain 0, 3, 4, or 5 cards, got %d", len(community))
	}

	for i, opp := range opponents {
		if len(opp) != 2 {
			return fmt.Errorf("opponent %d must contain exactly two cards, got %d", i, len(opp))
		}
	}

	seen := make(map[string]bool)
	check := func(cards deck.Hand) error {
		for _, card := range cards {
			key := card.String()
			if seen[key] {
				return ErrDuplicateCard
			}

			seen[key] = true
		}

		return nil
	}

	if err := check(hero); err != nil {
		return err
	}

	if err := check(community); err != nil {
		return err
	}

	for _, opp := range opponents {
		if err := check(opp); err != nil {
			return err
		}
	}

	// every trial must be able to run the board out to five cards
	if 52-len(seen) < 5-len(community) {
		return ErrNotEnoughCards
	}

	return nil
}
