// Command equity estimates win and tie probabilities for a hold'em hand.
//
// Cards are rank-and-suit pairs like 14s (ace of spades) or 10h; hands are
// comma-separated and multiple opponent hands are separated by semicolons:
//
//	equity -hand 14s,14h -community 2c,7d,9s -opponents 13c,13d;8h,8s
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/config"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/equity"
)

var (
	hand      = flag.String("hand", "", "the hero's two hole cards (e.g., 14s,13s)")
	community = flag.String("community", "", "0, 3, 4, or 5 community cards")
	opponents = flag.String("opponents", "", "known opponent hands, separated by semicolons")
	trials    = flag.Int("trials", 0, "trial count (defaults to the configured value)")
	workers   = flag.Int("workers", 0, "worker count (defaults to the configured value)")
	seed      = flag.Int64("seed", 0, "random seed for reproducible runs")
)

func main() {
	flag.Parse()

	hero, err := parseCards(*hand)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse -hand")
	}

	board, err := parseCards(*community)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse -community")
	}

	var known []deck.Hand
	if *opponents != "" {
		for _, s := range strings.Split(*opponents, ";") {
			opp, err := parseCards(s)
			if err != nil {
				logrus.WithError(err).Fatal("could not parse -opponents")
			}

			known = append(known, opp)
		}
	}

	cfg := config.Instance()
	opts := equity.Options{
		Trials:  cfg.Equity.Trials,
		Workers: cfg.Equity.Workers,
		Seed:    *seed,
	}

	if *trials > 0 {
		opts.Trials = *trials
	}

	if *workers > 0 {
		opts.Workers = *workers
	}

	result, err := equity.Estimate(hero, board, known, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not estimate equity")
	}

	pterm.DefaultSection.Printfln("%s vs %d known opponent(s)", hero, len(known))
	_ = pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"win", "tie", "trials"},
		{
			fmt.Sprintf("%.1f%%", result.Win*100),
			fmt.Sprintf("%.1f%%", result.Tie*100),
			fmt.Sprintf("%d", opts.Trials),
		},
	}).Render()
}

// parseCards converts a comma-separated card list, recovering from the panic
// the deck package raises on malformed input
func parseCards(s string) (cards deck.Hand, err error) {
	if s == "" {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return deck.CardsFromString(s), nil
}
