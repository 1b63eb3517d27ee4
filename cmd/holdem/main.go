// Command holdem runs an automated four-player game in the terminal. Every
// seat is played by a simple equity-driven policy, which makes the command a
// convenient smoke test for the whole engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/config"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/equity"
	"holdem-engine/pkg/holdem"
)

// Version is the build version
var Version = "v0.0.0-dev"

var (
	rounds = flag.Int("rounds", 10, "the number of rounds to play")
	seed   = flag.Int64("seed", 0, "shuffle seed for reproducible games (0 picks a random seed)")
)

// gameSeed is the resolved seed shared by the shuffler and the equity policy
var gameSeed int64

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	gameSeed = *seed
	if gameSeed == 0 {
		// pick a real seed so the game can be replayed with -seed
		gameSeed = int64(rng.Crypto{}.Intn(1<<31-1)) + 1
		logrus.WithField("seed", gameSeed).Info("picked random seed")
	}

	opts := holdem.Options{
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
		StartingStack: cfg.StartingStack,
		Seed:          gameSeed,
	}

	game, err := holdem.NewGame(logrus.StandardLogger(), cfg.Players, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	pterm.DefaultHeader.Printfln("hold'em %s", Version)

	for {
		if game.Stage() == holdem.StageRoundComplete {
			if game.Round() >= *rounds || seatsWithChips(game) < 2 {
				break
			}

			if err := game.StartRound(); err != nil {
				if errors.Is(err, holdem.ErrNoEligiblePlayers) {
					break
				}

				logrus.WithError(err).Fatal("could not start round")
			}

			pterm.DefaultSection.Printfln("round %d", game.Round())
		}

		if err := playTurn(game, cfg); err != nil {
			logrus.WithError(err).Fatal("could not play turn")
		}
	}

	renderStacks(game)
}

// playTurn decides and applies one action for the current actor
func playTurn(game *holdem.Game, cfg config.Config) error {
	actor := game.CurrentActor()
	act := decideAction(game, cfg)

	res, err := game.Apply(act)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("%s %s", actor.Name, act.Type.LogMessage(act.Amount))

	switch res.Event {
	case holdem.EventStageAdvanced:
		pterm.Info.Printfln("%s: %s (pot %d)", res.Stage, game.Community(), game.Pot())
	case holdem.EventShowdown:
		renderWinners(res)
	case holdem.EventRoundEnded:
		// the next round was set up automatically
		renderWinners(res)
		pterm.DefaultSection.Printfln("round %d", game.Round())
	}

	return nil
}

// decideAction runs the equity simulator against the other live hands. An
// in-process demo is allowed to peek; a real front end would only know the
// hero's own cards and pass zero known opponents.
func decideAction(game *holdem.Game, cfg config.Config) holdem.Action {
	actor := game.CurrentActor()
	actions := game.LegalActions()

	var opponents []deck.Hand
	for _, p := range game.Players() {
		if p.Position != actor.Position && !p.Folded() && len(p.Hand()) == 2 {
			opponents = append(opponents, p.Hand())
		}
	}

	est, err := equity.Estimate(actor.Hand(), game.Community(), opponents, equity.Options{
		Trials:  cfg.Equity.Trials,
		Workers: cfg.Equity.Workers,
		Seed:    gameSeed,
	})
	if err != nil {
		// fall back to the cheapest action
		return actions[0]
	}

	var canRaise bool
	for _, act := range actions {
		if act.Type == holdem.Raise {
			canRaise = true
		}
	}

	switch {
	case est.Win >= 0.7 && canRaise:
		return holdem.NewRaise(game.MinRaise())
	case est.Win+est.Tie >= 0.25 || actions[0].Type == holdem.Check:
		return actions[0]
	default:
		return holdem.NewAction(holdem.Fold)
	}
}

func renderWinners(res *holdem.Result) {
	names := make([]string, len(res.Winners))
	for i, w := range res.Winners {
		names[i] = w.Name
	}

	pterm.Success.Printfln("%s won %d (%s)", strings.Join(names, ", "), res.PotAwarded, res.WinLabel)
}

func renderStacks(game *holdem.Game) {
	data := pterm.TableData{{"seat", "player", "stack"}}
	for _, p := range game.Players() {
		data = append(data, []string{
			fmt.Sprintf("%d", p.Position),
			p.Name,
			fmt.Sprintf("%d", p.Stack()),
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func seatsWithChips(game *holdem.Game) int {
	count := 0
	for _, p := range game.Players() {
		if p.Stack() > 0 {
			count++
		}
	}

	return count
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
