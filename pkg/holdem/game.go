// Package holdem implements the betting state machine for a multi-round game
// of no-limit Texas Hold'em. The Game struct owns the entire table state; all
// operations mutate it through exclusive access and there are no package-level
// singletons.
package holdem

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/handrank"
)

// Options configures how the table is played
type Options struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int

	// Seed makes every shuffle reproducible; 0 uses a time-based seed per round
	Seed int64
}

// DefaultOptions returns the table defaults: 10/20 blinds and a 1,000 chip
// starting stack
func DefaultOptions() Options {
	return Options{
		SmallBlind:    10,
		BigBlind:      20,
		StartingStack: 1000,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if opts.StartingStack < opts.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}

	return nil
}

// Game owns the table state for a running game. Player stacks persist across
// rounds; everything else is rebuilt by ResetForNewRound.
type Game struct {
	logger  logrus.FieldLogger
	options Options

	players   []*Player
	deck      *deck.Deck
	round     int
	roundID   uuid.UUID
	pot       int
	community deck.Hand
	stage     Stage

	highestBet         int
	lastRaiserIndex    int
	dealerIndex        int
	smallBlindIndex    int
	bigBlindIndex      int
	currentPlayerIndex int

	winners  []*Player
	winLabel string
}

// NewGame seats the named players, each with the starting stack.
// The first round is not started; call StartRound.
func NewGame(logger logrus.FieldLogger, names []string, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(names) < 2 {
		return nil, errors.New("there must be at least two players")
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = newPlayer(name, i, opts.StartingStack)
	}

	return &Game{
		logger:          logger,
		options:         opts,
		players:         players,
		stage:           StageRoundComplete,
		lastRaiserIndex: -1,
		dealerIndex:     -1, // the first round seats the dealer at 0
	}, nil
}

// StartRound runs the full round setup: seat rotation, hole cards, and blinds
func (g *Game) StartRound() error {
	if err := g.ResetForNewRound(); err != nil {
		return err
	}

	if err := g.DealHands(); err != nil {
		return err
	}

	g.PostBlinds()
	return nil
}

// ResetForNewRound prepares the table for the next hand: a freshly shuffled
// deck, a zeroed pot, rotated dealer and blind seats, and reset per-round
// player state. ErrNoEligiblePlayers means everyone is eliminated and the
// game is over.
func (g *Game) ResetForNewRound() error {
	dealerIndex := (g.dealerIndex + 1) % len(g.players)

	smallBlindIndex, err := g.nextSeatWithChips(dealerIndex)
	if err != nil {
		return err
	}

	bigBlindIndex, err := g.nextSeatWithChips(smallBlindIndex)
	if err != nil {
		return err
	}

	firstToAct, err := g.nextSeatWithChips(bigBlindIndex)
	if err != nil {
		return err
	}

	g.dealerIndex = dealerIndex
	g.smallBlindIndex = smallBlindIndex
	g.bigBlindIndex = bigBlindIndex
	g.currentPlayerIndex = firstToAct

	g.round++
	g.roundID = uuid.New()

	var shuffleSeed int64
	if g.options.Seed != 0 {
		shuffleSeed = g.options.Seed + int64(g.round) - 1
	}

	g.deck = deck.New()
	g.deck.Shuffle(shuffleSeed)

	g.pot = 0
	g.community = make(deck.Hand, 0, 5)
	g.stage = StagePreflop
	g.highestBet = 0
	g.lastRaiserIndex = -1
	g.winners = nil
	g.winLabel = ""

	for _, p := range g.players {
		p.resetForNewRound()
	}

	g.logger.WithFields(logrus.Fields{
		"round":   g.round,
		"roundId": g.roundID,
		"dealer":  g.dealerIndex,
	}).Info("new round")

	return nil
}

// DealHands gives two hole cards to every player still holding chips.
// Eliminated players receive none.
func (g *Game) DealHands() error {
	for _, p := range g.players {
		if p.stack == 0 {
			continue
		}

		cards, err := g.deck.DrawN(2)
		if err != nil {
			return err
		}

		for _, card := range cards {
			p.receiveCard(card)
		}
	}

	return nil
}

// PostBlinds forces the small and big blind bets and opens the pot.
// A short stack posts all-in, but the table's highest bet is still the full
// big blind.
func (g *Game) PostBlinds() {
	smallBlind := g.players[g.smallBlindIndex]
	g.pot += smallBlind.bet(g.options.SmallBlind)

	bigBlind := g.players[g.bigBlindIndex]
	g.pot += bigBlind.bet(g.options.BigBlind)

	g.highestBet = g.options.BigBlind

	g.logger.WithFields(logrus.Fields{
		"round":      g.round,
		"smallBlind": smallBlind.Name,
		"bigBlind":   bigBlind.Name,
		"pot":        g.pot,
	}).Info("blinds posted")
}

// CurrentActor returns the player whose turn it is
func (g *Game) CurrentActor() *Player {
	return g.players[g.currentPlayerIndex]
}

// MinRaise returns the table's minimum raise: twice the big blind before the
// flop, one big blind after
func (g *Game) MinRaise() int {
	if g.stage == StagePreflop {
		return g.options.BigBlind * 2
	}

	return g.options.BigBlind
}

// LegalActions reports what the current actor may do. The call action carries
// the chips required; the raise action carries the minimum raise, with the
// actor's stack as the implicit maximum. Nil once the round is complete.
func (g *Game) LegalActions() []Action {
	if g.stage >= StageShowdown {
		return nil
	}

	p := g.CurrentActor()

	actions := make([]Action, 0, 4)
	if p.currentBet == g.highestBet {
		actions = append(actions, NewAction(Check))
	} else {
		actions = append(actions, Action{Type: Call, Amount: g.callAmount(p)})
	}

	if minRaise := g.MinRaise(); minRaise <= p.stack {
		actions = append(actions, NewRaise(minRaise))
	}

	return append(actions, NewAction(Fold))
}

// Apply validates and applies an action for the current actor. Rejections are
// InvalidActionError values and leave the game state untouched; the engine
// never guesses intent.
//
// A raise amount is validated against the stack alone, so when the call
// portion plus the raise exceeds the stack the commit is capped at an all-in
// and the effective raise lands below the requested amount, possibly below
// the table's highest bet.
func (g *Game) Apply(act Action) (*Result, error) {
	if g.stage >= StageShowdown {
		return nil, newInvalidActionError("the round is complete")
	}

	p := g.CurrentActor()

	switch act.Type {
	case Check:
		if p.currentBet != g.highestBet {
			return nil, newInvalidActionError("cannot check with ${%d} outstanding", g.highestBet-p.currentBet)
		}

		p.hasActed = true
	case Call:
		if p.currentBet == g.highestBet {
			return nil, newInvalidActionError("cannot call without an outstanding bet")
		}

		g.pot += p.bet(g.callAmount(p))
		p.hasActed = true
	case Raise:
		if err := g.validateRaise(p, act.Amount); err != nil {
			return nil, err
		}

		callPortion := g.highestBet - p.currentBet
		g.pot += p.bet(callPortion + act.Amount)

		if p.currentBet > g.highestBet {
			g.highestBet = p.currentBet
		}

		// an all-in raise is not tracked as the aggressor and does not
		// reopen the betting
		if p.stack > 0 {
			g.lastRaiserIndex = p.Position
		}

		p.hasActed = true
	case Fold:
		p.folded = true
		p.hasActed = true
	default:
		return nil, newInvalidActionError("%s is not a valid action", string(act.Type))
	}

	g.logger.WithFields(logrus.Fields{
		"round":  g.round,
		"player": p.Name,
		"stage":  g.stage.String(),
		"pot":    g.pot,
	}).Info(act.Type.LogMessage(act.Amount))

	if act.Type == Fold {
		if active := g.activePlayers(); len(active) == 1 {
			return g.endHandEarly(active[0])
		}
	}

	return g.advanceTurn()
}

func (g *Game) validateRaise(p *Player, amount int) error {
	if minRaise := g.MinRaise(); amount < minRaise {
		return newInvalidActionError("raise must be at least ${%d}", minRaise)
	}

	if amount > p.stack {
		return newInvalidActionError("raise of ${%d} exceeds stack of ${%d}", amount, p.stack)
	}

	return nil
}

func (g *Game) callAmount(p *Player) int {
	amount := g.highestBet - p.currentBet
	if amount > p.stack {
		amount = p.stack
	}

	return amount
}

// advanceTurn moves the action to the next seat and advances the stage once
// the betting round has completed
func (g *Game) advanceTurn() (*Result, error) {
	g.currentPlayerIndex = g.nextActionableSeat(g.currentPlayerIndex)

	if !g.bettingComplete() {
		return &Result{Event: EventActionApplied, Stage: g.stage}, nil
	}

	return g.nextStage()
}

// nextActionableSeat returns the next seat with a decision left to make:
// not folded and not all-in. Falls back to the starting seat when nobody
// qualifies.
func (g *Game) nextActionableSeat(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		p := g.players[seat]
		if !p.folded && p.stack > 0 {
			return seat
		}
	}

	return from
}

// nextSeatWithChips scans forward from the seat after from and returns the
// first seat holding chips
func (g *Game) nextSeatWithChips(from int) (int, error) {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if g.players[seat].stack > 0 {
			return seat, nil
		}
	}

	return 0, ErrNoEligiblePlayers
}

// allPlayersActed returns true once every player still holding chips has
// either acted this stage or folded
func (g *Game) allPlayersActed() bool {
	for _, p := range g.players {
		if p.stack == 0 {
			continue
		}

		if !p.hasActed && !p.folded {
			return false
		}
	}

	return true
}

// bettingComplete is true once everyone has responded and, if there was a
// raise this stage, the action has returned to the last raiser
func (g *Game) bettingComplete() bool {
	if g.lastRaiserIndex >= 0 {
		return g.currentPlayerIndex == g.lastRaiserIndex && g.allPlayersActed()
	}

	return g.allPlayersActed()
}

// nextStage advances the hand to the next street, dealing community cards as
// it goes. When one or zero players can still bet, the remaining streets are
// run out with no further betting.
func (g *Game) nextStage() (*Result, error) {
	for {
		switch g.stage {
		case StagePreflop:
			g.stage = StageFlop
		case StageFlop:
			g.stage = StageTurn
		case StageTurn:
			g.stage = StageRiver
		case StageRiver:
			return g.showdown()
		}

		if err := g.dealCommunityCards(g.stage.communityCardCount() - len(g.community)); err != nil {
			return nil, err
		}

		if g.actionableActiveCount() > 1 {
			break
		}
	}

	g.startBettingStage()
	return &Result{Event: EventStageAdvanced, Stage: g.stage}, nil
}

// startBettingStage resets the per-stage betting state and seats the first
// eligible player after the big blind
func (g *Game) startBettingStage() {
	g.highestBet = 0
	g.lastRaiserIndex = -1

	for _, p := range g.players {
		p.currentBet = 0
		p.hasActed = false
	}

	g.currentPlayerIndex = g.nextActionableSeat(g.bigBlindIndex)

	g.logger.WithFields(logrus.Fields{
		"round":     g.round,
		"stage":     g.stage.String(),
		"community": g.community.String(),
	}).Info("betting stage started")
}

func (g *Game) dealCommunityCards(n int) error {
	cards, err := g.deck.DrawN(n)
	if err != nil {
		return err
	}

	g.community = append(g.community, cards...)
	return nil
}

// activePlayers returns the unfolded players who were dealt into the hand
func (g *Game) activePlayers() []*Player {
	active := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if !p.folded && len(p.hand) > 0 {
			active = append(active, p)
		}
	}

	return active
}

// actionableActiveCount counts unfolded players who still have chips to bet
func (g *Game) actionableActiveCount() int {
	count := 0
	for _, p := range g.activePlayers() {
		if p.stack > 0 {
			count++
		}
	}

	return count
}

// showdown evaluates the remaining hands, splits the pot among the winners,
// and closes the round. An uneven split pays the extra chips to the earliest
// winning seats.
func (g *Game) showdown() (*Result, error) {
	g.stage = StageShowdown

	active := g.activePlayers()
	hands := make([]deck.Hand, len(active))
	for i, p := range active {
		hands[i] = p.hand
	}

	winnerIndexes, label, err := handrank.FindWinner(hands, g.community)
	if err != nil {
		return nil, err
	}

	winners := make([]*Player, len(winnerIndexes))
	for i, idx := range winnerIndexes {
		winners[i] = active[idx]
	}

	awarded := g.pot
	share := awarded / len(winners)
	remainder := awarded % len(winners)
	for i, w := range winners {
		payout := share
		if i < remainder {
			payout++
		}

		w.stack += payout
	}

	g.pot = 0
	g.winners = winners
	g.winLabel = label
	g.stage = StageRoundComplete

	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}

	g.logger.WithFields(logrus.Fields{
		"round":   g.round,
		"winners": names,
		"hand":    label,
		"awarded": awarded,
	}).Info("showdown")

	return &Result{
		Event:      EventShowdown,
		Stage:      g.stage,
		Winners:    winners,
		WinLabel:   label,
		PotAwarded: awarded,
	}, nil
}

// endHandEarly pays the last unfolded player and rolls straight into the next
// hand without a showdown
func (g *Game) endHandEarly(winner *Player) (*Result, error) {
	awarded := g.pot
	winner.stack += awarded
	g.pot = 0
	g.winners = []*Player{winner}
	g.winLabel = "all others folded"
	g.stage = StageRoundComplete

	g.logger.WithFields(logrus.Fields{
		"round":   g.round,
		"winner":  winner.Name,
		"awarded": awarded,
	}).Info("hand ended early")

	result := &Result{
		Event:      EventRoundEnded,
		Stage:      g.stage,
		Winners:    []*Player{winner},
		WinLabel:   g.winLabel,
		PotAwarded: awarded,
	}

	// the winner holds chips, so the next round can always be seated
	if err := g.StartRound(); err != nil {
		return nil, err
	}

	return result, nil
}

// Players returns the seats in table order
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)

	return players
}

// Stage returns the current stage
func (g *Game) Stage() Stage {
	return g.stage
}

// Pot returns the chips in the pot
func (g *Game) Pot() int {
	return g.pot
}

// HighestBet returns the largest outstanding bet this stage
func (g *Game) HighestBet() int {
	return g.highestBet
}

// Community returns a copy of the community cards
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// Round returns the 1-based round counter
func (g *Game) Round() int {
	return g.round
}

// RoundID returns the unique identifier of the current round
func (g *Game) RoundID() uuid.UUID {
	return g.roundID
}

// Winners returns the winners of the last completed round and the winning
// hand's label
func (g *Game) Winners() ([]*Player, string) {
	return g.winners, g.winLabel
}
