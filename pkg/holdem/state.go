package holdem

import "holdem-engine/pkg/deck"

// PlayerState is the JSON-friendly view of a seat. Hand is only populated for
// seats the caller is authorized to see.
type PlayerState struct {
	Name       string    `json:"name"`
	Position   int       `json:"position"`
	Stack      int       `json:"stack"`
	CurrentBet int       `json:"currentBet"`
	Folded     bool      `json:"folded"`
	Hand       deck.Hand `json:"hand,omitempty"`
}

// GameState is the JSON-friendly snapshot of the table
type GameState struct {
	Round        int           `json:"round"`
	RoundID      string        `json:"roundId"`
	Stage        Stage         `json:"stage"`
	Pot          int           `json:"pot"`
	HighestBet   int           `json:"highestBet"`
	Community    deck.Hand     `json:"community"`
	Dealer       int           `json:"dealer"`
	SmallBlind   int           `json:"smallBlind"`
	BigBlind     int           `json:"bigBlind"`
	CurrentTurn  int           `json:"currentTurn"`
	Players      []PlayerState `json:"players"`
	Winners      []int         `json:"winners,omitempty"`
	WinningLabel string        `json:"winningLabel,omitempty"`
}

// State returns a snapshot of the game. Hole cards are only included for the
// seats listed in authorizedSeats, so a caller can render a single player's
// view without leaking the other hands.
func (g *Game) State(authorizedSeats ...int) *GameState {
	authorized := make(map[int]bool, len(authorizedSeats))
	for _, seat := range authorizedSeats {
		authorized[seat] = true
	}

	players := make([]PlayerState, len(g.players))
	for i, p := range g.players {
		ps := PlayerState{
			Name:       p.Name,
			Position:   p.Position,
			Stack:      p.stack,
			CurrentBet: p.currentBet,
			Folded:     p.folded,
		}

		if authorized[p.Position] {
			ps.Hand = p.hand.Clone()
		}

		players[i] = ps
	}

	var winners []int
	for _, w := range g.winners {
		winners = append(winners, w.Position)
	}

	return &GameState{
		Round:        g.round,
		RoundID:      g.roundID.String(),
		Stage:        g.stage,
		Pot:          g.pot,
		HighestBet:   g.highestBet,
		Community:    g.community.Clone(),
		Dealer:       g.dealerIndex,
		SmallBlind:   g.smallBlindIndex,
		BigBlind:     g.bigBlindIndex,
		CurrentTurn:  g.currentPlayerIndex,
		Players:      players,
		Winners:      winners,
		WinningLabel: g.winLabel,
	}
}
