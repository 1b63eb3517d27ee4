package holdem

import "holdem-engine/pkg/deck"

// Player is a seat at the table. The stack persists across rounds; the hand,
// bet, and action-tracking fields reset at the start of every round.
type Player struct {
	Name     string
	Position int

	hand       deck.Hand
	stack      int
	currentBet int
	folded     bool
	hasActed   bool
}

func newPlayer(name string, position, stack int) *Player {
	return &Player{
		Name:     name,
		Position: position,
		hand:     make(deck.Hand, 0, 2),
		stack:    stack,
	}
}

// Stack returns the chips the player has left
func (p *Player) Stack() int {
	return p.stack
}

// CurrentBet returns the chips the player has committed this betting stage
func (p *Player) CurrentBet() int {
	return p.currentBet
}

// Folded returns true if the player folded this round
func (p *Player) Folded() bool {
	return p.folded
}

// HasActed returns true if the player has acted this betting stage
func (p *Player) HasActed() bool {
	return p.hasActed
}

// Hand returns a copy of the player's hole cards
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// bet commits up to amount chips from the stack, capping at an all-in.
// The value returned is the amount actually committed.
func (p *Player) bet(amount int) int {
	if amount > p.stack {
		amount = p.stack
	}

	p.currentBet += amount
	p.stack -= amount

	return amount
}

func (p *Player) receiveCard(card *deck.Card) {
	p.hand.AddCard(card)
}

func (p *Player) resetForNewRound() {
	p.hand = make(deck.Hand, 0, 2)
	p.currentBet = 0
	p.folded = false
	p.hasActed = false
}
