package holdem

import "encoding/json"

// Stage represents where the hand is in the betting sequence
type Stage int

// constants for Stage
const (
	StagePreflop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
	StageRoundComplete
)

func (s Stage) String() string {
	switch s {
	case StagePreflop:
		return "preflop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	case StageRoundComplete:
		return "round-complete"
	}

	return ""
}

// communityCardCount is how many community cards are on the table by the end
// of the stage
func (s Stage) communityCardCount() int {
	switch s {
	case StagePreflop:
		return 0
	case StageFlop:
		return 3
	case StageTurn:
		return 4
	}

	return 5
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
