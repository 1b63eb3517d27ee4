package holdem

import (
	"encoding/json"
	"fmt"
)

// ActionType identifies an action a player can take
type ActionType string

// action type constants
const (
	Check ActionType = "check"
	Call  ActionType = "call"
	Raise ActionType = "raise"
	Fold  ActionType = "fold"
)

var allowedActionTypes = map[ActionType]bool{
	Check: true,
	Call:  true,
	Raise: true,
	Fold:  true,
}

// ActionTypeFromString returns an action type for the given string
func ActionTypeFromString(s string) (ActionType, error) {
	if _, ok := allowedActionTypes[ActionType(s)]; ok {
		return ActionType(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a ActionType) String() string {
	switch a {
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case Fold:
		return "Fold"
	}

	panic("unknown action")
}

// IsValid returns true if the action type is permitted
func (a ActionType) IsValid() bool {
	_, ok := allowedActionTypes[a]
	return ok
}

// MarshalJSON encodes the action type into JSON
func (a ActionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// LogMessage returns a message formatted for the log
func (a ActionType) LogMessage(amount int) string {
	switch a {
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised by ${%d}", amount)
	case Fold:
		return "folded"
	}

	return ""
}

// Action is a submitted player action. For a call, Amount reports the chips
// required; for a raise it is the amount on top of the call. It is ignored
// for checks and folds.
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount"`
}

// NewAction returns an action with no amount
func NewAction(t ActionType) Action {
	return Action{Type: t}
}

// NewRaise returns a raise of the given amount above the call
func NewRaise(amount int) Action {
	return Action{Type: Raise, Amount: amount}
}
