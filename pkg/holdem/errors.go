package holdem

import (
	"errors"
	"fmt"
)

// ErrNoEligiblePlayers is an error when seat rotation cannot find any player
// with a positive stack. It signals the game is over, not a bug.
var ErrNoEligiblePlayers = errors.New("no players with a positive stack remain")

// InvalidActionError is a recoverable rejection of an illegal action.
// The game state is unchanged and the caller is expected to re-prompt.
type InvalidActionError string

func (e InvalidActionError) Error() string {
	return string(e)
}

func newInvalidActionError(format string, a ...interface{}) InvalidActionError {
	return InvalidActionError(fmt.Sprintf(format, a...))
}
