package search

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned when the frontier is empty and an extraction
// or step was requested. The session cannot make further progress.
var ErrExhausted = errors.New("frontier exhausted")

// ErrNoLegalMoves is returned by BestMove when the root state has no
// successors.
var ErrNoLegalMoves = errors.New("no legal moves")

// ContractError reports caller misuse of the engine API, such as calling
// BestMove when the frontier does not hold exactly the root node. It is
// not recoverable by retrying.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
