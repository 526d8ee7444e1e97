package pdg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Move is the index of an action in a player's payout table.
type Move int

const (
	Cooperate Move = iota
	Defect
)

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// ParseMove parses "c"/"cooperate", "d"/"defect" or a numeric action
// index, which must be in [0, numActions).
func ParseMove(s string, numActions int) (Move, error) {
	var m Move
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "cooperate":
		m = Cooperate
	case "d", "defect":
		m = Defect
	default:
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errors.Errorf("invalid move %q", s)
		}
		m = Move(i)
	}

	if m < 0 || int(m) >= numActions {
		return 0, errors.Errorf("move %d out of range [0, %d)", int(m), numActions)
	}

	return m, nil
}
