package pdg

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DefaultRounds is the length of a match when none is given.
const DefaultRounds = 4

// Round records the moves of both seats.
type Round [2]Move

func (r Round) String() string {
	return fmt.Sprintf("(%v, %v)", r[Seat0], r[Seat1])
}

// Game is an iterated matrix game of a fixed number of rounds.
type Game struct {
	numActions int
	rounds     int
	sources    [2]MoveSource
}

// NewGame creates a Game where the player in Seat0 moves according to
// source0 and the player in Seat1 according to source1.
func NewGame(numActions, rounds int, source0, source1 MoveSource) (*Game, error) {
	if numActions <= 0 {
		return nil, errors.Errorf("number of actions must be positive, got %d", numActions)
	}
	if rounds <= 0 {
		return nil, errors.Errorf("number of rounds must be positive, got %d", rounds)
	}
	if source0 == nil || source1 == nil {
		return nil, errors.New("both seats need a move source")
	}

	return &Game{
		numActions: numActions,
		rounds:     rounds,
		sources:    [2]MoveSource{source0, source1},
	}, nil
}

func (g *Game) NumActions() int {
	return g.numActions
}

func (g *Game) Rounds() int {
	return g.rounds
}

// PlayGame plays all rounds between p0 (Seat0) and p1 (Seat1).
// Each round both players are told the pair of moves via Play.
func (g *Game) PlayGame(p0, p1 Player) ([]Round, error) {
	for _, p := range []Player{p0, p1} {
		if sized, ok := p.(interface{ NumActions() int }); ok && sized.NumActions() != g.numActions {
			return nil, errors.Errorf("player %s has a table for %d actions, game has %d",
				p.Name(), sized.NumActions(), g.numActions)
		}
	}

	players := [2]Player{p0, p1}
	var moves [2][]Move
	history := make([]Round, 0, g.rounds)
	for i := 0; i < g.rounds; i++ {
		var round Round
		for _, seat := range []Seat{Seat0, Seat1} {
			v := View{
				Round:      i,
				NumActions: g.numActions,
				Mine:       moves[seat],
				Theirs:     moves[seat.Other()],
			}

			m, err := g.sources[seat].NextMove(v)
			if err != nil {
				return history, errors.Wrapf(err, "round %d: %s", i+1, players[seat].Name())
			}
			if m < 0 || int(m) >= g.numActions {
				return history, errors.Errorf("round %d: %s chose move %d outside [0, %d)",
					i+1, players[seat].Name(), int(m), g.numActions)
			}
			round[seat] = m
		}

		moves[Seat0] = append(moves[Seat0], round[Seat0])
		moves[Seat1] = append(moves[Seat1], round[Seat1])
		p0.Play(round[Seat0], round[Seat1])
		p1.Play(round[Seat0], round[Seat1])
		history = append(history, round)
		glog.V(1).Infof("Round %d: %s %v, %s %v", i+1, p0.Name(), round[Seat0], p1.Name(), round[Seat1])
	}

	glog.V(1).Infof("Game over: %s %d, %s %d", p0.Name(), p0.Payout(), p1.Name(), p1.Payout())
	return history, nil
}
