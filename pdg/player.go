package pdg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Player accumulates payouts over the rounds of a game.
type Player interface {
	Name() string
	// Play records one round where Seat0 chose move i and Seat1 chose move j.
	Play(i, j Move)
	Payout() int
}

// DefaultPayoffs is the classic dilemma in years of prison, from the point of
// view of Seat0: mutual cooperation -1, sucker -3, temptation 0, mutual defection -2.
var DefaultPayoffs = []int{-1, -3, 0, -2}

// TablePlayer is a Player whose payout for each round is looked up in a
// flattened numActions x numActions table.
type TablePlayer struct {
	name       string
	numActions int
	payoffs    []int
	payout     int
}

// NewTablePlayer creates a TablePlayer. payoffs[i*numActions+j] is the
// player's payout when Seat0 plays i and Seat1 plays j.
func NewTablePlayer(name string, numActions int, payoffs []int) (*TablePlayer, error) {
	if numActions <= 0 {
		return nil, errors.Errorf("player %q: number of actions must be positive, got %d", name, numActions)
	}

	if len(payoffs) != numActions*numActions {
		return nil, errors.Errorf("player %q: expected %d payoffs for %d actions, got %d",
			name, numActions*numActions, numActions, len(payoffs))
	}

	return &TablePlayer{
		name:       name,
		numActions: numActions,
		payoffs:    append([]int(nil), payoffs...),
	}, nil
}

func (p *TablePlayer) Name() string {
	return p.name
}

func (p *TablePlayer) NumActions() int {
	return p.numActions
}

// Play implements Player.
// Play panics if either move is outside the table.
func (p *TablePlayer) Play(i, j Move) {
	p.payout += p.Payoff(i, j)
}

// Payoff returns the table entry for Seat0 playing i and Seat1 playing j.
func (p *TablePlayer) Payoff(i, j Move) int {
	if i < 0 || int(i) >= p.numActions || j < 0 || int(j) >= p.numActions {
		panic(fmt.Errorf("moves (%d, %d) out of range for %d actions", i, j, p.numActions))
	}

	return p.payoffs[int(i)*p.numActions+int(j)]
}

func (p *TablePlayer) Payout() int {
	return p.payout
}

func (p *TablePlayer) ResetPayout() {
	p.payout = 0
}

// Matrix returns the payout table as rows of Seat0 moves.
func (p *TablePlayer) Matrix() [][]float64 {
	result := make([][]float64, p.numActions)
	for i := range result {
		result[i] = make([]float64, p.numActions)
		for j := range result[i] {
			result[i][j] = float64(p.payoffs[i*p.numActions+j])
		}
	}

	return result
}

func (p *TablePlayer) String() string {
	return fmt.Sprintf("%s: %d", p.name, p.payout)
}

// Transpose returns the flattened table seen from the other seat, so a
// symmetric game can be described once from Seat0's point of view.
func Transpose(payoffs []int, numActions int) []int {
	result := make([]int, len(payoffs))
	for i := 0; i < numActions; i++ {
		for j := 0; j < numActions; j++ {
			result[j*numActions+i] = payoffs[i*numActions+j]
		}
	}

	return result
}
