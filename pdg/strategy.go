package pdg

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// View is what a MoveSource sees before choosing a move: the history of
// the match so far from its own seat.
type View struct {
	Round      int
	NumActions int
	Mine       []Move
	Theirs     []Move
}

// MoveSource chooses a move for one seat each round.
type MoveSource interface {
	NextMove(v View) (Move, error)
}

// MoveSourceFunc adapts a function to a MoveSource.
type MoveSourceFunc func(v View) (Move, error)

func (f MoveSourceFunc) NextMove(v View) (Move, error) {
	return f(v)
}

type alwaysCooperate struct{}

func (alwaysCooperate) NextMove(View) (Move, error) { return Cooperate, nil }

type alwaysDefect struct{}

func (alwaysDefect) NextMove(View) (Move, error) { return Defect, nil }

// AlwaysCooperate and AlwaysDefect ignore the history.
var (
	AlwaysCooperate MoveSource = alwaysCooperate{}
	AlwaysDefect    MoveSource = alwaysDefect{}
)

type titForTat struct{}

// TitForTat cooperates first and then repeats the opponent's last move.
var TitForTat MoveSource = titForTat{}

func (titForTat) NextMove(v View) (Move, error) {
	if len(v.Theirs) == 0 {
		return Cooperate, nil
	}

	return v.Theirs[len(v.Theirs)-1], nil
}

type grimTrigger struct{}

// GrimTrigger cooperates until the opponent defects once, then defects forever.
var GrimTrigger MoveSource = grimTrigger{}

func (grimTrigger) NextMove(v View) (Move, error) {
	for _, m := range v.Theirs {
		if m != Cooperate {
			return Defect, nil
		}
	}

	return Cooperate, nil
}

// Random picks uniformly among all actions.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) NextMove(v View) (Move, error) {
	return Move(r.rng.Intn(v.NumActions)), nil
}

var strategies = map[string]func(rng *rand.Rand) MoveSource{
	"cooperate":    func(*rand.Rand) MoveSource { return AlwaysCooperate },
	"defect":       func(*rand.Rand) MoveSource { return AlwaysDefect },
	"tit_for_tat":  func(*rand.Rand) MoveSource { return TitForTat },
	"grim_trigger": func(*rand.Rand) MoveSource { return GrimTrigger },
	"random":       func(rng *rand.Rand) MoveSource { return NewRandom(rng) },
}

// NewStrategy returns the named built-in strategy.
// rng is only used by strategies that randomize.
func NewStrategy(name string, rng *rand.Rand) (MoveSource, error) {
	newFn, ok := strategies[name]
	if !ok {
		return nil, errors.Errorf("unknown strategy %q (available: %v)", name, StrategyNames())
	}

	return newFn(rng), nil
}

// StrategyNames lists the built-in strategies in sorted order.
func StrategyNames() []string {
	result := make([]string, 0, len(strategies))
	for name := range strategies {
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}
