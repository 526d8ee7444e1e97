package pdg

import (
	"sort"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Entrant is a named strategy taking part in a Tournament.
type Entrant struct {
	Name     string
	Strategy MoveSource
}

// Standing is an entrant's accumulated result.
type Standing struct {
	Name    string
	Payout  int
	Matches int
}

// Tournament plays a round robin where every pair of entrants meets once.
// payoffs is the symmetric game's table from Seat0's point of view.
// Standings are sorted by total payout, best first.
func Tournament(entrants []Entrant, numActions, rounds int, payoffs []int) ([]Standing, error) {
	if numActions <= 0 || len(payoffs) != numActions*numActions {
		return nil, errors.Errorf("expected %d payoffs for %d actions, got %d",
			numActions*numActions, numActions, len(payoffs))
	}

	standings := make([]Standing, len(entrants))
	for i, e := range entrants {
		standings[i].Name = e.Name
	}

	transposed := Transpose(payoffs, numActions)
	for i := 0; i < len(entrants); i++ {
		for j := i + 1; j < len(entrants); j++ {
			a, b := entrants[i], entrants[j]
			p0, err := NewTablePlayer(a.Name, numActions, payoffs)
			if err != nil {
				return nil, err
			}
			p1, err := NewTablePlayer(b.Name, numActions, transposed)
			if err != nil {
				return nil, err
			}

			game, err := NewGame(numActions, rounds, a.Strategy, b.Strategy)
			if err != nil {
				return nil, err
			}
			if _, err := game.PlayGame(p0, p1); err != nil {
				return nil, errors.Wrapf(err, "%s vs %s", a.Name, b.Name)
			}

			glog.V(1).Infof("%s vs %s: %d to %d", a.Name, b.Name, p0.Payout(), p1.Payout())
			standings[i].Payout += p0.Payout()
			standings[i].Matches++
			standings[j].Payout += p1.Payout()
			standings[j].Matches++
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Payout != standings[j].Payout {
			return standings[i].Payout > standings[j].Payout
		}
		return standings[i].Name < standings[j].Name
	})

	return standings, nil
}
