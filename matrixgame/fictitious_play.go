// Package matrixgame finds approximate equilibria of two-player matrix games.
package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FictitiousPlay repeatedly lets each player best respond to the opponent's
// empirical play and returns the empirical mixed strategy of each player.
//
// p0Payoffs[i][j] and p1Payoffs[i][j] are the payoffs to player 0 and
// player 1 when player 0 plays i and player 1 plays j. With probability
// mixingLambda a player explores a uniformly random action instead.
func FictitiousPlay(p0Payoffs, p1Payoffs [][]float64, nIter int, mixingLambda float64, rng *rand.Rand) ([]float32, []float32, error) {
	if err := validate(p0Payoffs, p1Payoffs); err != nil {
		return nil, nil, err
	}
	if nIter <= 0 {
		return nil, nil, errors.Errorf("number of iterations must be positive, got %d", nIter)
	}

	p0PlayCounts := make([]int, len(p0Payoffs))
	p1PlayCounts := make([]int, len(p0Payoffs[0]))
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(p0Payoffs, p1PlayCounts, rng)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(p1Payoffs, p0PlayCounts, rng)
		}
		p0PlayCounts[p0Selected] += 1
		p1PlayCounts[p1Selected] += 1

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(1).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts), nil
}

// ZeroSum returns the payoff matrices of a zero-sum game given player 0's payoffs.
func ZeroSum(p0Payoffs [][]float64) ([][]float64, [][]float64) {
	p1Payoffs := make([][]float64, len(p0Payoffs))
	for i, row := range p0Payoffs {
		p1Payoffs[i] = make([]float64, len(row))
		for j, v := range row {
			p1Payoffs[i][j] = -v
		}
	}

	return p0Payoffs, p1Payoffs
}

// ExpectedPayoff returns the expected payoff from the given matrix when
// both players independently play the given mixed strategies.
func ExpectedPayoff(payoffs [][]float64, p0Strategy, p1Strategy []float32) float64 {
	var result float64
	for i, pi := range p0Strategy {
		for j, pj := range p1Strategy {
			result += float64(pi) * float64(pj) * payoffs[i][j]
		}
	}

	return result
}

func validate(p0Payoffs, p1Payoffs [][]float64) error {
	if len(p0Payoffs) == 0 || len(p0Payoffs[0]) == 0 {
		return errors.New("empty payoff matrix")
	}

	if len(p1Payoffs) != len(p0Payoffs) {
		return errors.Errorf("payoff matrices have %d and %d rows", len(p0Payoffs), len(p1Payoffs))
	}

	nCols := len(p0Payoffs[0])
	for i := range p0Payoffs {
		if len(p0Payoffs[i]) != nCols || len(p1Payoffs[i]) != nCols {
			return errors.Errorf("row %d: expected %d columns", i, nCols)
		}
	}

	return nil
}

func getP0BestResponse(p0Payoffs [][]float64, p1PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(p0Payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * p0Payoffs[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func getP1BestResponse(p1Payoffs [][]float64, p0PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(p1Payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] += float64(c) * p1Payoffs[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func normalize(counts []int) []float32 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float32, len(counts))
	for i, v := range counts {
		result[i] = float32(v) / float32(total)
	}
	return result
}

// Ties are broken uniformly at random.
func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	nTied := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
			nTied = 1
		} else if v == best {
			nTied++
			if rng.Intn(nTied) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}
