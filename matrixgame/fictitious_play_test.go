package matrixgame

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFictitiousPlay_RockPaperScissors(t *testing.T) {
	winRateMatrix := [][]float64{
		{0, 1, -1}, // Player 0 plays rock.
		{-1, 0, 1}, // Player 0 plays scissors.
		{1, -1, 0}, // Player 0 plays paper.
	}

	p0Payoffs, p1Payoffs := ZeroSum(winRateMatrix)
	rng := rand.New(rand.NewSource(1234))
	p0, p1, err := FictitiousPlay(p0Payoffs, p1Payoffs, 100000, 0, rng)
	require.NoError(t, err)
	t.Logf("Player 0 Nash equilibrium policy: %v", p0)
	t.Logf("Player 1 Nash equilibrium policy: %v", p1)
	for i := range p0 {
		assert.InDelta(t, 1.0/3, p0[i], 0.05)
		assert.InDelta(t, 1.0/3, p1[i], 0.05)
	}
}

func TestFictitiousPlay_PrisonersDilemma(t *testing.T) {
	// Years in prison; rows are player 0 cooperating or defecting.
	p0Payoffs := [][]float64{{-1, -3}, {0, -2}}
	p1Payoffs := [][]float64{{-1, 0}, {-3, -2}}

	rng := rand.New(rand.NewSource(1234))
	p0, p1, err := FictitiousPlay(p0Payoffs, p1Payoffs, 1000, 0, rng)
	require.NoError(t, err)
	assert.True(t, p0[1] > 0.99, "player 0 defects with probability %v", p0[1])
	assert.True(t, p1[1] > 0.99, "player 1 defects with probability %v", p1[1])
	assert.InDelta(t, -2, ExpectedPayoff(p0Payoffs, p0, p1), 0.05)
}

func TestFictitiousPlay_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, _, err := FictitiousPlay(nil, nil, 10, 0, rng)
	assert.Error(t, err)

	_, _, err = FictitiousPlay([][]float64{{1, 2}}, [][]float64{{1}}, 10, 0, rng)
	assert.Error(t, err)

	_, _, err = FictitiousPlay([][]float64{{1}}, [][]float64{{1}}, 0, 0, rng)
	assert.Error(t, err)
}

func TestArgMax(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	best, idx := argMax([]float64{1, 3, 2}, rng)
	assert.Equal(t, 3.0, best)
	assert.Equal(t, 1, idx)

	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		_, idx := argMax([]float64{5, 5}, rng)
		seen[idx] = true
	}
	assert.Len(t, seen, 2)
}
