// Play one iterated Prisoner's Dilemma match, optionally against a human.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/gamesim/internal/scenario"
	"github.com/timpalpant/gamesim/matrixgame"
	"github.com/timpalpant/gamesim/pdg"
)

const consoleStrategy = "console"

func main() {
	scenarioFile := flag.String("scenario", "", "YAML scenario file (.gz allowed). Uses the built-in players if empty")
	strat0 := flag.String("strategy0", "", "Strategy for player 0, or \"console\" to read moves from stdin. Overrides the scenario")
	strat1 := flag.String("strategy1", "", "Strategy for player 1, or \"console\" to read moves from stdin. Overrides the scenario")
	rounds := flag.Int("rounds", 0, "Number of rounds. Overrides the scenario")
	seed := flag.Int64("seed", 1234, "Random seed")
	solveIters := flag.Int("solve_iters", 0, "If > 0, also run fictitious play on the payout tables for this many iterations")
	mixingLambda := flag.Float64("mixing_lambda", 0.0, "Exploration probability for fictitious play")
	debugAddr := flag.String("debug_addr", "localhost:4123", "Address to serve pprof on. Disabled if empty")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	rng := rand.New(rand.NewSource(*seed))
	d := mustLoadDilemma(*scenarioFile)
	p0, p1, err := d.TablePlayers()
	if err != nil {
		glog.Fatal(err)
	}

	numRounds := d.NumRounds()
	if *rounds > 0 {
		numRounds = *rounds
	}

	console := pdg.NewConsole(os.Stdin, os.Stdout)
	source0 := mustMoveSource(override(*strat0, d.Players[0].Strategy), p0.Name(), console, rng)
	source1 := mustMoveSource(override(*strat1, d.Players[1].Strategy), p1.Name(), console, rng)
	game, err := pdg.NewGame(d.NumActions(), numRounds, source0, source1)
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Playing %d rounds: %s vs %s", numRounds, p0.Name(), p1.Name())
	history, err := game.PlayGame(p0, p1)
	if err != nil {
		glog.Fatal(err)
	}

	for i, round := range history {
		fmt.Printf("Round %d: %s %v, %s %v\n", i+1, p0.Name(), round[pdg.Seat0], p1.Name(), round[pdg.Seat1])
	}
	fmt.Printf("Final payouts: %v, %v\n", p0, p1)

	if *solveIters > 0 {
		glog.Infof("Running fictitious play for %d iterations", *solveIters)
		p0Payoffs, p1Payoffs := p0.Matrix(), p1.Matrix()
		s0, s1, err := matrixgame.FictitiousPlay(p0Payoffs, p1Payoffs, *solveIters, *mixingLambda, rng)
		if err != nil {
			glog.Fatal(err)
		}

		fmt.Printf("Equilibrium strategy for %s: %v (expected payout %.3f)\n",
			p0.Name(), s0, matrixgame.ExpectedPayoff(p0Payoffs, s0, s1))
		fmt.Printf("Equilibrium strategy for %s: %v (expected payout %.3f)\n",
			p1.Name(), s1, matrixgame.ExpectedPayoff(p1Payoffs, s0, s1))
	}
}

func mustLoadDilemma(filename string) *scenario.Dilemma {
	s := scenario.Default()
	source := "built-in scenario"
	if filename != "" {
		source = filename
		glog.Infof("Loading scenario from: %v", filename)
		var err error
		if s, err = scenario.Load(filename); err != nil {
			glog.Fatal(err)
		}
	}

	if s.Dilemma == nil {
		glog.Fatalf("No dilemma section in %s", source)
	}

	return s.Dilemma
}

func override(flagValue, scenarioValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return scenarioValue
}

func mustMoveSource(strategy, name string, console *pdg.Console, rng *rand.Rand) pdg.MoveSource {
	if strategy == consoleStrategy || strategy == "" {
		return console.Input(name)
	}

	s, err := pdg.NewStrategy(strategy, rng)
	if err != nil {
		glog.Fatal(err)
	}

	return s
}
