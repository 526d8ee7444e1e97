// Play a round-robin Prisoner's Dilemma tournament between built-in strategies.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/golang/glog"

	"github.com/timpalpant/gamesim/internal/scenario"
	"github.com/timpalpant/gamesim/pdg"
)

func main() {
	strategies := flag.String("strategies", strings.Join(pdg.StrategyNames(), ","),
		"Comma-separated strategies to enter")
	rounds := flag.Int("rounds", 200, "Number of rounds per match")
	seed := flag.Int64("seed", 1234, "Random seed")
	scenarioFile := flag.String("scenario", "", "YAML scenario whose first dilemma player's table is used for every seat")
	debugAddr := flag.String("debug_addr", "localhost:4123", "Address to serve pprof on. Disabled if empty")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	rng := rand.New(rand.NewSource(*seed))
	numActions, payoffs := mustLoadPayoffs(*scenarioFile)

	var entrants []pdg.Entrant
	for _, name := range strings.Split(*strategies, ",") {
		name = strings.TrimSpace(name)
		s, err := pdg.NewStrategy(name, rng)
		if err != nil {
			glog.Fatal(err)
		}
		entrants = append(entrants, pdg.Entrant{Name: name, Strategy: s})
	}

	glog.Infof("Playing round robin between %d strategies, %d rounds per match", len(entrants), *rounds)
	standings, err := pdg.Tournament(entrants, numActions, *rounds, payoffs)
	if err != nil {
		glog.Fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSTRATEGY\tPAYOUT\tMATCHES")
	for i, s := range standings {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", i+1, s.Name, s.Payout, s.Matches)
	}
	w.Flush()
}

func mustLoadPayoffs(filename string) (int, []int) {
	if filename == "" {
		return 2, pdg.DefaultPayoffs
	}

	glog.Infof("Loading scenario from: %v", filename)
	s, err := scenario.Load(filename)
	if err != nil {
		glog.Fatal(err)
	}
	if s.Dilemma == nil || len(s.Dilemma.Players) == 0 {
		glog.Fatalf("Scenario %v has no dilemma players", filename)
	}

	return s.Dilemma.NumActions(), s.Dilemma.Players[0].Payoffs
}
