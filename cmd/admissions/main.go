// Run student-proposing deferred acceptance on a college admissions market.
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"text/tabwriter"

	"github.com/golang/glog"

	"github.com/timpalpant/gamesim/admissions"
	"github.com/timpalpant/gamesim/internal/scenario"
)

func main() {
	scenarioFile := flag.String("scenario", "", "YAML scenario file (.gz allowed). Uses the built-in market if empty")
	saveFile := flag.String("save", "", "File to save the final matching to (gzipped gob)")
	debugAddr := flag.String("debug_addr", "localhost:4123", "Address to serve pprof and expvar on. Disabled if empty")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	s := mustLoadScenario(*scenarioFile)
	game, err := s.Market()
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Running deferred acceptance with %d colleges and %d students",
		len(game.Colleges()), len(game.Students()))
	result := game.DeferredAcceptance()
	glog.Infof("Reached a stable matching after %d rounds (%d proposals)",
		result.Rounds, result.Proposals)

	if err := game.Validate(); err != nil {
		glog.Fatal(err)
	}
	if pairs := game.BlockingPairs(); len(pairs) > 0 {
		glog.Fatalf("Matching is not stable, blocking pairs: %v", pairs)
	}

	printResult(game, result)

	if *saveFile != "" {
		if err := scenario.SaveMatching(*saveFile, result.Matching); err != nil {
			glog.Fatal(err)
		}
	}
}

func mustLoadScenario(filename string) *scenario.Scenario {
	if filename == "" {
		return scenario.Default()
	}

	glog.Infof("Loading scenario from: %v", filename)
	s, err := scenario.Load(filename)
	if err != nil {
		glog.Fatal(err)
	}

	return s
}

func printResult(game *admissions.Game, result admissions.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "STUDENT\tCOLLEGE")
	for _, p := range result.Matching.Pairs() {
		fmt.Fprintf(w, "%s\t%s\n", p.Student, p.College)
	}
	for _, s := range result.Unmatched {
		fmt.Fprintf(w, "%s\t-\n", s)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "COLLEGE\tSEATS\tFULL")
	for _, c := range game.Colleges() {
		fmt.Fprintf(w, "%s\t%d/%d\t%v\n", c.Name(), len(c.Accepted()), c.Capacity(), c.IsFull())
	}
	w.Flush()
}
