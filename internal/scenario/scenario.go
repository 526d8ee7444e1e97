// Package scenario loads game descriptions from YAML files.
package scenario

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/gamesim/admissions"
	"github.com/timpalpant/gamesim/pdg"
)

//go:embed default.yaml
var defaultScenario []byte

// Scenario describes an admissions market and/or a Prisoner's Dilemma match.
type Scenario struct {
	Colleges []College `yaml:"colleges"`
	Students []Student `yaml:"students"`
	Dilemma  *Dilemma  `yaml:"dilemma"`
}

type College struct {
	Name        string   `yaml:"name"`
	Capacity    int      `yaml:"capacity"`
	Preferences []string `yaml:"preferences"`
}

type Student struct {
	Name        string   `yaml:"name"`
	Preferences []string `yaml:"preferences"`
}

type Dilemma struct {
	Actions int      `yaml:"actions"`
	Rounds  int      `yaml:"rounds"`
	Players []Player `yaml:"players"`
}

type Player struct {
	Name     string `yaml:"name"`
	Payoffs  []int  `yaml:"payoffs"`
	Strategy string `yaml:"strategy"`
}

// Default returns the built-in scenario.
func Default() *Scenario {
	s, err := Parse(bytes.NewReader(defaultScenario))
	if err != nil {
		panic(errors.Wrap(err, "parsing built-in scenario"))
	}

	return s
}

// Load reads a Scenario from the given file.
// Files ending in .gz are decompressed.
func Load(filename string) (*Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %v", filename)
		}
		defer zr.Close()
		r = zr
	}

	s, err := Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %v", filename)
	}

	return s, nil
}

// Parse decodes a Scenario from YAML. Unknown fields are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding scenario")
	}

	return &s, nil
}

// Market builds the admissions Game described by the scenario.
func (s *Scenario) Market() (*admissions.Game, error) {
	colleges := make([]*admissions.College, len(s.Colleges))
	for i, c := range s.Colleges {
		college, err := admissions.NewCollege(c.Name, c.Capacity, c.Preferences)
		if err != nil {
			return nil, err
		}
		colleges[i] = college
	}

	students := make([]*admissions.Student, len(s.Students))
	for i, st := range s.Students {
		student, err := admissions.NewStudent(st.Name, st.Preferences)
		if err != nil {
			return nil, err
		}
		students[i] = student
	}

	return admissions.NewGame(colleges, students)
}

// NumActions defaults to 2 (cooperate, defect).
func (d *Dilemma) NumActions() int {
	if d.Actions == 0 {
		return 2
	}

	return d.Actions
}

// NumRounds defaults to pdg.DefaultRounds.
func (d *Dilemma) NumRounds() int {
	if d.Rounds == 0 {
		return pdg.DefaultRounds
	}

	return d.Rounds
}

// TablePlayers builds the two players of the match.
func (d *Dilemma) TablePlayers() (*pdg.TablePlayer, *pdg.TablePlayer, error) {
	if len(d.Players) != 2 {
		return nil, nil, errors.Errorf("dilemma needs exactly 2 players, got %d", len(d.Players))
	}

	p0, err := pdg.NewTablePlayer(d.Players[0].Name, d.NumActions(), d.Players[0].Payoffs)
	if err != nil {
		return nil, nil, err
	}

	p1, err := pdg.NewTablePlayer(d.Players[1].Name, d.NumActions(), d.Players[1].Payoffs)
	if err != nil {
		return nil, nil, err
	}

	return p0, p1, nil
}
