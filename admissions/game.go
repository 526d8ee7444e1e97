package admissions

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// State is the phase of a Game.
type State uint8

const (
	// At least one unmatched student still has a college to propose to.
	Running State = iota
	// Every student is matched or has exhausted its preferences. Terminal.
	Stable
)

var stateStr = [...]string{
	"Running",
	"Stable",
}

func (s State) String() string {
	return stateStr[s]
}

// Game runs student-proposing deferred acceptance over a fixed market.
//
// Colleges and students refer to each other by name; the Game owns the
// lookup tables from name to entity. Entities are mutated in place.
type Game struct {
	colleges   []*College
	students   []*Student
	collegeIdx map[string]int
	studentIdx map[string]int

	rounds    int
	proposals int
}

// NewGame creates a Game over the given colleges and students.
//
// Names must be unique on each side and every preference list may only
// reference entities of the opposing side. Entities must not have taken
// part in a previous game.
func NewGame(colleges []*College, students []*Student) (*Game, error) {
	g := &Game{
		colleges:   append([]*College(nil), colleges...),
		students:   append([]*Student(nil), students...),
		collegeIdx: make(map[string]int, len(colleges)),
		studentIdx: make(map[string]int, len(students)),
	}

	for i, c := range colleges {
		if _, ok := g.collegeIdx[c.name]; ok {
			return nil, errors.Wrapf(ErrDuplicateName, "college %q", c.name)
		}
		if len(c.accepted) != 0 {
			return nil, errors.Wrapf(ErrAlreadyPlayed, "college %q", c.name)
		}
		g.collegeIdx[c.name] = i
	}

	for i, s := range students {
		if _, ok := g.studentIdx[s.name]; ok {
			return nil, errors.Wrapf(ErrDuplicateName, "student %q", s.name)
		}
		if s.next != 0 || s.assigned != "" {
			return nil, errors.Wrapf(ErrAlreadyPlayed, "student %q", s.name)
		}
		g.studentIdx[s.name] = i
	}

	for _, c := range colleges {
		for _, s := range c.prefs.order {
			if _, ok := g.studentIdx[s]; !ok {
				return nil, errors.Wrapf(ErrUnknownName,
					"college %q ranks student %q", c.name, s)
			}
		}
	}

	for _, s := range students {
		for _, c := range s.prefs.order {
			if _, ok := g.collegeIdx[c]; !ok {
				return nil, errors.Wrapf(ErrUnknownName,
					"student %q ranks college %q", s.name, c)
			}
		}
	}

	return g, nil
}

// College returns the college with the given name, or nil.
func (g *Game) College(name string) *College {
	i, ok := g.collegeIdx[name]
	if !ok {
		return nil
	}

	return g.colleges[i]
}

// Student returns the student with the given name, or nil.
func (g *Game) Student(name string) *Student {
	i, ok := g.studentIdx[name]
	if !ok {
		return nil
	}

	return g.students[i]
}

func (g *Game) Colleges() []*College {
	return append([]*College(nil), g.colleges...)
}

func (g *Game) Students() []*Student {
	return append([]*Student(nil), g.students...)
}

// State returns Running while some unmatched student can still propose.
func (g *Game) State() State {
	for _, s := range g.students {
		if !s.IsMatched() && s.HasChoices() {
			return Running
		}
	}

	return Stable
}

// Step plays one round: every unmatched student with remaining choices
// proposes to its next college. It returns whether the Game is still Running.
func (g *Game) Step() bool {
	var free []*Student
	for _, s := range g.students {
		if !s.IsMatched() && s.HasChoices() {
			free = append(free, s)
		}
	}

	if len(free) == 0 {
		return false
	}

	g.rounds++
	roundsCount.Add(1)
	for _, s := range free {
		g.propose(s)
	}

	state := g.State()
	glog.V(1).Infof("Round %d: %d proposals, state %v", g.rounds, len(free), state)
	return state == Running
}

func (g *Game) propose(s *Student) {
	name, ok := s.NextChoice()
	if !ok {
		return
	}

	c := g.colleges[g.collegeIdx[name]]
	g.proposals++
	proposalsCount.Add(1)
	outcome := c.Consider(s.name)
	glog.V(2).Infof("%s proposes to %s: %v", s.name, c.name, outcome)
	switch outcome.Decision {
	case Accepted:
		s.assign(c.name)
	case AcceptedWithEviction:
		s.assign(c.name)
		g.students[g.studentIdx[outcome.Evicted]].unassign()
		evictionsCount.Add(1)
	case Rejected:
		rejectionsCount.Add(1)
	default:
		panic(fmt.Errorf("invalid decision: %v", outcome.Decision))
	}
}

// DeferredAcceptance plays rounds until the Game is Stable.
// Calling it again on a Stable game returns the same Result.
func (g *Game) DeferredAcceptance() Result {
	for g.Step() {
	}

	result := g.Result()
	glog.V(1).Infof("Deferred acceptance finished: %v", result)
	return result
}

// Result returns the current matching and run statistics.
func (g *Game) Result() Result {
	matching := make(Matching)
	var unmatched []string
	for _, s := range g.students {
		if c, ok := s.AssignedCollege(); ok {
			matching[s.name] = c
		} else {
			unmatched = append(unmatched, s.name)
		}
	}

	return Result{
		Matching:  matching,
		Unmatched: unmatched,
		Rounds:    g.rounds,
		Proposals: g.proposals,
	}
}

// Validate sanity checks that no college is over capacity and that
// students and colleges agree on who is matched to whom.
func (g *Game) Validate() error {
	for _, c := range g.colleges {
		if len(c.accepted) > c.capacity {
			return errors.Wrapf(ErrInconsistent, "college %q holds %d students with capacity %d",
				c.name, len(c.accepted), c.capacity)
		}

		for _, name := range c.accepted {
			s := g.Student(name)
			if s == nil {
				return errors.Wrapf(ErrInconsistent, "college %q holds unknown student %q", c.name, name)
			}
			if s.assigned != c.name {
				return errors.Wrapf(ErrInconsistent, "college %q holds %q, but student is assigned to %q",
					c.name, name, s.assigned)
			}
		}
	}

	for _, s := range g.students {
		if s.next > s.prefs.Len() {
			return errors.Wrapf(ErrInconsistent, "student %q proposal cursor %d past %d choices",
				s.name, s.next, s.prefs.Len())
		}

		if s.assigned == "" {
			continue
		}

		c := g.College(s.assigned)
		if c == nil {
			return errors.Wrapf(ErrInconsistent, "student %q assigned to unknown college %q", s.name, s.assigned)
		}
		if !c.Has(s.name) {
			return errors.Wrapf(ErrInconsistent, "student %q assigned to %q, which does not hold them",
				s.name, c.name)
		}
	}

	return nil
}

// BlockingPairs returns every student-college pair that would both rather
// be matched to each other than keep their current assignment.
// A stable matching has none.
func (g *Game) BlockingPairs() []Pair {
	var result []Pair
	for _, s := range g.students {
		for i := 0; i < s.prefs.Len(); i++ {
			name := s.prefs.At(i)
			if name == s.assigned {
				break // Remaining colleges are worse than the current one.
			}

			c := g.College(name)
			if !c.prefs.Acceptable(s.name) {
				continue
			}

			weakest, _ := c.Weakest()
			if !c.IsFull() || c.Prefers(s.name, weakest) {
				result = append(result, Pair{Student: s.name, College: c.name})
			}
		}
	}

	return result
}
