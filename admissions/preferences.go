package admissions

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Preferences is a strict ranking of names, most preferred first.
//
// Names that do not appear in the ranking are unacceptable: they lose
// every comparison against a listed name.
type Preferences struct {
	order []string
	rank  map[string]int
}

// NewPreferences creates Preferences from the given ordering.
// Each name may appear at most once.
func NewPreferences(order []string) (Preferences, error) {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		if _, ok := rank[name]; ok {
			return Preferences{}, errors.Wrapf(ErrDuplicateName,
				"%q ranked more than once", name)
		}
		rank[name] = i
	}

	return Preferences{
		order: append([]string(nil), order...),
		rank:  rank,
	}, nil
}

// Prefers returns whether a is ranked strictly before b.
// A listed name is preferred to an unlisted one; an unlisted a is never preferred.
func (p Preferences) Prefers(a, b string) bool {
	ra, ok := p.rank[a]
	if !ok {
		return false
	}

	rb, ok := p.rank[b]
	if !ok {
		return true
	}

	return ra < rb
}

// Rank returns the zero-based position of name in the ranking.
func (p Preferences) Rank(name string) (int, bool) {
	r, ok := p.rank[name]
	return r, ok
}

// Acceptable returns whether name appears in the ranking.
func (p Preferences) Acceptable(name string) bool {
	_, ok := p.rank[name]
	return ok
}

func (p Preferences) Len() int {
	return len(p.order)
}

// At returns the name at position i.
// At panics if i is out of range.
func (p Preferences) At(i int) string {
	if i < 0 || i >= len(p.order) {
		panic(fmt.Errorf("preference index %d out of range [0, %d)", i, len(p.order)))
	}

	return p.order[i]
}

// List returns a copy of the ranking.
func (p Preferences) List() []string {
	return append([]string(nil), p.order...)
}

// String implements Stringer.
func (p Preferences) String() string {
	return "[" + strings.Join(p.order, " > ") + "]"
}
