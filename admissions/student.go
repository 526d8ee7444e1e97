package admissions

import (
	"fmt"

	"github.com/pkg/errors"
)

// Student proposes to colleges in order of its Preferences.
type Student struct {
	name  string
	prefs Preferences
	// Index of the next college to propose to. Only ever advances.
	next int
	// Name of the college currently holding this student, or "" if unmatched.
	// College names are never empty.
	assigned string
}

// NewStudent creates a Student with the given ranking over colleges,
// most preferred first.
func NewStudent(name string, prefs []string) (*Student, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidName, "student")
	}

	p, err := NewPreferences(prefs)
	if err != nil {
		return nil, errors.Wrapf(err, "student %q", name)
	}

	return &Student{name: name, prefs: p}, nil
}

func (s *Student) Name() string {
	return s.name
}

func (s *Student) Preferences() Preferences {
	return s.prefs
}

// Prefers returns whether the student ranks college a above college b.
func (s *Student) Prefers(a, b string) bool {
	return s.prefs.Prefers(a, b)
}

// HasChoices returns whether any college remains to be proposed to.
func (s *Student) HasChoices() bool {
	return s.next < s.prefs.Len()
}

// NumProposals returns how many colleges the student has proposed to.
func (s *Student) NumProposals() int {
	return s.next
}

// NextChoice returns the next college to propose to and advances the cursor.
// It returns false once the student has proposed to every college it ranks.
func (s *Student) NextChoice() (string, bool) {
	if !s.HasChoices() {
		return "", false
	}

	college := s.prefs.At(s.next)
	s.next++
	return college, true
}

// AssignedCollege returns the college currently holding the student.
func (s *Student) AssignedCollege() (string, bool) {
	return s.assigned, s.assigned != ""
}

func (s *Student) IsMatched() bool {
	return s.assigned != ""
}

func (s *Student) assign(college string) {
	s.assigned = college
}

func (s *Student) unassign() {
	s.assigned = ""
}

// String implements Stringer.
func (s *Student) String() string {
	if s.assigned == "" {
		return fmt.Sprintf("%s: unmatched", s.name)
	}

	return fmt.Sprintf("%s: %s", s.name, s.assigned)
}
