package admissions

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// College admits up to Capacity students, ranked by its Preferences.
type College struct {
	name     string
	capacity int
	prefs    Preferences
	// Students currently holding a seat, in preference order.
	// The last one is the weakest and the first to be evicted.
	accepted []string
}

// NewCollege creates a College with the given capacity and
// ranking over students, most preferred first.
func NewCollege(name string, capacity int, prefs []string) (*College, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidName, "college")
	}

	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "college %q has capacity %d", name, capacity)
	}

	p, err := NewPreferences(prefs)
	if err != nil {
		return nil, errors.Wrapf(err, "college %q", name)
	}

	return &College{
		name:     name,
		capacity: capacity,
		prefs:    p,
		accepted: make([]string, 0, capacity),
	}, nil
}

func (c *College) Name() string {
	return c.name
}

func (c *College) Capacity() int {
	return c.capacity
}

func (c *College) Preferences() Preferences {
	return c.prefs
}

// IsFull returns whether every seat is taken.
func (c *College) IsFull() bool {
	return len(c.accepted) == c.capacity
}

// Prefers returns whether the college ranks student a above student b.
func (c *College) Prefers(a, b string) bool {
	return c.prefs.Prefers(a, b)
}

// Accepted returns the students holding a seat, most preferred first.
func (c *College) Accepted() []string {
	return append([]string(nil), c.accepted...)
}

// Has returns whether the student currently holds a seat.
func (c *College) Has(student string) bool {
	for _, s := range c.accepted {
		if s == student {
			return true
		}
	}

	return false
}

// Weakest returns the least preferred student holding a seat.
func (c *College) Weakest() (string, bool) {
	if len(c.accepted) == 0 {
		return "", false
	}

	return c.accepted[len(c.accepted)-1], true
}

// Consider evaluates a proposal from the given student.
//
// The student is admitted if a seat is free. If the college is full, the
// student replaces the weakest accepted student when preferred to them.
// Students the college does not rank are always rejected.
func (c *College) Consider(student string) Outcome {
	if !c.prefs.Acceptable(student) {
		return Outcome{Decision: Rejected}
	}

	if c.Has(student) {
		return Outcome{Decision: Accepted}
	}

	if !c.IsFull() {
		c.admit(student)
		return Outcome{Decision: Accepted}
	}

	weakest, _ := c.Weakest()
	if !c.Prefers(student, weakest) {
		return Outcome{Decision: Rejected}
	}

	c.accepted = c.accepted[:len(c.accepted)-1]
	c.admit(student)
	return Outcome{Decision: AcceptedWithEviction, Evicted: weakest}
}

func (c *College) admit(student string) {
	i := sort.Search(len(c.accepted), func(i int) bool {
		return c.Prefers(student, c.accepted[i])
	})

	c.accepted = append(c.accepted, "")
	copy(c.accepted[i+1:], c.accepted[i:])
	c.accepted[i] = student
}

// String implements Stringer.
func (c *College) String() string {
	return fmt.Sprintf("%s(%d/%d): %v", c.name, len(c.accepted), c.capacity, c.accepted)
}
