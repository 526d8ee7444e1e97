package admissions

import (
	"fmt"
	"sort"
	"strings"
)

// Matching maps each matched student to the college holding them.
type Matching map[string]string

// CollegeOf returns the college the student is matched to.
func (m Matching) CollegeOf(student string) (string, bool) {
	c, ok := m[student]
	return c, ok
}

// StudentsOf returns the students matched to the college, sorted by name.
func (m Matching) StudentsOf(college string) []string {
	var result []string
	for s, c := range m {
		if c == college {
			result = append(result, s)
		}
	}

	sort.Strings(result)
	return result
}

// Pair is one student-college edge.
type Pair struct {
	Student string
	College string
}

func (p Pair) String() string {
	return p.Student + "->" + p.College
}

// Pairs returns all edges sorted by student name.
func (m Matching) Pairs() []Pair {
	result := make([]Pair, 0, len(m))
	for s, c := range m {
		result = append(result, Pair{Student: s, College: c})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Student < result[j].Student
	})
	return result
}

// String implements Stringer.
func (m Matching) String() string {
	pairs := m.Pairs()
	s := make([]string, len(pairs))
	for i, p := range pairs {
		s[i] = p.String()
	}

	return "{" + strings.Join(s, ", ") + "}"
}

// Result summarizes a completed run of deferred acceptance.
type Result struct {
	Matching Matching
	// Students who exhausted their preferences without being admitted.
	Unmatched []string
	Rounds    int
	Proposals int
}

func (r Result) String() string {
	return fmt.Sprintf("%v, unmatched: %v (%d rounds, %d proposals)",
		r.Matching, r.Unmatched, r.Rounds, r.Proposals)
}
