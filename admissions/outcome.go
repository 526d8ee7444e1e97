package admissions

import (
	"fmt"
)

// Decision is a college's response to a single proposal.
type Decision uint8

const (
	Rejected Decision = iota
	Accepted
	// The proposer was admitted in place of the college's weakest accepted student.
	AcceptedWithEviction
)

var decisionStr = [...]string{
	"Rejected",
	"Accepted",
	"AcceptedWithEviction",
}

func (d Decision) String() string {
	return decisionStr[d]
}

// Outcome is the result of College.Consider.
// Evicted is set only when Decision is AcceptedWithEviction.
type Outcome struct {
	Decision Decision
	Evicted  string
}

func (o Outcome) String() string {
	if o.Decision == AcceptedWithEviction {
		return fmt.Sprintf("%v:%s", o.Decision, o.Evicted)
	}

	return o.Decision.String()
}
