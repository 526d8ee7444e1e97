package pdg

// Seat identifies which side of a match a player occupies.
// Payout tables are indexed by (Seat0 move, Seat1 move).
type Seat uint8

const (
	Seat0 Seat = iota
	Seat1
)

var seatStr = [...]string{
	"Seat0",
	"Seat1",
}

func (s Seat) String() string {
	return seatStr[s]
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	return 1 - s
}
