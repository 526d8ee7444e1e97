package admissions

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrUnknownName     = errors.New("unknown name")
	ErrInconsistent    = errors.New("inconsistent matching")
	ErrAlreadyPlayed   = errors.New("entity already took part in a game")
)
