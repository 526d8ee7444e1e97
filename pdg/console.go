package pdg

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Console reads moves typed by humans. Several seats may share one Console;
// each prompt names the player whose move is expected.
type Console struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

// Input returns a MoveSource that prompts for the named player's moves.
func (c *Console) Input(name string) MoveSource {
	return MoveSourceFunc(func(v View) (Move, error) {
		return c.readMove(name, v)
	})
}

func (c *Console) readMove(name string, v View) (Move, error) {
	for {
		fmt.Fprintf(c.w, "Round %d, %s: (c)ooperate or (d)efect? ", v.Round+1, name)
		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return 0, errors.Wrapf(err, "reading move for %s", name)
			}
			return 0, errors.Wrapf(io.ErrUnexpectedEOF, "reading move for %s", name)
		}

		m, err := ParseMove(c.scanner.Text(), v.NumActions)
		if err == nil {
			return m, nil
		}

		fmt.Fprintln(c.w, err)
	}
}
