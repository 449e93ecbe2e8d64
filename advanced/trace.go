package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/gjk/dbg"
)

type Outcome int

const (
	// The simplex was reduced and a new direction chosen.
	Searching Outcome = iota
	// The support point fell short of the origin.
	Separated
	// The simplex encloses the origin.
	Enclosed
)

func (o Outcome) String() string {
	switch o {
	case Searching:
		return "searching"
	case Separated:
		return "separated"
	case Enclosed:
		return "enclosed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Snapshot of one iteration of the main loop.
type Step struct {
	Iteration int
	// Direction the support point was searched in.
	Direction Point
	Support   Point
	// Simplex after the iteration, oldest point first.
	Simplex []Point
	Outcome Outcome
}

func (s Step) String() string {
	var names []string
	for _, p := range s.Simplex {
		names = append(names, dbg.Name(p))
	}
	return fmt.Sprintf("#%d dir=%v support=%s%v simplex=[%s] %s",
		s.Iteration,
		s.Direction,
		dbg.Name(s.Support),
		s.Support,
		strings.Join(names, ", "),
		s.Outcome.colored(),
	)
}

func (o Outcome) colored() string {
	switch o {
	case Separated:
		return aurora.Red(o.String()).String()
	case Enclosed:
		return aurora.Green(o.String()).String()
	}
	return aurora.Cyan(o.String()).String()
}
