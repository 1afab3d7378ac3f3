// Package solver answers questions about a hand that need more than one
// evaluation: the best hand still reachable (the nuts) and which undealt
// cards would upgrade the current hand (the outs).
package solver

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/coder/quartz"
	"github.com/lox/pokersolver/poker"
)

// ErrInvalidBoard is returned when the board has a card count the operation
// cannot work with.
var ErrInvalidBoard = errors.New("invalid board")

// Solver runs nuts and outs searches. The zero value is not usable; use New.
type Solver struct {
	workers int
	tracer  Tracer
	clock   quartz.Clock
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets how many goroutines a search may use. Values below one
// select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// WithTracer installs a hook that receives search events.
func WithTracer(t Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithClock sets the clock used to time searches.
func WithClock(c quartz.Clock) Option {
	return func(s *Solver) {
		if c != nil {
			s.clock = c
		}
	}
}

// New creates a single-threaded solver with no tracing unless options say otherwise.
func New(opts ...Option) *Solver {
	s := &Solver{
		workers: 1,
		tracer:  nopTracer{},
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the configured worker count.
func (s *Solver) Workers() int {
	return s.workers
}

// Street names the betting round implied by the number of board cards.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// StreetOf maps a board size to its street.
func StreetOf(boardLen int) (Street, error) {
	switch boardLen {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	default:
		return 0, fmt.Errorf("%w: %d cards is not a street", ErrInvalidBoard, boardLen)
	}
}

func checkHole(hole []poker.Card) error {
	if len(hole) != 2 {
		return fmt.Errorf("%w: need 2 hole cards, got %d", poker.ErrCardCount, len(hole))
	}
	return nil
}

// distinct drops repeated cards, keeping the first occurrence of each.
func distinct(cards ...[]poker.Card) ([]poker.Card, poker.Hand) {
	var seen poker.Hand
	out := make([]poker.Card, 0, 7)
	for _, set := range cards {
		for _, c := range set {
			if seen.HasCard(c) {
				continue
			}
			seen.AddCard(c)
			out = append(out, c)
		}
	}
	return out, seen
}

// binomial returns n choose k.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

var defaultSolver = New()
