package solver

import (
	"context"

	"github.com/lox/pokersolver/poker"
)

// Analysis is everything known about a hand at one street.
type Analysis struct {
	Street     Street
	Evaluation poker.EvaluationResult
	// Nuts is nil when there are not exactly two hole cards.
	Nuts *NutsResult
	// Outs is nil before the flop or without two hole cards.
	Outs *OutsReport
}

// Analyze evaluates the current hand and, when the hole cards allow it, adds
// the nuts and the outs for the street. A cancelled search keeps whatever
// partial results it produced.
func (s *Solver) Analyze(ctx context.Context, hole, board []poker.Card) (Analysis, error) {
	street, err := StreetOf(len(board))
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Street:     street,
		Evaluation: poker.Evaluate(hole, board),
	}
	if len(hole) != 2 {
		return a, nil
	}

	nuts, err := s.BestPossible(ctx, hole, board)
	if nuts.Examined > 0 {
		a.Nuts = &nuts
	}
	if err != nil {
		return a, err
	}

	if street == Preflop {
		return a, nil
	}
	outs, err := s.FutureOuts(ctx, hole, board)
	if outs.Outs != nil && (err == nil || outs.Count() > 0) {
		a.Outs = &outs
	}
	return a, err
}
