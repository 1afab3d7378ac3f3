package solver

import (
	"context"
	"fmt"

	"github.com/lox/pokersolver/poker"
	"golang.org/x/sync/errgroup"
)

// Out is an undealt card and the category the hand reaches if it comes.
type Out struct {
	Card     poker.Card
	Category poker.Category
}

// OutsReport groups the cards that would upgrade the current hand by suit.
// Within a suit the outs are ordered by rank.
type OutsReport struct {
	Base poker.Category
	Outs map[poker.Suit][]Out
}

// Count returns the number of outs across all suits.
func (r OutsReport) Count() int {
	n := 0
	for _, outs := range r.Outs {
		n += len(outs)
	}
	return n
}

// Cards lists every out card, clubs first.
func (r OutsReport) Cards() []poker.Card {
	cards := make([]poker.Card, 0, r.Count())
	for _, suit := range poker.Suits() {
		for _, o := range r.Outs[suit] {
			cards = append(cards, o.Card)
		}
	}
	return cards
}

// FutureOuts lists the undealt cards that would change the category of the
// best hand on the next street. A river board has no next street and yields
// an empty report.
//
// If ctx is cancelled the outs of the suits already scanned are returned
// together with the context error.
func (s *Solver) FutureOuts(ctx context.Context, hole, board []poker.Card) (OutsReport, error) {
	if err := checkHole(hole); err != nil {
		return OutsReport{}, err
	}
	switch len(board) {
	case 3, 4, 5:
	default:
		return OutsReport{}, fmt.Errorf("%w: outs need 3 to 5 board cards, got %d", ErrInvalidBoard, len(board))
	}

	cards, known := distinct(hole, board)
	if len(cards) < 5 {
		return OutsReport{}, fmt.Errorf("%w: only %d distinct cards", poker.ErrCardCount, len(cards))
	}

	report := OutsReport{
		Base: poker.RankHand(known).Category(),
		Outs: make(map[poker.Suit][]Out),
	}
	if len(board) == 5 {
		return report, nil
	}

	start := s.clock.Now()
	avail := poker.Remaining(known)
	s.tracer.Trace(Event{Kind: EventStart, Op: "future_outs", Candidates: len(avail)})

	var bySuit [poker.NumSuits][]Out
	var examined [poker.NumSuits]int
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, suit := range poker.Suits() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, c := range avail {
				if c.Suit() != suit {
					continue
				}
				examined[suit]++
				if cat := poker.RankHand(known | poker.Hand(c)).Category(); cat != report.Base {
					bySuit[suit] = append(bySuit[suit], Out{Card: c, Category: cat})
				}
			}
			return nil
		})
	}
	err := g.Wait()

	total := 0
	for _, suit := range poker.Suits() {
		total += examined[suit]
		for _, o := range bySuit[suit] {
			report.Outs[suit] = append(report.Outs[suit], o)
			s.tracer.Trace(Event{Kind: EventOut, Op: "future_outs", Rank: poker.RankHand(known | poker.Hand(o.Card)), Cards: []poker.Card{o.Card}})
		}
	}
	s.tracer.Trace(Event{Kind: EventDone, Op: "future_outs", Examined: total, Elapsed: s.clock.Since(start)})
	return report, err
}

// FutureOuts runs Solver.FutureOuts on a default single-threaded solver.
func FutureOuts(ctx context.Context, hole, board []poker.Card) (OutsReport, error) {
	return defaultSolver.FutureOuts(ctx, hole, board)
}
