package solver

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/lox/pokersolver/poker"
	"golang.org/x/sync/errgroup"
)

// NutsResult is the strongest hand reachable from a partial board.
type NutsResult struct {
	Classification poker.Classification
	BestFive       []poker.Card
	// Completion holds the board cards that were added, in deck order. It is
	// empty when the board was already complete.
	Completion []poker.Card
	// Examined counts the completions that were scored.
	Examined int
	// Complete is false when the search was cut short by cancellation.
	Complete bool
}

// how often a worker looks at the context and the royal marker
const checkInterval = 1 << 12

type nutsTask struct {
	best       poker.HandRank
	completion []poker.Card
	examined   int
	err        error
}

// BestPossible finds the best hand the hole cards can make over every legal
// completion of board. The search stops early only once a royal flush has
// been found, so the result is the same for any worker count.
//
// If ctx is cancelled the best hand found so far is returned together with
// the context error.
func (s *Solver) BestPossible(ctx context.Context, hole, board []poker.Card) (NutsResult, error) {
	if len(board) > 5 {
		return NutsResult{}, fmt.Errorf("%w: at most 5 board cards, got %d", ErrInvalidBoard, len(board))
	}
	if err := checkHole(hole); err != nil {
		return NutsResult{}, err
	}

	cards, known := distinct(hole, board)
	remaining := 5 - len(board)
	if len(cards)+remaining < 5 {
		return NutsResult{}, fmt.Errorf("%w: only %d distinct cards", poker.ErrCardCount, len(cards))
	}

	start := s.clock.Now()
	if remaining == 0 {
		return s.nutsComplete(cards, start), nil
	}

	avail := poker.Remaining(known)
	tasks := len(avail) - remaining + 1
	s.tracer.Trace(Event{Kind: EventStart, Op: "best_possible", Candidates: binomial(len(avail), remaining)})

	results := make([]nutsTask, tasks)
	var royalAt atomic.Int64
	royalAt.Store(math.MaxInt64)

	// Workers watch ctx itself so a cancellation is seen at the next check.
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < tasks; i++ {
		if ctx.Err() != nil || int64(i) > royalAt.Load() {
			break
		}
		g.Go(func() error {
			results[i] = searchFrom(ctx, known, avail, i, remaining, &royalAt)
			return results[i].err
		})
	}
	err := g.Wait()

	last := tasks - 1
	exited := royalAt.Load() != math.MaxInt64
	if exited {
		last = int(royalAt.Load())
	}

	var (
		best       poker.HandRank
		completion []poker.Card
		examined   int
		winner     = -1
		skipped    bool
	)
	for i := 0; i <= last; i++ {
		r := results[i]
		examined += r.examined
		if r.examined == 0 {
			skipped = true
			continue
		}
		if winner < 0 || r.best > best {
			best, completion, winner = r.best, r.completion, i
			s.tracer.Trace(Event{Kind: EventImproved, Op: "best_possible", Task: i, Rank: best, Cards: completion})
		}
	}

	if skipped && err == nil {
		// Tasks are only left unstarted when the caller's context ends.
		err = ctx.Err()
	}
	if winner < 0 {
		return NutsResult{}, err
	}
	if exited {
		s.tracer.Trace(Event{Kind: EventEarlyExit, Op: "best_possible", Task: winner, Rank: best, Cards: completion})
	}

	// At most seven cards: the distinct known cards plus the completion.
	cls, clsErr := poker.BestOf(append(cards, completion...))
	if clsErr != nil {
		return NutsResult{}, clsErr
	}
	res := NutsResult{
		Classification: cls,
		BestFive:       cls.BestFive(),
		Completion:     completion,
		Examined:       examined,
		Complete:       err == nil,
	}
	s.tracer.Trace(Event{Kind: EventDone, Op: "best_possible", Examined: examined, Elapsed: s.clock.Since(start)})
	return res, err
}

func (s *Solver) nutsComplete(cards []poker.Card, start time.Time) NutsResult {
	// Five to seven distinct cards, so BestOf cannot fail.
	cls, _ := poker.BestOf(cards)
	s.tracer.Trace(Event{Kind: EventDone, Op: "best_possible", Examined: 1, Elapsed: s.clock.Since(start)})
	return NutsResult{
		Classification: cls,
		BestFive:       cls.BestFive(),
		Completion:     []poker.Card{},
		Examined:       1,
		Complete:       true,
	}
}

// searchFrom scores every completion whose first card is avail[first], in
// lexicographic order, keeping the first strictly best one.
func searchFrom(ctx context.Context, known poker.Hand, avail []poker.Card, first, k int, royalAt *atomic.Int64) nutsTask {
	var res nutsTask
	if ctx.Err() != nil {
		res.err = ctx.Err()
		return res
	}

	base := known | poker.Hand(avail[first])
	var bestIdx []int
	combinations(first+1, len(avail), k-1, func(idx []int) bool {
		h := base
		for _, j := range idx {
			h |= poker.Hand(avail[j])
		}
		hr := poker.RankHand(h)
		res.examined++

		if res.examined == 1 || hr > res.best {
			res.best = hr
			bestIdx = append(bestIdx[:0], idx...)
		}
		if hr == poker.RoyalFlushRank {
			markRoyal(royalAt, first)
			return false
		}
		if res.examined%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.err = err
				return false
			}
			if royalAt.Load() < int64(first) {
				return false
			}
		}
		return true
	})

	res.completion = make([]poker.Card, 0, k)
	res.completion = append(res.completion, avail[first])
	for _, j := range bestIdx {
		res.completion = append(res.completion, avail[j])
	}
	return res
}

// markRoyal lowers the recorded royal task index to task if it is smaller.
func markRoyal(royalAt *atomic.Int64, task int) {
	for {
		cur := royalAt.Load()
		if int64(task) >= cur || royalAt.CompareAndSwap(cur, int64(task)) {
			return
		}
	}
}

// combinations calls fn with every ascending k-subset of [lo, n) in
// lexicographic order until fn returns false.
func combinations(lo, n, k int, fn func(idx []int) bool) {
	if k == 0 {
		fn(nil)
		return
	}
	if n-lo < k {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = lo + i
	}
	for {
		if !fn(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// BestPossible runs Solver.BestPossible on a default single-threaded solver.
func BestPossible(ctx context.Context, hole, board []poker.Card) (NutsResult, error) {
	return defaultSolver.BestPossible(ctx, hole, board)
}
