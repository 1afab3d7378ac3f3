package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lox/pokersolver/poker"
	"github.com/lox/pokersolver/solver"
)

type handArgs struct {
	Hole  string `arg:"" help:"Hole cards, e.g. 'AhKh' or 'Ah Kh'"`
	Board string `arg:"" optional:"" help:"Board cards, e.g. 'Td7s8h'"`
}

func (a handArgs) parse() (hole, board []poker.Card, err error) {
	hole, err = poker.ParseCards(a.Hole)
	if err != nil {
		return nil, nil, fmt.Errorf("hole: %w", err)
	}
	board, err = poker.ParseCards(a.Board)
	if err != nil {
		return nil, nil, fmt.Errorf("board: %w", err)
	}
	return hole, board, nil
}

// EvalCmd classifies the current best hand.
type EvalCmd struct {
	Hand handArgs `embed:""`
}

func (c *EvalCmd) Run(rt *Runtime) error {
	hole, board, err := c.Hand.parse()
	if err != nil {
		return err
	}
	res := poker.Evaluate(hole, board)
	rt.Logger.Debug("Evaluated hand", "status", res.Status, "cards", len(res.AllCards))

	rt.Printer.Cards(hole, board)
	rt.Printer.Evaluation(res)
	return nil
}

// NutsCmd finds the best reachable hand.
type NutsCmd struct {
	Hand handArgs `embed:""`
}

func (c *NutsCmd) Run(rt *Runtime) error {
	hole, board, err := c.Hand.parse()
	if err != nil {
		return err
	}

	start := rt.Clock.Now()
	res, err := rt.Solver.BestPossible(rt.Ctx, hole, board)
	if err != nil && res.Examined == 0 {
		return err
	}
	if err != nil {
		rt.Logger.Warn("Search interrupted, showing best hand so far", "err", err)
	}

	rt.Printer.Cards(hole, board)
	rt.Printer.Nuts(res, rt.Clock.Since(start))
	return nil
}

// OutsCmd lists the improving cards.
type OutsCmd struct {
	Hand handArgs `embed:""`
}

func (c *OutsCmd) Run(rt *Runtime) error {
	hole, board, err := c.Hand.parse()
	if err != nil {
		return err
	}

	rep, err := rt.Solver.FutureOuts(rt.Ctx, hole, board)
	if err != nil {
		return err
	}
	rt.Printer.Cards(hole, board)
	rt.Printer.Outs(rep)
	return nil
}

// AnalyzeCmd runs every analysis for the street.
type AnalyzeCmd struct {
	Hand handArgs `embed:""`
}

func (c *AnalyzeCmd) Run(rt *Runtime) error {
	hole, board, err := c.Hand.parse()
	if err != nil {
		return err
	}
	return analyze(rt, hole, board)
}

func analyze(rt *Runtime, hole, board []poker.Card) error {
	start := rt.Clock.Now()
	a, err := rt.Solver.Analyze(rt.Ctx, hole, board)
	if err != nil && a.Nuts == nil {
		return err
	}
	if err != nil {
		rt.Logger.Warn("Analysis interrupted, showing partial results", "err", err)
	}
	rt.Printer.Analysis(a, rt.Clock.Since(start))
	return nil
}

// DealCmd deals a random hand to a street and analyzes it.
type DealCmd struct {
	Street string `default:"flop" enum:"preflop,flop,turn,river" help:"Street to deal to (${enum})"`
	Seed   int64  `default:"0" help:"RNG seed (0 for random)"`
}

var streetBoard = map[string]int{
	"preflop": 0,
	"flop":    3,
	"turn":    4,
	"river":   5,
}

func (c *DealCmd) Run(rt *Runtime) error {
	n, ok := streetBoard[c.Street]
	if !ok {
		return fmt.Errorf("%w: unknown street %q", solver.ErrInvalidBoard, c.Street)
	}

	seed := c.Seed
	if seed == 0 {
		seed = rt.Clock.Now().UnixNano()
	}
	rt.Logger.Info("Dealing hand", "street", c.Street, "seed", seed)

	d := poker.NewDeck(rand.New(rand.NewSource(seed)))
	hole := d.Deal(2)
	board := d.Deal(n)
	if hole == nil || board == nil {
		return errors.New("deck exhausted")
	}
	return analyze(rt, hole, board)
}
