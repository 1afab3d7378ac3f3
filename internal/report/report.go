// Package report renders solver results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pokersolver/internal/config"
	"github.com/lox/pokersolver/poker"
	"github.com/lox/pokersolver/solver"
	"github.com/muesli/termenv"
)

// Printer writes styled reports to an output.
type Printer struct {
	w io.Writer

	header   lipgloss.Style
	hand     lipgloss.Style
	category lipgloss.Style
	red      lipgloss.Style
	black    lipgloss.Style
	dim      lipgloss.Style
}

// New creates a Printer for w. color is one of the config colour modes.
func New(w io.Writer, color string) *Printer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		red:      r.NewStyle().Foreground(lipgloss.Color("9")),
		black:    r.NewStyle().Foreground(lipgloss.Color("7")),
		dim:      r.NewStyle().Faint(true),
	}
}

func (p *Printer) card(c poker.Card) string {
	if c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds {
		return p.red.Render(c.String())
	}
	return p.black.Render(c.String())
}

func (p *Printer) cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return p.dim.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.card(c)
	}
	return strings.Join(parts, " ")
}

func (p *Printer) line(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.header.Render(fmt.Sprintf("%-10s", label)), value)
}

// Cards prints the hole cards and board.
func (p *Printer) Cards(hole, board []poker.Card) {
	p.line("hole", p.cards(hole))
	p.line("board", p.cards(board))
}

// Evaluation prints the current best hand.
func (p *Printer) Evaluation(res poker.EvaluationResult) {
	if res.Status != poker.Evaluated || res.Classification == nil {
		p.line("hand", p.dim.Render(fmt.Sprintf("%d cards, need 5", len(res.AllCards))))
		return
	}
	p.line("hand", p.hand.Render(res.Classification.Describe()))
	p.line("best five", p.cards(res.BestFive))
}

// Nuts prints the best reachable hand.
func (p *Printer) Nuts(res solver.NutsResult, elapsed time.Duration) {
	p.line("nuts", p.hand.Render(res.Classification.Describe()))
	p.line("best five", p.cards(res.BestFive))
	p.line("needs", p.cards(res.Completion))

	status := fmt.Sprintf("%d boards examined in %v", res.Examined, elapsed.Truncate(time.Millisecond))
	if !res.Complete {
		status += " (incomplete)"
	}
	fmt.Fprintln(p.w, p.dim.Render(status))
}

// Outs prints the upgrading cards as a table, one row per suit.
func (p *Printer) Outs(rep solver.OutsReport) {
	p.line("outs", fmt.Sprintf("%d improve on %s", rep.Count(), p.category.Render(rep.Base.String())))
	if rep.Count() == 0 {
		return
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, suit := range poker.Suits() {
		outs := rep.Outs[suit]
		if len(outs) == 0 {
			continue
		}
		parts := make([]string, len(outs))
		for i, o := range outs {
			parts[i] = fmt.Sprintf("%s %s", p.card(o.Card), p.category.Render(o.Category.String()))
		}
		fmt.Fprintf(w, "  %s\t%s\n", suit.Symbol(), strings.Join(parts, ", "))
	}
	w.Flush()
}

// Analysis prints a full street report.
func (p *Printer) Analysis(a solver.Analysis, elapsed time.Duration) {
	p.line("street", a.Street.String())
	p.Cards(a.Evaluation.Hole, a.Evaluation.Board)
	p.Evaluation(a.Evaluation)
	if a.Nuts != nil {
		p.Nuts(*a.Nuts, elapsed)
	}
	if a.Outs != nil {
		p.Outs(*a.Outs)
	}
}
