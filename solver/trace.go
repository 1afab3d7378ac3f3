package solver

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/pokersolver/poker"
)

// EventKind identifies a trace event.
type EventKind uint8

const (
	EventStart EventKind = iota
	EventImproved
	EventEarlyExit
	EventOut
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventImproved:
		return "improved"
	case EventEarlyExit:
		return "early_exit"
	case EventOut:
		return "out"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event describes a step of a search. Fields that do not apply to a kind are
// left zero.
type Event struct {
	Kind       EventKind
	Op         string
	Task       int
	Candidates int
	Examined   int
	Rank       poker.HandRank
	Cards      []poker.Card
	Elapsed    time.Duration
}

// Tracer receives search events. Events are delivered from the goroutine
// that called the search, never from workers.
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(Event)

func (f TracerFunc) Trace(e Event) { f(e) }

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// LogTracer writes events to logger at debug level.
func LogTracer(logger *log.Logger) Tracer {
	return TracerFunc(func(e Event) {
		kv := []any{"op", e.Op}
		switch e.Kind {
		case EventStart:
			kv = append(kv, "candidates", e.Candidates)
		case EventImproved, EventEarlyExit:
			kv = append(kv, "task", e.Task, "hand", e.Rank, "cards", poker.FormatCards(e.Cards))
		case EventOut:
			kv = append(kv, "card", poker.FormatCards(e.Cards), "hand", e.Rank)
		case EventDone:
			kv = append(kv, "examined", e.Examined, "elapsed", e.Elapsed)
		}
		logger.Debug(e.Kind.String(), kv...)
	})
}
