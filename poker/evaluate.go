package poker

// Status tells whether an evaluation had enough cards to classify a hand.
type Status uint8

const (
	// Insufficient means fewer than five cards were known.
	Insufficient Status = iota
	// Evaluated means a best five-card hand was found.
	Evaluated
)

func (s Status) String() string {
	switch s {
	case Insufficient:
		return "insufficient"
	case Evaluated:
		return "evaluated"
	default:
		return "unknown"
	}
}

// EvaluationResult is the outcome of Evaluate. Classification is nil and
// BestFive is empty when Status is Insufficient.
type EvaluationResult struct {
	Hole           []Card
	Board          []Card
	AllCards       []Card
	BestFive       []Card
	Classification *Classification
	Status         Status
}

// Evaluate classifies the best hand made from hole and board cards. Fewer
// than five cards yields an Insufficient result; beyond seven cards only the
// first seven are considered.
func Evaluate(hole, board []Card) EvaluationResult {
	res := EvaluationResult{
		Hole:     cloneCards(hole),
		Board:    cloneCards(board),
		AllCards: make([]Card, 0, len(hole)+len(board)),
		BestFive: []Card{},
		Status:   Insufficient,
	}
	res.AllCards = append(res.AllCards, hole...)
	res.AllCards = append(res.AllCards, board...)

	considered := res.AllCards
	if len(considered) > 7 {
		considered = considered[:7]
	}
	if len(considered) < 5 {
		return res
	}

	// BestOf cannot fail for 5 to 7 cards.
	cls, _ := BestOf(considered)
	res.Classification = &cls
	res.BestFive = cls.BestFive()
	res.Status = Evaluated
	return res
}

func cloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
