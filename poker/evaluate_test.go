package poker

import (
	"math/rand"
	"testing"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hole     string
		board    string
		category Category
		tiebreak string
		mustUse  string
	}{
		{"wheel", "Ah 2c", "3d 4s 5h", Straight, "5", "Ah 2c 3d 4s 5h"},
		{"wheel on the board", "5h 4d", "3c 2s Ah", Straight, "5", "5h 4d 3c 2s Ah"},
		{"flush over broadway draw", "Kh 2h", "Ah Qh Jh 3d 4s", Flush, "A K Q J 2", "Ah Kh"},
		{"flush uses both hole cards", "Ah Kh", "2h 7h 9h Qc 3d", Flush, "A K 9 7 2", "Ah Kh"},
		{"six cards with four aces", "As Ad", "Ah Ac Kd 2c", FourOfAKind, "A K", "As Ad Ah Ac Kd"},
		{"board plays", "2c 3d", "As Ks Qs Js Ts", StraightFlush, "A", "As Ks Qs Js Ts"},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Evaluate(MustParseCards(tc.hole), MustParseCards(tc.board))
			if res.Status != Evaluated {
				t.Fatalf("status = %s, want evaluated", res.Status)
			}
			if res.Classification.Category != tc.category {
				t.Errorf("category = %s, want %s", res.Classification.Category, tc.category)
			}
			if got := FormatRanks(res.Classification.Tiebreak); got != tc.tiebreak {
				t.Errorf("tiebreak = %q, want %q", got, tc.tiebreak)
			}
			if len(res.BestFive) != 5 {
				t.Fatalf("best five has %d cards", len(res.BestFive))
			}
			best := NewHand(res.BestFive...)
			for _, c := range MustParseCards(tc.mustUse) {
				if !best.HasCard(c) {
					t.Errorf("best five %s is missing %s", FormatCards(res.BestFive), c)
				}
			}
		})
	}
}

func TestEvaluateInsufficient(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ hole, board string }{
		{"", ""},
		{"As Kd", ""},
		{"As Kd", "Qh 2c"},
	} {
		res := Evaluate(MustParseCards(tc.hole), MustParseCards(tc.board))
		if res.Status != Insufficient {
			t.Errorf("Evaluate(%q, %q) status = %s, want insufficient", tc.hole, tc.board, res.Status)
		}
		if res.Classification != nil {
			t.Errorf("Evaluate(%q, %q) classification = %s, want none", tc.hole, tc.board, res.Classification)
		}
		if res.BestFive == nil || len(res.BestFive) != 0 {
			t.Errorf("Evaluate(%q, %q) best five = %v, want empty", tc.hole, tc.board, res.BestFive)
		}
		if len(res.AllCards) != len(MustParseCards(tc.hole))+len(MustParseCards(tc.board)) {
			t.Errorf("all cards should echo the inputs, got %s", FormatCards(res.AllCards))
		}
	}
}

func TestEvaluateUsesFirstSevenCards(t *testing.T) {
	t.Parallel()
	// The eighth card would complete a royal flush; it must be ignored.
	res := Evaluate(MustParseCards("Ks Qs"), MustParseCards("Js Ts 2c 3d 4h As"))
	if res.Status != Evaluated {
		t.Fatalf("status = %s", res.Status)
	}
	if res.Classification.Category != HighCard {
		t.Errorf("category = %s, want high card from the first seven cards", res.Classification.Category)
	}
	if len(res.AllCards) != 8 {
		t.Errorf("all cards should keep every input, got %d", len(res.AllCards))
	}
}

func TestEvaluateDoesNotAliasInputs(t *testing.T) {
	t.Parallel()
	hole := MustParseCards("Ah Kh")
	board := MustParseCards("2h 7h 9h")
	res := Evaluate(hole, board)
	hole[0] = NewCard(Two, Clubs)
	if res.Hole[0] != NewCard(Ace, Hearts) {
		t.Error("result should not share memory with the caller's hole slice")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()
	hole := MustParseCards("9c 9d")
	board := MustParseCards("9h 4s 4d Kc 2h")
	a := Evaluate(hole, board)
	b := Evaluate(hole, board)
	if a.Classification.Compare(*b.Classification) != 0 || FormatCards(a.BestFive) != FormatCards(b.BestFive) {
		t.Error("evaluating the same cards twice should give the same result")
	}
}

// TestEvaluateNeverWeakens checks that adding a board card never lowers the
// best hand.
func TestEvaluateNeverWeakens(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(5)))
	for i := 0; i < 2000; i++ {
		deck.Reset()
		hole := deck.Deal(2)
		board := deck.Deal(5)

		prev := Evaluate(hole, board[:3])
		for n := 4; n <= 5; n++ {
			next := Evaluate(hole, board[:n])
			if next.Classification.Compare(*prev.Classification) < 0 {
				t.Fatalf("%s | %s weakened from %s to %s", FormatCards(hole), FormatCards(board[:n]),
					prev.Classification, next.Classification)
			}
			prev = next
		}
	}
}
