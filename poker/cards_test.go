package poker

import (
	"errors"
	"math/bits"
	"math/rand"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if aceSpades.Symbol() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.Symbol())
	}

	// Two of clubs is the lowest card
	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}

	var zero Card
	if zero.Valid() {
		t.Error("zero card should not be valid")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten with T", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "ten with 10", input: "10c", wantCard: NewCard(Ten, Clubs)},
		{name: "lower case", input: "qs", wantCard: NewCard(Queen, Spades)},
		{name: "upper case suit", input: "JH", wantCard: NewCard(Jack, Hearts)},
		{name: "surrounding space", input: " 9d ", wantCard: NewCard(Nine, Diamonds)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "zero rank", input: "0h", wantErr: true},
		{name: "one rank", input: "1h", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "ten with bad suit", input: "10x", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
		{name: "eleven", input: "11h", wantErr: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ParseCard(%q) error = %v, want *ParseError", tc.input, err)
				}
				if perr.Token != tc.input {
					t.Errorf("ParseError token = %q, want %q", perr.Token, tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tc.input, err)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "space separated", input: "As Kd Qh", want: "As Kd Qh"},
		{name: "concatenated", input: "AsKdQh", want: "As Kd Qh"},
		{name: "mixed case", input: "asKHqD", want: "As Kh Qd"},
		{name: "ten notation", input: "10h Jh", want: "Th Jh"},
		{name: "ten concatenated", input: "Ah10s", want: "Ah Ts"},
		{name: "commas and tabs", input: "2c,3d\t4h", want: "2c 3d 4h"},
		{name: "empty", input: "   ", want: ""},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "bad token reported", input: "As Zz Kd", wantErr: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cards, err := ParseCards(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseCards(%q) expected error, got %v", tc.input, cards)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) unexpected error: %v", tc.input, err)
			}
			if got := FormatCards(cards); got != tc.want {
				t.Errorf("ParseCards(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseCardsReportsFirstFailure(t *testing.T) {
	t.Parallel()
	_, err := ParseCards("As Xx Zz")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Token != "Xx" {
		t.Errorf("first failure token = %q, want %q", perr.Token, "Xx")
	}
}

func TestParseCardReason(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input  string
		reason string
	}{
		{"101", `want a suit after 10, got '1'`},
		{"10x", `want a suit after 10, got 'x'`},
		{"Asd", "want 2 characters or 10 and a suit, got 3"},
		{"A", "want 2 characters or 10 and a suit, got 1"},
		{"Xs", `unknown rank 'X'`},
		{"Ax", `unknown suit 'x'`},
	}

	for _, tc := range tests {
		_, err := ParseCard(tc.input)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseCard(%q) error = %v, want *ParseError", tc.input, err)
		}
		if perr.Token != tc.input || perr.Reason != tc.reason {
			t.Errorf("ParseCard(%q) = %q / %q, want reason %q", tc.input, perr.Token, perr.Reason, tc.reason)
		}
	}
}

func TestSuitsIsACopy(t *testing.T) {
	t.Parallel()
	s := Suits()
	s[0] = Spades
	if Suits()[0] != Clubs {
		t.Error("changing the returned suits should not affect the package order")
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	cards := make(map[string]bool)

	for _, suit := range Suits() {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			str := card.String()

			if cards[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			cards[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
		}
	}

	if len(cards) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(cards))
	}
}

func TestHandOperations(t *testing.T) {
	t.Parallel()
	aceSpades, _ := ParseCard("As")
	kingHearts, _ := ParseCard("Kh")
	queenDiamonds, _ := ParseCard("Qd")

	hand := NewHand(aceSpades, kingHearts)

	if !hand.HasCard(aceSpades) {
		t.Error("Hand should contain Ace of Spades")
	}
	if !hand.HasCard(kingHearts) {
		t.Error("Hand should contain King of Hearts")
	}
	if hand.HasCard(queenDiamonds) {
		t.Error("Hand should not contain Queen of Diamonds")
	}
	if hand.CountCards() != 2 {
		t.Errorf("Hand should have 2 cards, got %d", hand.CountCards())
	}

	hand.AddCard(queenDiamonds)
	if !hand.HasCard(queenDiamonds) {
		t.Error("Hand should now contain Queen of Diamonds")
	}
	if hand.CountCards() != 3 {
		t.Errorf("Hand should have 3 cards, got %d", hand.CountCards())
	}

	// Adding a duplicate leaves the set unchanged
	hand.AddCard(aceSpades)
	if hand.CountCards() != 3 {
		t.Errorf("Duplicate add should not grow the hand, got %d", hand.CountCards())
	}

	if got := hand.String(); got != "Qd Kh As" {
		t.Errorf("Hand string = %q, want deck order %q", got, "Qd Kh As")
	}
}

func TestHandBitset(t *testing.T) {
	t.Parallel()
	aceSpades, _ := ParseCard("As")
	aceHearts, _ := ParseCard("Ah")
	twoClubs, _ := ParseCard("2c")

	if bits.OnesCount64(uint64(aceSpades)) != 1 {
		t.Error("Card should be a single bit")
	}
	if aceSpades&aceHearts != 0 || aceSpades&twoClubs != 0 || aceHearts&twoClubs != 0 {
		t.Error("Different cards should not share bits")
	}

	combined := Hand(aceSpades) | Hand(aceHearts) | Hand(twoClubs)
	if combined.CountCards() != 3 {
		t.Errorf("Combined hand should have 3 cards, got %d", combined.CountCards())
	}
}

func TestGetSuitMask(t *testing.T) {
	t.Parallel()
	cards := []Card{}
	for rank := Two; rank <= Ace; rank++ {
		cards = append(cards, NewCard(rank, Spades))
	}

	hand := NewHand(cards...)

	if spadesMask := hand.GetSuitMask(Spades); spadesMask != 0x1FFF {
		t.Errorf("Expected all spades, got mask %016b", spadesMask)
	}
	if hand.GetSuitMask(Hearts) != 0 {
		t.Error("Hearts should be empty")
	}
	if hand.RankMask() != 0x1FFF {
		t.Errorf("Expected full rank mask, got %016b", hand.RankMask())
	}
}

func TestDeck(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	deck := NewDeck(rng)

	cards1 := deck.Deal(2)
	if len(cards1) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards1))
	}

	cards2 := deck.Deal(3)
	if len(cards2) != 3 {
		t.Errorf("Expected 3 cards, got %d", len(cards2))
	}

	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			if c1 == c2 {
				t.Error("Dealt same card twice")
			}
		}
	}

	remaining := deck.Deal(47)
	if len(remaining) != 47 {
		t.Errorf("Expected 47 remaining cards, got %d", len(remaining))
	}

	if extra := deck.Deal(1); extra != nil {
		t.Error("Should not be able to deal from empty deck")
	}
	if deck.DealOne() != 0 {
		t.Error("DealOne on empty deck should return the zero card")
	}

	deck.Reset()
	if newCards := deck.Deal(2); len(newCards) != 2 {
		t.Error("Should be able to deal after reset")
	}
	if deck.CardsRemaining() != 50 {
		t.Errorf("Expected 50 cards remaining, got %d", deck.CardsRemaining())
	}
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	a := NewDeck(rand.New(rand.NewSource(7))).Deal(52)
	b := NewDeck(rand.New(rand.NewSource(7))).Deal(52)
	if FormatCards(a) != FormatCards(b) {
		t.Error("same seed should deal the same order")
	}
	if NewHand(a...).CountCards() != 52 {
		t.Error("a full deal should contain 52 distinct cards")
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()
	known := NewHand(MustParseCards("As Kd 2c")...)
	rest := Remaining(known)
	if len(rest) != 49 {
		t.Fatalf("Expected 49 remaining cards, got %d", len(rest))
	}
	for _, c := range rest {
		if known.HasCard(c) {
			t.Errorf("Remaining returned known card %s", c)
		}
	}
	if rest[0] != NewCard(Three, Clubs) {
		t.Errorf("Remaining should start at 3c in deck order, got %s", rest[0])
	}
	if len(FullDeck()) != 52 {
		t.Error("FullDeck should have 52 cards")
	}
}

func BenchmarkCardCreation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewCard(Ace, Spades)
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
