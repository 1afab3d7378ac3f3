package poker

import (
	"math/rand"
)

// fullDeck holds all 52 cards in deck order: clubs, diamonds, hearts, spades,
// each from Two to Ace.
var fullDeck = func() [52]Card {
	var cards [52]Card
	i := 0
	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return cards
}()

// FullDeck returns the 52 cards in deck order.
func FullDeck() []Card {
	out := make([]Card, len(fullDeck))
	copy(out, fullDeck[:])
	return out
}

// Remaining returns, in deck order, every card not present in known.
func Remaining(known Hand) []Card {
	out := make([]Card, 0, 52-known.CountCards())
	for _, c := range fullDeck {
		if !known.HasCard(c) {
			out = append(out, c)
		}
	}
	return out
}

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: fullDeck,
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
