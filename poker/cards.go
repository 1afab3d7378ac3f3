// Package poker provides the card model and hand evaluation primitives used by
// the solver: card parsing, a bitset hand representation, a five-card
// classifier and a best-of-seven selector.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
	"unicode"
)

// Rank is a card rank from Two (0) to Ace (12).
type Rank uint8

// Suit is one of the four card suits.
type Suit uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumRanks and NumSuits describe a standard deck.
const (
	NumRanks = 13
	NumSuits = 4
)

const rankChars = "23456789TJQKA"
const suitChars = "cdhs"

// String returns the single character rank ("A", "T", "2").
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return rankChars[r : r+1]
}

// Value returns the conventional 2..14 numeric value of the rank.
func (r Rank) Value() int {
	return int(r) + 2
}

// String returns the lower-case suit character.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return suitChars[s : s+1]
}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

var suits = [NumSuits]Suit{Clubs, Diamonds, Hearts, Spades}

// Suits returns the suits in canonical order.
func Suits() [NumSuits]Suit {
	return suits
}

// Card is a single bit in a 64-bit layout of four 16-bit suit lanes.
// The zero Card is not a valid card.
type Card uint64

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(1) << (uint(suit)*16 + uint(rank))
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(bits.TrailingZeros64(uint64(c)) % 16)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(bits.TrailingZeros64(uint64(c)) / 16)
}

// Valid reports whether c holds exactly one card bit inside a suit lane.
func (c Card) Valid() bool {
	if bits.OnesCount64(uint64(c)) != 1 {
		return false
	}
	return c.Rank() <= Ace
}

// String returns the canonical two character form, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// Symbol returns the card with its suit glyph, e.g. "A♠".
func (c Card) Symbol() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().Symbol()
}

// ParseError reports a malformed card token.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

// ParseCard parses a single card token such as "As", "td" or "10h".
func ParseCard(token string) (Card, error) {
	s := strings.TrimSpace(token)
	switch {
	case len(s) == 3 && s[0] == '1' && s[1] == '0':
		if _, ok := parseSuit(s[2]); !ok {
			return 0, &ParseError{Token: token, Reason: fmt.Sprintf("want a suit after 10, got %q", s[2])}
		}
		s = "T" + s[2:]
	case len(s) != 2:
		return 0, &ParseError{Token: token, Reason: fmt.Sprintf("want 2 characters or 10 and a suit, got %d", len(s))}
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return 0, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", s[0])}
	}
	suit, ok := parseSuit(s[1])
	if !ok {
		return 0, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit %q", s[1])}
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses whitespace or comma separated tokens. Each field may also
// hold several cards written back to back ("AsKd", "10hJh").
func ParseCards(text string) ([]Card, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		for i := 0; i < len(field); {
			n := 2
			if strings.HasPrefix(field[i:], "10") {
				n = 3
			}
			if i+n > len(field) {
				return nil, &ParseError{Token: field[i:], Reason: "incomplete card"}
			}
			card, err := ParseCard(field[i : i+n])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			i += n
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(text string) []Card {
	cards, err := ParseCards(text)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", text, err))
	}
	return cards
}

// FormatCards joins cards with spaces in their canonical form.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '2'), true
	}
	return 0, false
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	default:
		return 0, false
	}
}

// Hand is a set of cards packed into a bitset.
type Hand uint64

// NewHand creates a hand from cards. Duplicate cards collapse into one.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the hand holds c.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of distinct cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the 13-bit rank mask for one suit.
func (h Hand) GetSuitMask(suit Suit) uint16 {
	return uint16(h>>(uint(suit)*16)) & 0x1FFF
}

// RankMask returns the union of all suit masks.
func (h Hand) RankMask() uint16 {
	return h.GetSuitMask(Clubs) | h.GetSuitMask(Diamonds) | h.GetSuitMask(Hearts) | h.GetSuitMask(Spades)
}

// Cards returns the cards in deck order (suit, then rank ascending).
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.CountCards())
	for v := uint64(h); v != 0; v &= v - 1 {
		out = append(out, Card(v&-v))
	}
	return out
}

// String lists the hand's cards.
func (h Hand) String() string {
	return FormatCards(h.Cards())
}
