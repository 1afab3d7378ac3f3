package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// ErrCardCount is returned when an operation receives the wrong number of cards.
var ErrCardCount = errors.New("wrong number of cards")

// Classification is the category and tiebreak vector of a five-card hand,
// together with the five cards that produced it.
type Classification struct {
	Category Category
	Tiebreak []Rank
	Cards    [5]Card
}

// Compare orders classifications by category, then tiebreak. It returns -1,
// 0 or 1.
func (c Classification) Compare(o Classification) int {
	if c.Category != o.Category {
		if c.Category < o.Category {
			return -1
		}
		return 1
	}
	return slices.Compare(c.Tiebreak, o.Tiebreak)
}

// Beats reports whether c is strictly stronger than o.
func (c Classification) Beats(o Classification) bool {
	return c.Compare(o) > 0
}

// Rank packs the classification into a HandRank.
func (c Classification) Rank() HandRank {
	return packRank(c.Category, c.Tiebreak...)
}

// IsRoyal reports whether the hand is an ace-high straight flush.
func (c Classification) IsRoyal() bool {
	return c.Category == StraightFlush && len(c.Tiebreak) > 0 && c.Tiebreak[0] == Ace
}

// Name returns the display name, calling out the royal flush.
func (c Classification) Name() string {
	if c.IsRoyal() {
		return "Royal Flush"
	}
	return c.Category.String()
}

// BestFive returns the contributing cards as a slice.
func (c Classification) BestFive() []Card {
	out := make([]Card, 5)
	copy(out, c.Cards[:])
	return out
}

// String returns the hand name and its cards.
func (c Classification) String() string {
	return fmt.Sprintf("%s [%s]", c.Name(), FormatCards(c.Cards[:]))
}

// Describe explains the hand in words, e.g. "Full House, Kings full of Fours".
func (c Classification) Describe() string {
	tb := c.Tiebreak
	if int(c.Category) >= NumCategories || len(tb) != tiebreakLen[c.Category] {
		return c.Name()
	}
	switch c.Category {
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", c.Name(), rankName(tb[0]))
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", c.Name(), rankPlural(tb[0]))
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", c.Name(), rankPlural(tb[0]), rankPlural(tb[1]))
	case Flush, HighCard:
		return fmt.Sprintf("%s, %s high", c.Name(), rankName(tb[0]))
	case ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s", c.Name(), rankPlural(tb[0]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", c.Name(), rankPlural(tb[0]), rankPlural(tb[1]))
	default:
		return c.Name()
	}
}

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func rankName(r Rank) string {
	if r > Ace {
		return "?"
	}
	return rankNames[r]
}

func rankPlural(r Rank) string {
	if r == Six {
		return "Sixes"
	}
	return rankName(r) + "s"
}

// Classify classifies exactly five cards.
func Classify(cards []Card) (Classification, error) {
	if len(cards) != 5 {
		return Classification{}, fmt.Errorf("%w: classify needs 5, got %d", ErrCardCount, len(cards))
	}
	var five [5]Card
	copy(five[:], cards)
	return classifyFive(five), nil
}

func classifyFive(five [5]Card) Classification {
	var counts [NumRanks]uint8
	var rankMask uint16
	flush := true
	for _, c := range five {
		r := c.Rank()
		counts[r]++
		rankMask |= rankBit(r)
		if c.Suit() != five[0].Suit() {
			flush = false
		}
	}

	var high Rank
	straight := false
	if bits.OnesCount16(rankMask) == 5 {
		high, straight = straightHigh(rankMask)
	}

	// Group ranks by multiplicity, largest group first, higher rank first.
	groups := make([]Rank, 0, 5)
	for n := uint8(5); n >= 1; n-- {
		for r := int(Ace); r >= int(Two); r-- {
			if counts[r] == n {
				groups = append(groups, Rank(r))
			}
		}
	}
	descending := make([]Rank, 0, 5)
	for r := int(Ace); r >= int(Two); r-- {
		for i := uint8(0); i < counts[r]; i++ {
			descending = append(descending, Rank(r))
		}
	}
	top := counts[groups[0]]

	cls := Classification{Cards: five}
	switch {
	case flush && straight:
		cls.Category, cls.Tiebreak = StraightFlush, []Rank{high}
	case len(groups) == 2 && top == 4:
		cls.Category, cls.Tiebreak = FourOfAKind, groups
	case len(groups) == 2 && top == 3:
		cls.Category, cls.Tiebreak = FullHouse, groups
	case flush:
		cls.Category, cls.Tiebreak = Flush, descending
	case straight:
		cls.Category, cls.Tiebreak = Straight, []Rank{high}
	case len(groups) == 3 && top == 3:
		cls.Category, cls.Tiebreak = ThreeOfAKind, groups
	case len(groups) == 3 && top == 2:
		cls.Category, cls.Tiebreak = TwoPair, groups
	case len(groups) == 4:
		cls.Category, cls.Tiebreak = OnePair, groups
	default:
		cls.Category, cls.Tiebreak = HighCard, descending
	}

	orderCards(&cls.Cards, counts, cls.Category, high)
	return cls
}

// orderCards arranges the five cards for display: bigger groups first, then
// higher ranks, with the ace last in a five-high straight.
func orderCards(five *[5]Card, counts [NumRanks]uint8, cat Category, high Rank) {
	wheel := (cat == Straight || cat == StraightFlush) && high == Five
	key := func(c Card) int {
		r := int(c.Rank())
		if wheel && c.Rank() == Ace {
			r = -1
		}
		return int(counts[c.Rank()])*16 + r + 1
	}
	slices.SortStableFunc(five[:], func(a, b Card) int {
		if d := key(b) - key(a); d != 0 {
			return d
		}
		return int(b.Suit()) - int(a.Suit())
	})
}

// BestOf returns the strongest five-card classification among 5 to 7 cards.
// When several subsets tie, the first one in enumeration order is kept.
func BestOf(cards []Card) (Classification, error) {
	n := len(cards)
	if n < 5 || n > 7 {
		return Classification{}, fmt.Errorf("%w: best of needs 5 to 7, got %d", ErrCardCount, n)
	}

	var best Classification
	found := false
	var five [5]Card
	forEachFive(n, func(idx [5]int) {
		for i, j := range idx {
			five[i] = cards[j]
		}
		cls := classifyFive(five)
		if !found || cls.Beats(best) {
			best = cls
			found = true
		}
	})
	return best, nil
}

// forEachFive calls fn with every ascending 5-index combination of 0..n-1.
func forEachFive(n int, fn func(idx [5]int)) {
	var idx [5]int
	for idx[0] = 0; idx[0] < n-4; idx[0]++ {
		for idx[1] = idx[0] + 1; idx[1] < n-3; idx[1]++ {
			for idx[2] = idx[1] + 1; idx[2] < n-2; idx[2]++ {
				for idx[3] = idx[2] + 1; idx[3] < n-1; idx[3]++ {
					for idx[4] = idx[3] + 1; idx[4] < n; idx[4]++ {
						fn(idx)
					}
				}
			}
		}
	}
}

// FormatRanks renders a tiebreak vector, e.g. "A K 9 4 2".
func FormatRanks(ranks []Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
