package poker

import (
	"math/bits"
)

// Category enumerates the categories of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 9

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// tiebreakLen is the tiebreak vector length for each category.
var tiebreakLen = [NumCategories]int{
	HighCard:      5,
	OnePair:       4,
	TwoPair:       3,
	ThreeOfAKind:  3,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
}

// HandRank packs a category and its tiebreak vector into one comparable
// value: the category in bits 20-23 and up to five ranks in descending
// nibbles below it. Higher values are stronger hands.
type HandRank uint32

// RoyalFlushRank is the strongest possible hand.
const RoyalFlushRank = HandRank(uint32(StraightFlush)<<20 | uint32(Ace)<<16)

func packRank(cat Category, tiebreak ...Rank) HandRank {
	v := uint32(cat) << 20
	for i, r := range tiebreak {
		if i == 5 {
			break
		}
		v |= uint32(r) << (16 - 4*uint(i))
	}
	return HandRank(v)
}

// Category returns the hand category.
func (hr HandRank) Category() Category {
	return Category(hr >> 20)
}

// Tiebreak unpacks the tiebreak vector.
func (hr HandRank) Tiebreak() []Rank {
	cat := hr.Category()
	if int(cat) >= NumCategories {
		return nil
	}
	out := make([]Rank, tiebreakLen[cat])
	for i := range out {
		out[i] = Rank(hr>>(16-4*uint(i))) & 0xF
	}
	return out
}

// String returns the category name.
func (hr HandRank) String() string {
	return hr.Category().String()
}

// RankHand scores the best five-card hand contained in h. It needs at least
// five distinct cards and returns 0 otherwise.
func RankHand(h Hand) HandRank {
	if h.CountCards() < 5 {
		return 0
	}

	var suitMasks [NumSuits]uint16
	var rankMask uint16
	for _, suit := range suits {
		mask := h.GetSuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}
	return rankFromMasks(suitMasks, rankMask)
}

func rankFromMasks(suitMasks [NumSuits]uint16, rankMask uint16) HandRank {
	var flushRank HandRank
	flushFound := false
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		var strength HandRank
		if high, ok := straightHigh(suitMask); ok {
			strength = packRank(StraightFlush, high)
		} else {
			strength = packRank(Flush, topRanks(suitMask, 5)...)
		}
		if !flushFound || strength > flushRank {
			flushRank = strength
			flushFound = true
		}
	}
	if flushFound && flushRank.Category() == StraightFlush {
		return flushRank
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	pairCandidates := (s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := pairCandidates &^ tripCandidates

	if quad, ok := highestRank(quadsMask); ok {
		kicker, _ := highestRank(rankMask &^ rankBit(quad))
		return packRank(FourOfAKind, quad, kicker)
	}

	if trip, ok := highestRank(tripsMask); ok {
		if pair, ok := highestRank(pairCandidates &^ rankBit(trip)); ok {
			return packRank(FullHouse, trip, pair)
		}
	}

	if flushFound {
		return flushRank
	}

	if high, ok := straightHigh(rankMask); ok {
		return packRank(Straight, high)
	}

	if trip, ok := highestRank(tripsMask); ok {
		kickers := topRanks(rankMask&^rankBit(trip), 2)
		return packRank(ThreeOfAKind, append([]Rank{trip}, kickers...)...)
	}

	if high, ok := highestRank(pairsMask); ok {
		if low, ok := highestRank(pairsMask &^ rankBit(high)); ok {
			kicker, _ := highestRank(rankMask &^ rankBit(high) &^ rankBit(low))
			return packRank(TwoPair, high, low, kicker)
		}
		kickers := topRanks(rankMask&^rankBit(high), 3)
		return packRank(OnePair, append([]Rank{high}, kickers...)...)
	}

	return packRank(HighCard, topRanks(rankMask, 5)...)
}

func rankBit(r Rank) uint16 {
	return 1 << r
}

// highestRank returns the highest rank present in the bitmask.
func highestRank(mask uint16) (Rank, bool) {
	if mask == 0 {
		return 0, false
	}
	return Rank(bits.Len16(mask) - 1), true
}

// topRanks returns up to n ranks from mask in descending order.
func topRanks(mask uint16, n int) []Rank {
	out := make([]Rank, 0, n)
	for len(out) < n && mask != 0 {
		top := Rank(bits.Len16(mask) - 1)
		out = append(out, top)
		mask &^= rankBit(top)
	}
	return out
}

const wheelMask = 0x100F // Ace + 2-3-4-5

// straightHigh returns the high card of the best straight in mask. The wheel
// counts as five-high and only when no higher run exists.
func straightHigh(mask uint16) (Rank, bool) {
	mask &= 0x1FFF

	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return Rank(bits.Len16(seq)-1) + 4, true
	}
	if mask&wheelMask == wheelMask {
		return Five, true
	}
	return 0, false
}
