package poker

import (
	"errors"
	"fmt"
	"sort"

	"fourseatpoker/pkg/deck"
)

// ErrInvalidHandSize is an error when the evaluator is given anything other than 5 or 7 cards
var ErrInvalidHandSize = errors.New("hand must contain exactly 5 or 7 cards")

// bandSize is the width of each category's score band. The kicker encoding
// below uses base-15 positional weights, whose maximum possible sum
// (14 * (15^4 + 15^3 + 15^2 + 15 + 1) = 759,374) stays inside the band, so
// a hand in a higher category always outscores every hand in a lower one.
const bandSize = 1000000

// Evaluation is the scored result of a hand.
// Score is totally ordered: a strictly better poker hand always scores
// higher, and equal-strength hands (including kickers) score equal.
type Evaluation struct {
	Hand        Hand         `json:"hand"`
	Score       int          `json:"score"`
	Description string       `json:"description"`
	Cards       []*deck.Card `json:"cards"`
}

// Evaluate returns the best five-card evaluation for the cards.
// Five cards are scored directly. For seven cards, all 21 five-card subsets
// are scored and the best is returned. Any other hand size is an error.
func Evaluate(cards []*deck.Card) (*Evaluation, error) {
	switch len(cards) {
	case 5:
		return evaluateFive(cards), nil
	case 7:
		var best *Evaluation
		for _, combo := range fiveCardCombinations(cards) {
			ev := evaluateFive(combo)
			if best == nil || ev.Score > best.Score {
				best = ev
			}
		}

		return best, nil
	}

	return nil, ErrInvalidHandSize
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on a tie
func Compare(a, b *Evaluation) int {
	if a.Score > b.Score {
		return 1
	}

	if a.Score < b.Score {
		return -1
	}

	return 0
}

// FindWinners returns the indices of every non-nil evaluation whose score
// equals the maximum. A nil entry represents a seat with no live hand
// (folded or out) and is never a winner.
func FindWinners(evals []*Evaluation) []int {
	bestScore := -1
	winners := make([]int, 0, 1)

	for i, ev := range evals {
		if ev == nil {
			continue
		}

		if ev.Score > bestScore {
			bestScore = ev.Score
			winners = winners[:0]
			winners = append(winners, i)
		} else if ev.Score == bestScore {
			winners = append(winners, i)
		}
	}

	return winners
}

// rankGroup is a set of same-rank cards, i.e., {rank: 8, count: 3} for three eights
type rankGroup struct {
	rank  int
	count int
}

func evaluateFive(cards []*deck.Card) *Evaluation {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Sort(sort.Reverse(sortByRank(sorted)))

	groups := groupRanks(sorted)
	flush := isFlush(sorted)
	straight := straightHigh(sorted)

	newEvaluation := func(hand Hand, description string, ranks ...int) *Evaluation {
		return &Evaluation{
			Hand:        hand,
			Score:       score(hand, ranks...),
			Description: description,
			Cards:       sorted,
		}
	}

	switch {
	case flush && straight == deck.Ace:
		return newEvaluation(RoyalFlush, "Royal Flush")
	case flush && straight > 0:
		return newEvaluation(StraightFlush,
			fmt.Sprintf("Straight Flush, %s high", deck.RankName(straight)),
			straight)
	case groups[0].count == 4:
		return newEvaluation(FourOfAKind,
			fmt.Sprintf("Four of a Kind, %ss", deck.RankName(groups[0].rank)),
			groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return newEvaluation(FullHouse,
			fmt.Sprintf("Full House, %ss over %ss", deck.RankName(groups[0].rank), deck.RankName(groups[1].rank)),
			groups[0].rank, groups[1].rank)
	case flush:
		return newEvaluation(Flush,
			fmt.Sprintf("Flush, %s high", sorted[0].Name()),
			sorted[0].Rank, sorted[1].Rank, sorted[2].Rank, sorted[3].Rank, sorted[4].Rank)
	case straight > 0:
		return newEvaluation(Straight,
			fmt.Sprintf("Straight, %s high", deck.RankName(straight)),
			straight)
	case groups[0].count == 3:
		return newEvaluation(ThreeOfAKind,
			fmt.Sprintf("Three of a Kind, %ss", deck.RankName(groups[0].rank)),
			groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return newEvaluation(TwoPair,
			fmt.Sprintf("Two Pair, %ss and %ss", deck.RankName(groups[0].rank), deck.RankName(groups[1].rank)),
			groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return newEvaluation(OnePair,
			fmt.Sprintf("Pair of %ss", deck.RankName(groups[0].rank)),
			groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank)
	}

	return newEvaluation(HighCard,
		fmt.Sprintf("High Card, %s", sorted[0].Name()),
		sorted[0].Rank, sorted[1].Rank, sorted[2].Rank, sorted[3].Rank, sorted[4].Rank)
}

// score encodes a hand and its deciding ranks into a single comparable value.
// ranks must be listed most significant first (i.e., quad rank before kicker).
func score(hand Hand, ranks ...int) int {
	var padded [5]int
	copy(padded[:], ranks)

	s := int(hand) * bandSize
	weight := 1
	for i := 4; i >= 0; i-- {
		s += padded[i] * weight
		weight *= 15
	}

	return s
}

// groupRanks returns the rank groups sorted by count, then by rank.
// groups[0] is therefore the deciding group (quads before trips before pairs).
func groupRanks(sorted []*deck.Card) []rankGroup {
	counts := make(map[int]int)
	for _, card := range sorted {
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

func isFlush(cards []*deck.Card) bool {
	suit := cards[0].Suit
	for _, card := range cards[1:] {
		if card.Suit != suit {
			return false
		}
	}

	return true
}

// straightHigh returns the high card of a five-card straight, or 0 if the
// cards do not form one. The wheel (A-2-3-4-5) counts the five as its high
// card, so it ranks below every other straight.
func straightHigh(sorted []*deck.Card) int {
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Rank-sorted[i+1].Rank != 1 {
			if i == 0 && sorted[0].Rank == deck.Ace &&
				sorted[1].Rank == 5 && sorted[2].Rank == 4 &&
				sorted[3].Rank == 3 && sorted[4].Rank == 2 {
				return 5
			}

			return 0
		}
	}

	return sorted[0].Rank
}

// fiveCardCombinations returns all C(7,5) = 21 five-card subsets
func fiveCardCombinations(cards []*deck.Card) [][]*deck.Card {
	combinations := make([][]*deck.Card, 0, 21)
	n := len(cards)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					for m := l + 1; m < n; m++ {
						combinations = append(combinations, []*deck.Card{cards[i], cards[j], cards[k], cards[l], cards[m]})
					}
				}
			}
		}
	}

	return combinations
}
