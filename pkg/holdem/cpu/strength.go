package cpu

import "fourseatpoker/pkg/deck"

// PreFlopStrength scores two hole cards on a 0-100 scale. Pocket pairs
// score 50 plus three per rank; unpaired hands build up from high cards,
// suitedness and connectedness, capped at 95.
func PreFlopStrength(holeCards []*deck.Card) int {
	if len(holeCards) != 2 {
		return 0
	}

	high, low := holeCards[0].Rank, holeCards[1].Rank
	if low > high {
		high, low = low, high
	}
	suited := holeCards[0].Suit == holeCards[1].Suit
	gap := high - low

	if gap == 0 {
		score := 50 + high*3
		if score > 100 {
			score = 100
		}

		return score
	}

	score := 0

	if high >= deck.Jack {
		score += (high - 10) * 10
	}

	if suited {
		score += 15
	}

	switch gap {
	case 1:
		score += 10
	case 2:
		score += 5
	}

	if high == deck.Ace {
		score += 15
		if low >= 10 {
			score += 10
		}
	}

	if high == deck.King && low >= deck.Jack {
		score += 10
	}

	if score > 95 {
		score = 95
	}

	return score
}

// PostFlopStrength scores a hand once community cards are on the board.
// Made hands map to fixed bands, with draws scored below a made pair.
func PostFlopStrength(holeCards, community []*deck.Card) int {
	if len(holeCards) != 2 {
		return 0
	}

	if len(community) == 0 {
		return PreFlopStrength(holeCards)
	}

	cards := make([]*deck.Card, 0, len(holeCards)+len(community))
	cards = append(cards, holeCards...)
	cards = append(cards, community...)

	rankCounts := make(map[int]int)
	suitCounts := make(map[deck.Suit]int)
	highCard := 0
	for _, card := range cards {
		rankCounts[card.Rank]++
		suitCounts[card.Suit]++

		if card.Rank > highCard {
			highCard = card.Rank
		}
	}

	pairs, pairRank := 0, 0
	trips, quads := false, false
	for rank, count := range rankCounts {
		if count >= 2 {
			pairs++
			if rank > pairRank {
				pairRank = rank
			}
		}
		if count >= 3 {
			trips = true
		}
		if count >= 4 {
			quads = true
		}
	}

	flush, flushDraw := false, false
	for _, count := range suitCounts {
		if count >= 5 {
			flush = true
		}
		if count == 4 {
			flushDraw = true
		}
	}

	switch {
	case quads:
		return 100
	case trips && pairs >= 2:
		return 95
	case flush:
		return 90
	case hasRun(rankCounts, 5):
		return 85
	case trips:
		return 70
	case pairs >= 2:
		return 60
	case pairs == 1:
		return 35 + pairRank*2
	case flushDraw:
		return 45
	case hasRun(rankCounts, 4):
		return 40
	}

	return 10 + highCard
}

// hasRun reports whether the ranks contain n consecutive values. For a
// run of five, the wheel counts with the ace playing low.
func hasRun(rankCounts map[int]int, n int) bool {
	run := 0
	for rank := 2; rank <= deck.Ace; rank++ {
		if rankCounts[rank] == 0 {
			run = 0
			continue
		}

		run++
		if run >= n {
			return true
		}
	}

	if n == 5 {
		for _, rank := range []int{deck.Ace, 2, 3, 4, 5} {
			if rankCounts[rank] == 0 {
				return false
			}
		}

		return true
	}

	return false
}
