// Package cpu implements the decision heuristic for computer-controlled
// seats. A Profile holds every tunable knob; decisions are driven by an
// injected random generator so they can be made deterministic in tests.
package cpu

import (
	"fourseatpoker/internal/rng"
	"fourseatpoker/pkg/holdem"
)

// Position classifies a seat relative to the dealer button
type Position string

// position constants
const (
	PositionEarly  Position = "early"
	PositionMiddle Position = "middle"
	PositionLate   Position = "late"
)

// Profile holds the tunable parameters of the decision heuristic
type Profile struct {
	// Jitter is the half-width of the random strength adjustment applied
	// before any other modifier.
	Jitter float64

	// LateBonus and EarlyPenalty adjust aggression by table position.
	LateBonus    float64
	EarlyPenalty float64

	// PotOddsFloor is the adjusted strength above which pot odds add up
	// to PotOddsWeight extra aggression.
	PotOddsFloor  float64
	PotOddsWeight float64

	// BluffChance is the probability of a BluffBonus aggression spike in
	// late position.
	BluffChance float64
	BluffBonus  float64

	// TrapChance is the probability of playing a hand stronger than
	// TrapFloor passively, dropping TrapPenalty aggression.
	TrapChance  float64
	TrapFloor   float64
	TrapPenalty float64

	// AllInChance is the probability of shoving a hand stronger than
	// AllInFloor when aggression already calls for a big raise.
	AllInChance float64
	AllInFloor  float64

	// Aggression ladder boundaries, low to high.
	CheckFoldBelow float64
	SmallCallBelow float64
	CallBelow      float64
	RaiseBelow     float64

	// SmallCallRatio is the fraction of the stack a weak hand will still
	// pay to see a card.
	SmallCallRatio float64

	// Bet sizes in big blinds by ladder rung.
	SmallBetBlinds  int
	MediumBetBlinds int
	BigBetBlinds    int

	// Raise sizes as multiples of the minimum raise.
	RaiseFactor    int
	BigRaiseFactor int
}

// DefaultProfile returns the stock opponent
func DefaultProfile() Profile {
	return Profile{
		Jitter:          10,
		LateBonus:       10,
		EarlyPenalty:    10,
		PotOddsFloor:    30,
		PotOddsWeight:   20,
		BluffChance:     0.1,
		BluffBonus:      30,
		TrapChance:      0.05,
		TrapFloor:       80,
		TrapPenalty:     40,
		AllInChance:     0.3,
		AllInFloor:      90,
		CheckFoldBelow:  20,
		SmallCallBelow:  40,
		CallBelow:       60,
		RaiseBelow:      80,
		SmallCallRatio:  0.1,
		SmallBetBlinds:  2,
		MediumBetBlinds: 3,
		BigBetBlinds:    4,
		RaiseFactor:     2,
		BigRaiseFactor:  3,
	}
}

// SeatPosition classifies a seat relative to the dealer button. The seats
// directly after the button act first post-flop and play tighter for it.
func SeatPosition(state holdem.GameState, seatIndex int) Position {
	offset := (seatIndex - state.DealerButton + len(state.Seats)) % len(state.Seats)

	switch offset {
	case 1:
		return PositionEarly
	case 2:
		return PositionMiddle
	}

	return PositionLate
}

// PotOdds returns the price of a call as a fraction of the pot after
// calling, or 0 when there is nothing to call
func PotOdds(state holdem.GameState, seatIndex int) float64 {
	seat := state.Seats[seatIndex]
	toCall := state.Round.CurrentBet - seat.Bet
	if toCall <= 0 {
		return 0
	}

	potSize := state.Pot
	for _, s := range state.Seats {
		potSize += s.Bet
	}

	return float64(toCall) / float64(potSize+toCall)
}

// Decide picks an action for the seat. The returned action is always legal
// in the given state.
func (p Profile) Decide(state holdem.GameState, seatIndex int, gen rng.Generator) (holdem.Action, int) {
	valid := holdem.LegalActions(state, seatIndex)
	if len(valid) == 0 {
		return holdem.ActionFold, 0
	}

	seat := state.Seats[seatIndex]

	strength := 0
	if state.Phase == holdem.PhasePreflop {
		strength = PreFlopStrength(seat.HoleCards)
	} else {
		strength = PostFlopStrength(seat.HoleCards, state.Community)
	}

	position := SeatPosition(state, seatIndex)
	potOdds := PotOdds(state, seatIndex)
	toCall := state.Round.CurrentBet - seat.Bet

	adjusted := float64(strength) + gen.Float64()*2*p.Jitter - p.Jitter
	if adjusted < 0 {
		adjusted = 0
	} else if adjusted > 100 {
		adjusted = 100
	}

	aggression := adjusted

	switch position {
	case PositionLate:
		aggression += p.LateBonus
	case PositionEarly:
		aggression -= p.EarlyPenalty
	}

	if potOdds > 0 && adjusted > p.PotOddsFloor {
		aggression += (1 - potOdds) * p.PotOddsWeight
	}

	if position == PositionLate && gen.Float64() < p.BluffChance {
		aggression += p.BluffBonus
	}

	if adjusted > p.TrapFloor && gen.Float64() < p.TrapChance {
		aggression -= p.TrapPenalty
	}

	canCheck := contains(valid, holdem.ActionCheck)
	canCall := contains(valid, holdem.ActionCall)
	canBet := contains(valid, holdem.ActionBet)
	canRaise := contains(valid, holdem.ActionRaise)
	canAllIn := contains(valid, holdem.ActionAllIn)

	switch {
	case aggression < p.CheckFoldBelow:
		if canCheck {
			return holdem.ActionCheck, 0
		}

		return holdem.ActionFold, 0
	case aggression < p.SmallCallBelow:
		if canCheck {
			return holdem.ActionCheck, 0
		}
		if canCall && float64(toCall) < float64(seat.Chips)*p.SmallCallRatio {
			return holdem.ActionCall, 0
		}

		return holdem.ActionFold, 0
	case aggression < p.CallBelow:
		if canCall {
			return holdem.ActionCall, 0
		}
		if canBet {
			return holdem.ActionBet, min(state.BigBlind*p.SmallBetBlinds, seat.Chips)
		}
		if canCheck {
			return holdem.ActionCheck, 0
		}

		return holdem.ActionFold, 0
	case aggression < p.RaiseBelow:
		if canRaise {
			return holdem.ActionRaise, min(state.Round.MinRaise*p.RaiseFactor, seat.Chips-toCall)
		}
		if canBet {
			return holdem.ActionBet, min(state.BigBlind*p.MediumBetBlinds, seat.Chips)
		}
		if canCall {
			return holdem.ActionCall, 0
		}
		if canCheck {
			return holdem.ActionCheck, 0
		}
	default:
		if canAllIn && adjusted > p.AllInFloor && gen.Float64() < p.AllInChance {
			return holdem.ActionAllIn, 0
		}
		if canRaise {
			return holdem.ActionRaise, min(state.Round.MinRaise*p.BigRaiseFactor, seat.Chips-toCall)
		}
		if canBet {
			return holdem.ActionBet, min(state.BigBlind*p.BigBetBlinds, seat.Chips)
		}
		if canCall {
			return holdem.ActionCall, 0
		}
	}

	if canCheck {
		return holdem.ActionCheck, 0
	}

	return holdem.ActionFold, 0
}

func contains(actions []holdem.Action, action holdem.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
