package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalActions(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	// seat 0 faces the big blind with a full stack
	a.Equal([]Action{ActionFold, ActionCall, ActionRaise, ActionAllIn}, LegalActions(game, 0))

	// the big blind may check once the action limps around
	bb := game.Clone()
	bb.CurrentSeat = 3
	a.Equal([]Action{ActionFold, ActionCheck, ActionRaise, ActionAllIn}, LegalActions(bb, 3))

	// no bet outstanding postflop
	open := game.Clone()
	open.Phase = PhaseFlop
	open.Round.CurrentBet = 0
	open.Seats[0].Bet = 0
	a.Equal([]Action{ActionFold, ActionCheck, ActionBet, ActionAllIn}, LegalActions(open, 0))

	// any chips beyond the call keep a (clamped) raise available
	short := game.Clone()
	short.Seats[0].Chips = 30
	a.Equal([]Action{ActionFold, ActionCall, ActionRaise, ActionAllIn}, LegalActions(short, 0))

	// exactly covering the call leaves no room to raise
	flat := game.Clone()
	flat.Seats[0].Chips = 20
	a.Equal([]Action{ActionFold, ActionCall, ActionAllIn}, LegalActions(flat, 0))

	// a stack that cannot even call
	tiny := game.Clone()
	tiny.Seats[0].Chips = 10
	a.Equal([]Action{ActionFold, ActionAllIn}, LegalActions(tiny, 0))

	// folded seats, out-of-range seats, and non-betting phases get nothing
	folded := game.Clone()
	folded.Seats[0].Status = StatusFolded
	a.Nil(LegalActions(folded, 0))
	a.Nil(LegalActions(game, -1))
	a.Nil(LegalActions(game, 4))

	done := game.Clone()
	done.Phase = PhaseShowdown
	a.Nil(LegalActions(done, 0))
}

func TestIsRoundComplete(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	a.False(isRoundComplete(game))

	// matching bets alone are not enough, every seat must have acted
	even := game.Clone()
	for _, seat := range even.Seats {
		seat.Bet = 20
	}
	a.False(isRoundComplete(even))

	for i := range even.Seats {
		even.Round.markActed(i)
	}
	a.True(isRoundComplete(even))

	// a single remaining active seat closes the round regardless
	lone := game.Clone()
	lone.Seats[0].Status = StatusFolded
	lone.Seats[1].Status = StatusFolded
	lone.Seats[2].Status = StatusAllIn
	a.True(isRoundComplete(lone))
}

func TestCollectBets(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	game.collectBets()

	a.Equal(30, game.Pot)
	for _, seat := range game.Seats {
		a.Equal(0, seat.Bet)
	}

	a.Equal(0, game.Round.CurrentBet)
	a.Equal(20, game.Round.MinRaise)
	a.Equal(NoSeat, game.Round.LastRaiser)
	a.Empty(game.Round.Acted)
}
