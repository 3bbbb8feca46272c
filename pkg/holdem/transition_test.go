package holdem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fourseatpoker/internal/rng"
)

func TestTransition_doesNotMutateInput(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	before, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	snapshot := before.Clone()

	after, err := Transition(before, PlayerAction{Seat: 0, Action: ActionCall}, gen)
	a.NoError(err)

	a.Equal(snapshot, before)
	a.Equal(1000, before.Seats[0].Chips)
	a.Equal(980, after.Seats[0].Chips)
}

func TestTransition_noHandInProgress(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)

	_, err := Transition(game, PlayerAction{Seat: 0, Action: ActionCheck}, gen)
	a.ErrorIs(err, ErrIllegalAction)

	_, err = Transition(game, AdvanceToNextPlayer{}, gen)
	a.ErrorIs(err, ErrIllegalAction)
}

func TestTransition_notYourTurn(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	_, err = Transition(game, PlayerAction{Seat: 2, Action: ActionFold}, gen)
	a.ErrorIs(err, ErrNotYourTurn)
}

func TestTransition_illegalAction(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	// seat 0 owes 20, a check is not available
	_, err = Transition(game, PlayerAction{Seat: 0, Action: ActionCheck}, gen)
	a.ErrorIs(err, ErrIllegalAction)

	// a bet is only available when there is no bet to match
	_, err = Transition(game, PlayerAction{Seat: 0, Action: ActionBet, Amount: 40}, gen)
	a.ErrorIs(err, ErrIllegalAction)

	_, err = Transition(game, PlayerAction{Seat: 0, Action: ActionRaise, Amount: 0}, gen)
	a.ErrorIs(err, ErrIllegalAction)
}

func TestTransition_startNewHandMidHand(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	_, err = Transition(game, StartNewHand{}, gen)
	a.ErrorIs(err, ErrIllegalAction)
}

func TestTransition_raiseResetsRound(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	game, err = Transition(game, PlayerAction{Seat: 0, Action: ActionCall}, gen)
	a.NoError(err)
	game, err = Transition(game, AdvanceToNextPlayer{}, gen)
	a.NoError(err)

	game, err = Transition(game, PlayerAction{Seat: 1, Action: ActionRaise, Amount: 40}, gen)
	a.NoError(err)

	a.Equal(60, game.Round.CurrentBet)
	a.Equal(40, game.Round.MinRaise)
	a.Equal(1, game.Round.LastRaiser)
	a.Equal([]int{1}, game.Round.Acted)
	a.Equal(940, game.Seats[1].Chips)
	a.Equal(60, game.Seats[1].Bet)
}

func TestTransition_allInBelowCurrentBet(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game.Seats[0].Chips = 15

	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	// seat 0 cannot cover the big blind; only fold and all-in remain
	a.Equal([]Action{ActionFold, ActionAllIn}, LegalActions(game, 0))

	game, err = Transition(game, PlayerAction{Seat: 0, Action: ActionAllIn}, gen)
	a.NoError(err)

	a.Equal(StatusAllIn, game.Seats[0].Status)
	a.Equal(15, game.Seats[0].Bet)

	// a short all-in does not reopen the betting
	a.Equal(20, game.Round.CurrentBet)
	a.Equal(3, game.Round.LastRaiser)
	a.Equal([]int{0}, game.Round.Acted)
}

func TestTransition_allInAboveCurrentBetReopensAction(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	game, err = Transition(game, PlayerAction{Seat: 0, Action: ActionAllIn}, gen)
	a.NoError(err)

	a.Equal(1000, game.Round.CurrentBet)
	a.Equal(0, game.Round.LastRaiser)
	a.Equal([]int{0}, game.Round.Acted)

	// the minimum raise carries over rather than jumping to the all-in size
	a.Equal(20, game.Round.MinRaise)
}

func TestTransition_endHand(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	for _, seat := range []int{0, 1} {
		game, err = Transition(game, PlayerAction{Seat: seat, Action: ActionFold}, gen)
		a.NoError(err)
		game, err = Transition(game, AdvanceToNextPlayer{}, gen)
		a.NoError(err)
	}

	game, err = Transition(game, PlayerAction{Seat: 2, Action: ActionFold}, gen)
	a.NoError(err)
	a.True(game.HandOver)

	game, err = Transition(game, EndHand{}, gen)
	a.NoError(err)

	a.Nil(game.Winners)
	a.Empty(game.Message)
	a.True(game.HandOver)

	// the hand stays settled; there is no showdown left to run
	_, _, ok := game.PendingCommand()
	a.False(ok)

	game, err = Transition(game, StartNewHand{}, gen)
	a.NoError(err)
	a.Equal(2, game.HandNumber)
	a.Equal(2, game.DealerButton)
}

func TestTransition_restartGame(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)
	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	names := make([]string, len(game.Seats))
	for i, seat := range game.Seats {
		names[i] = seat.Name
	}

	game, err = Transition(game, RestartGame{}, gen)
	a.NoError(err)

	a.Equal(1, game.HandNumber)
	a.Equal(4000, totalChips(game))

	for i, seat := range game.Seats {
		a.Equal(names[i], seat.Name)
	}
}

func TestPendingCommand(t *testing.T) {
	a := assert.New(t)

	game, gen := newTestGame(t)

	// nothing pending before the first hand
	_, _, ok := game.PendingCommand()
	a.False(ok)

	game, err := Transition(game, StartNewHand{}, gen)
	a.NoError(err)

	// action is on a live seat
	_, _, ok = game.PendingCommand()
	a.False(ok)

	game, err = Transition(game, PlayerAction{Seat: 0, Action: ActionFold}, gen)
	a.NoError(err)

	// the current seat just folded, play must move on
	cmd, delay, ok := game.PendingCommand()
	a.True(ok)
	a.Equal(AdvanceToNextPlayer{}, cmd)
	a.Equal(500*time.Millisecond, delay)

	game = playToShowdownFromFold(t, game, gen)

	cmd, _, ok = game.PendingCommand()
	a.True(ok)
	a.Equal(RunShowdown{}, cmd)

	game, err = Transition(game, RunShowdown{}, gen)
	a.NoError(err)

	_, _, ok = game.PendingCommand()
	a.False(ok)
}

// finishes a hand where seat 0 already folded by checking and calling it
// down to the river
func playToShowdownFromFold(t *testing.T, game GameState, gen rng.Generator) GameState {
	t.Helper()

	a := assert.New(t)
	var err error

	game, err = Transition(game, AdvanceToNextPlayer{}, gen)
	a.NoError(err)

	for _, step := range []struct {
		seat   int
		action Action
	}{
		{1, ActionCall},
		{2, ActionCall},
		{3, ActionCheck},
	} {
		game, err = Transition(game, PlayerAction{Seat: step.seat, Action: step.action}, gen)
		a.NoError(err)
		game, err = Transition(game, AdvanceToNextPlayer{}, gen)
		a.NoError(err)
	}

	a.Equal(PhaseFlop, game.Phase)

	for game.Phase.IsBetting() {
		game, err = Transition(game, PlayerAction{Seat: game.CurrentSeat, Action: ActionCheck}, gen)
		a.NoError(err)
		game, err = Transition(game, AdvanceToNextPlayer{}, gen)
		a.NoError(err)
	}

	a.Equal(PhaseShowdown, game.Phase)
	a.False(game.HandOver)

	return game
}
