package holdem

import (
	"errors"
	"fmt"

	"fourseatpoker/internal/rng"
)

// errors returned by Transition
var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalAction = errors.New("illegal action")
)

// Command is a request to move the game forward
type Command interface {
	commandName() string
}

// StartGame resets every stack and deals the first hand
type StartGame struct{}

// StartNewHand deals the next hand once the previous one is over
type StartNewHand struct{}

// PlayerAction is a betting action by the seat whose turn it is
type PlayerAction struct {
	Seat   int
	Action Action
	Amount int
}

// AdvanceToNextPlayer moves action along, dealing the next street when the
// betting round is closed
type AdvanceToNextPlayer struct{}

// RunShowdown evaluates the live hands and awards the pot
type RunShowdown struct{}

// EndHand clears the winner display after a finished hand
type EndHand struct{}

// RestartGame starts the game over with fresh stacks
type RestartGame struct{}

func (StartGame) commandName() string           { return "start-game" }
func (StartNewHand) commandName() string        { return "start-new-hand" }
func (PlayerAction) commandName() string        { return "player-action" }
func (AdvanceToNextPlayer) commandName() string { return "advance" }
func (RunShowdown) commandName() string         { return "run-showdown" }
func (EndHand) commandName() string             { return "end-hand" }
func (RestartGame) commandName() string         { return "restart-game" }

// CommandName returns a stable identifier for logging
func CommandName(cmd Command) string {
	return cmd.commandName()
}

// Transition applies a command to a state and returns the successor state.
// The input state is never mutated; on error it is returned unchanged.
func Transition(state GameState, cmd Command, gen rng.Generator) (GameState, error) {
	next := state.Clone()

	switch c := cmd.(type) {
	case StartGame, RestartGame:
		opts := state.options
		opts.SeatNames = make([]string, len(state.Seats))
		for i, seat := range state.Seats {
			opts.SeatNames[i] = seat.Name
		}

		fresh, err := NewGame(opts, gen)
		if err != nil {
			return state, err
		}

		if err := fresh.startNewHand(gen); err != nil {
			return state, err
		}

		return fresh, nil
	case StartNewHand:
		if state.HandNumber > 0 && !state.HandOver {
			return state, fmt.Errorf("%w: the current hand is not over", ErrIllegalAction)
		}

		if err := next.startNewHand(gen); err != nil {
			return state, err
		}
	case PlayerAction:
		if state.HandNumber == 0 {
			return state, fmt.Errorf("%w: no hand in progress", ErrIllegalAction)
		}

		if !state.Phase.IsBetting() {
			return state, fmt.Errorf("%w: no betting in the %s phase", ErrIllegalAction, state.Phase)
		}

		if c.Seat != state.CurrentSeat {
			return state, fmt.Errorf("%w: action is on %s", ErrNotYourTurn, state.seatName(state.CurrentSeat))
		}

		if !c.Action.IsValid() {
			return state, fmt.Errorf("%w: unknown action %q", ErrIllegalAction, string(c.Action))
		}

		if !isLegal(LegalActions(state, c.Seat), c.Action) {
			return state, fmt.Errorf("%w: %s cannot %s", ErrIllegalAction, state.seatName(c.Seat), c.Action)
		}

		if (c.Action == ActionBet || c.Action == ActionRaise) && c.Amount <= 0 {
			return state, fmt.Errorf("%w: %s requires a positive amount", ErrIllegalAction, c.Action)
		}

		next.applyAction(c.Seat, c.Action, c.Amount)
		next.maybeDefaultWin()
	case AdvanceToNextPlayer:
		if state.HandNumber == 0 || !state.Phase.IsBetting() {
			return state, fmt.Errorf("%w: cannot advance in the %s phase", ErrIllegalAction, state.Phase)
		}

		if err := next.advanceToNextPlayer(); err != nil {
			return state, err
		}
	case RunShowdown:
		if state.Phase != PhaseShowdown || state.HandOver {
			return state, fmt.Errorf("%w: no showdown to run", ErrIllegalAction)
		}

		if err := next.runShowdown(); err != nil {
			return state, err
		}
	case EndHand:
		next.Winners = nil
		next.Message = ""
	default:
		return state, fmt.Errorf("unknown command: %T", cmd)
	}

	return next, nil
}

func isLegal(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
