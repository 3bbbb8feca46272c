// Package room drives a game in real time. A Table owns the game state,
// applies commands from the human seat, schedules the automatic follow-ups
// (CPU turns, street deals, showdown resolution) and publishes every state
// change to subscribers.
package room

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fourseatpoker/internal/rng"
	"fourseatpoker/pkg/holdem"
	"fourseatpoker/pkg/holdem/cpu"
)

// ErrTableClosed is returned when dispatching to a closed table
var ErrTableClosed = errors.New("table is closed")

// Table runs a single game
type Table struct {
	// UUID identifies the table in logs
	UUID string

	logger  logrus.FieldLogger
	gen     rng.Generator
	profile cpu.Profile

	lock       sync.Mutex
	state      holdem.GameState
	generation int
	closed     bool
	updates    chan holdem.GameState
}

// NewTable creates a table around a fresh game. Nothing happens until
// StartGame is dispatched.
func NewTable(opts holdem.Options, profile cpu.Profile, gen rng.Generator, logger logrus.FieldLogger) (*Table, error) {
	state, err := holdem.NewGame(opts, gen)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Table{
		UUID:    id,
		logger:  logger.WithField("table", id),
		gen:     gen,
		profile: profile,
		state:   state,
		updates: make(chan holdem.GameState, 64),
	}, nil
}

// State returns a snapshot of the current game state
func (t *Table) State() holdem.GameState {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.state.Clone()
}

// Updates returns the channel state snapshots are published on. Snapshots
// are dropped rather than blocking if the subscriber falls behind.
func (t *Table) Updates() <-chan holdem.GameState {
	return t.updates
}

// Dispatch applies a command and schedules whatever must follow it
func (t *Table) Dispatch(cmd holdem.Command) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.dispatch(cmd)
}

// Act is a convenience wrapper for the human seat's betting actions
func (t *Table) Act(seat int, action holdem.Action, amount int) error {
	return t.Dispatch(holdem.PlayerAction{Seat: seat, Action: action, Amount: amount})
}

// Close stops the table. Pending timers become no-ops.
func (t *Table) Close() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.closed {
		return
	}

	t.closed = true
	t.generation++
	close(t.updates)

	t.logger.Debug("table closed")
}

// dispatch must be called with the lock held
func (t *Table) dispatch(cmd holdem.Command) error {
	if t.closed {
		return ErrTableClosed
	}

	next, err := holdem.Transition(t.state, cmd, t.gen)
	if err != nil {
		t.logger.WithError(err).WithField("command", holdem.CommandName(cmd)).Warn("command rejected")
		return err
	}

	// a new state invalidates everything scheduled against the old one
	t.generation++
	t.state = next

	t.logger.WithFields(logrus.Fields{
		"command": holdem.CommandName(cmd),
		"hand":    next.HandNumber,
		"phase":   next.Phase,
	}).Debug("applied command")

	t.publish(next)
	t.schedule(cmd)

	return nil
}

// publish must be called with the lock held
func (t *Table) publish(state holdem.GameState) {
	select {
	case t.updates <- state.Clone():
	default:
		t.logger.Warn("dropping state update, subscriber is behind")
	}
}

// schedule arms the timer for the next automatic step, if any. Must be
// called with the lock held.
func (t *Table) schedule(applied holdem.Command) {
	if _, ok := applied.(holdem.PlayerAction); ok && t.state.Phase.IsBetting() {
		t.after(t.state.Options().AdvanceDelay, holdem.AdvanceToNextPlayer{})
		return
	}

	if cmd, delay, ok := t.state.PendingCommand(); ok {
		t.after(delay, cmd)
		return
	}

	if !t.state.Phase.IsBetting() || t.state.CurrentSeat == holdem.NoSeat {
		return
	}

	seat := t.state.Seats[t.state.CurrentSeat]
	if seat.IsHuman || !seat.CanAct() {
		return
	}

	opts := t.state.Options()
	delay := opts.CPUThinkDelay + time.Duration(t.gen.Float64()*float64(opts.CPUThinkJitter))

	index := t.state.CurrentSeat
	generation := t.generation
	time.AfterFunc(delay, func() {
		t.cpuAct(generation, index)
	})
}

// after schedules a command against the current generation. Must be called
// with the lock held.
func (t *Table) after(delay time.Duration, cmd holdem.Command) {
	generation := t.generation

	time.AfterFunc(delay, func() {
		t.lock.Lock()
		defer t.lock.Unlock()

		if t.closed || generation != t.generation {
			return
		}

		if err := t.dispatch(cmd); err != nil {
			t.logger.WithError(err).WithField("command", holdem.CommandName(cmd)).Error("scheduled command failed")
		}
	})
}

func (t *Table) cpuAct(generation, seat int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.closed || generation != t.generation {
		return
	}

	action, amount := t.profile.Decide(t.state, seat, t.gen)

	t.logger.WithFields(logrus.Fields{
		"seat":   seat,
		"action": action,
		"amount": amount,
	}).Debug("cpu action")

	if err := t.dispatch(holdem.PlayerAction{Seat: seat, Action: action, Amount: amount}); err != nil {
		t.logger.WithError(err).WithField("seat", seat).Error("cpu action failed")
	}
}
