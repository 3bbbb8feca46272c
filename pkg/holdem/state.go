package holdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fourseatpoker/pkg/deck"
)

// NoSeat marks the absence of a seat index
const NoSeat = -1

// Phase identifies a stage of a hand
type Phase string

// phase constants
const (
	PhasePreflop  Phase = "preflop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseShowdown Phase = "showdown"
)

// IsBetting returns true if the phase accepts player actions
func (p Phase) IsBetting() bool {
	switch p {
	case PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}

	return false
}

// RoundBetting tracks the state of the current betting round
type RoundBetting struct {
	CurrentBet int   `json:"currentBet"`
	MinRaise   int   `json:"minRaise"`
	LastRaiser int   `json:"lastRaiser"`
	Acted      []int `json:"playersActed"`
}

// HasActed returns true if the seat already acted since the last raise
func (rb *RoundBetting) HasActed(seat int) bool {
	for _, id := range rb.Acted {
		if id == seat {
			return true
		}
	}

	return false
}

func (rb *RoundBetting) markActed(seat int) {
	rb.Acted = append(rb.Acted, seat)
}

// SidePot is a portion of the pot only some seats are eligible for.
// Reserved for split all-in pots; the engine currently plays a single pot.
type SidePot struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// Message is an entry in the table's running log
type Message struct {
	UUID       string    `json:"uuid"`
	HandNumber int       `json:"handNumber"`
	Text       string    `json:"text"`
	Time       time.Time `json:"time"`
}

// GameState is the complete state of a game. Transitions never mutate a
// state in place; Transition clones it and returns the successor.
type GameState struct {
	Seats        []*Seat      `json:"seats"`
	Community    []*deck.Card `json:"communityCards"`
	Pot          int          `json:"pot"`
	SidePots     []SidePot    `json:"sidePots,omitempty"`
	Deck         *deck.Deck   `json:"-"`
	DealerButton int          `json:"dealerButton"`
	CurrentSeat  int          `json:"currentSeat"`
	Phase        Phase        `json:"phase"`
	Round        RoundBetting `json:"round"`
	SmallBlind   int          `json:"smallBlind"`
	BigBlind     int          `json:"bigBlind"`
	HandNumber   int          `json:"handNumber"`
	Winners      []int        `json:"winners,omitempty"`
	HandOver     bool         `json:"handOver"`
	Message      string       `json:"message"`
	Messages     []Message    `json:"messages"`

	options Options
}

// Options returns the configuration the game was created with
func (g GameState) Options() Options {
	return g.options
}

// Clone returns a deep copy of the state
func (g GameState) Clone() GameState {
	newState := g

	seats := make([]*Seat, len(g.Seats))
	for i, seat := range g.Seats {
		seats[i] = seat.clone()
	}
	newState.Seats = seats

	if g.Community != nil {
		community := make([]*deck.Card, len(g.Community))
		for i, card := range g.Community {
			c := *card
			community[i] = &c
		}
		newState.Community = community
	}

	if g.Deck != nil {
		newState.Deck = g.Deck.Clone()
	}

	if g.SidePots != nil {
		newState.SidePots = append([]SidePot{}, g.SidePots...)
	}

	if g.Round.Acted != nil {
		newState.Round.Acted = append([]int{}, g.Round.Acted...)
	}

	if g.Winners != nil {
		newState.Winners = append([]int{}, g.Winners...)
	}

	if g.Messages != nil {
		newState.Messages = append([]Message{}, g.Messages...)
	}

	return newState
}

// PendingCommand reports the transition a driver should apply next without
// player input, along with the delay before applying it. It covers the
// automatic cascade: closing a betting round nobody can act in, and
// resolving a showdown.
func (g GameState) PendingCommand() (Command, time.Duration, bool) {
	if g.Phase == PhaseShowdown {
		if !g.HandOver {
			return RunShowdown{}, g.options.DealDelay, true
		}

		return nil, 0, false
	}

	if !g.Phase.IsBetting() || g.HandNumber == 0 {
		return nil, 0, false
	}

	if g.CurrentSeat == NoSeat || !g.Seats[g.CurrentSeat].CanAct() || isRoundComplete(g) {
		return AdvanceToNextPlayer{}, g.options.DealDelay, true
	}

	return nil, 0, false
}

// addMessage sets the headline message and appends it to the log
func (g *GameState) addMessage(format string, a ...interface{}) {
	text := fmt.Sprintf(format, a...)

	g.Message = text
	g.Messages = append(g.Messages, Message{
		UUID:       uuid.New().String(),
		HandNumber: g.HandNumber,
		Text:       text,
		Time:       time.Now(),
	})
}
