package holdem

import (
	"fourseatpoker/pkg/deck"
	"fourseatpoker/pkg/poker"
)

// Status describes a seat's standing in the current hand
type Status string

// status constants
const (
	StatusActive Status = "active"
	StatusFolded Status = "folded"
	StatusAllIn  Status = "all-in"
	StatusOut    Status = "out"
)

// Seat represents a single player at the table
type Seat struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Chips     int               `json:"chips"`
	Bet       int               `json:"bet"`
	HoleCards []*deck.Card      `json:"holeCards"`
	Status    Status            `json:"status"`
	IsHuman   bool              `json:"isHuman"`
	HandEval  *poker.Evaluation `json:"hand,omitempty"`
}

// CanAct returns true if the seat may act on its turn
func (s *Seat) CanAct() bool {
	return s.Status == StatusActive
}

// InHand returns true if the seat still has a claim on the pot
func (s *Seat) InHand() bool {
	return s.Status == StatusActive || s.Status == StatusAllIn
}

// commit moves up to amount chips from the stack into the seat's current bet.
// A seat that runs its stack to zero flips to all-in.
func (s *Seat) commit(amount int) int {
	if amount > s.Chips {
		amount = s.Chips
	}

	s.Chips -= amount
	s.Bet += amount

	if s.Chips == 0 {
		s.Status = StatusAllIn
	}

	return amount
}

func (s *Seat) clone() *Seat {
	newSeat := *s

	if s.HoleCards != nil {
		cards := make([]*deck.Card, len(s.HoleCards))
		for i, card := range s.HoleCards {
			c := *card
			cards[i] = &c
		}
		newSeat.HoleCards = cards
	}

	if s.HandEval != nil {
		eval := *s.HandEval
		newSeat.HandEval = &eval
	}

	return &newSeat
}
