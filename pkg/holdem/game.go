package holdem

import (
	"errors"
	"fmt"
	"strings"

	"fourseatpoker/internal/rng"
	"fourseatpoker/internal/util"
	"fourseatpoker/pkg/deck"
	"fourseatpoker/pkg/poker"
)

// NewGame creates a game in its pre-deal state. No cards are dealt and no
// blinds are posted until the first hand starts.
func NewGame(opts Options, g rng.Generator) (GameState, error) {
	if err := validateOptions(opts); err != nil {
		return GameState{}, err
	}

	seats := make([]*Seat, opts.NumSeats)
	for i := range seats {
		name := ""
		if i < len(opts.SeatNames) {
			name = opts.SeatNames[i]
		}

		if name == "" {
			if i == 0 {
				name = "You"
			} else {
				name = util.GetRandomName(g)
			}
		}

		seats[i] = &Seat{
			ID:      i,
			Name:    name,
			Chips:   opts.InitialChips,
			Status:  StatusActive,
			IsHuman: i == 0,
		}
	}

	state := GameState{
		Seats:        seats,
		Pot:          0,
		Deck:         &deck.Deck{},
		DealerButton: 0,
		CurrentSeat:  0,
		Phase:        PhasePreflop,
		Round: RoundBetting{
			CurrentBet: 0,
			MinRaise:   opts.BigBlind,
			LastRaiser: NoSeat,
			Acted:      []int{},
		},
		SmallBlind: opts.SmallBlind,
		BigBlind:   opts.BigBlind,
		options:    opts,
	}

	state.addMessage("Welcome to Texas Hold'em Poker!")

	return state, nil
}

// startNewHand rotates the button, deals hole cards and posts the blinds.
// With fewer than two funded seats the game is over; the state keeps its
// final standings and only the message changes.
func (g *GameState) startNewHand(gen rng.Generator) error {
	funded := 0
	for _, seat := range g.Seats {
		if seat.Chips > 0 {
			funded++
		}
	}

	if funded < 2 {
		g.addMessage("Game Over! Not enough players with chips.")
		return nil
	}

	g.DealerButton = g.nextFundedSeat(g.DealerButton)

	for _, seat := range g.Seats {
		seat.HoleCards = nil
		seat.Bet = 0
		seat.HandEval = nil

		if seat.Chips > 0 {
			seat.Status = StatusActive
		} else {
			seat.Status = StatusOut
		}
	}

	d := deck.New()
	d.Shuffle(gen)
	g.Deck = d

	for _, seat := range g.Seats {
		if seat.Status != StatusActive {
			continue
		}

		cards, err := g.Deck.DrawCount(2)
		if err != nil {
			return err
		}
		seat.HoleCards = cards
	}

	smallBlindSeat := g.nextFundedSeat(g.DealerButton)
	bigBlindSeat := g.nextFundedSeat(smallBlindSeat)

	g.Seats[smallBlindSeat].commit(g.SmallBlind)
	g.Seats[bigBlindSeat].commit(g.BigBlind)

	g.Community = nil
	g.Pot = 0
	g.SidePots = nil
	g.Phase = PhasePreflop
	g.Round = RoundBetting{
		CurrentBet: g.BigBlind,
		MinRaise:   g.BigBlind,
		LastRaiser: bigBlindSeat,
		Acted:      []int{},
	}
	g.CurrentSeat = g.nextActiveSeat(bigBlindSeat)
	g.Winners = nil
	g.HandOver = false
	g.HandNumber++

	g.addMessage("Hand #%d - Blinds posted", g.HandNumber)

	return nil
}

// nextActiveSeat returns the first seat after the given index that can
// still act, or NoSeat
func (g *GameState) nextActiveSeat(from int) int {
	n := len(g.Seats)
	for i := 1; i <= n; i++ {
		index := (from + i) % n
		if g.Seats[index].CanAct() {
			return index
		}
	}

	return NoSeat
}

// nextFundedSeat returns the first seat after the given index with chips
func (g *GameState) nextFundedSeat(from int) int {
	n := len(g.Seats)
	for i := 1; i <= n; i++ {
		index := (from + i) % n
		if g.Seats[index].Chips > 0 {
			return index
		}
	}

	return from
}

// advanceToNextPlayer moves action to the next seat, or closes the round
// and deals the next phase when nobody is left to act
func (g *GameState) advanceToNextPlayer() error {
	next := g.nextActiveSeat(g.CurrentSeat)

	if next == NoSeat || isRoundComplete(*g) {
		g.collectBets()

		switch g.Phase {
		case PhasePreflop:
			if err := g.dealCommunity(3); err != nil {
				return err
			}
			g.Phase = PhaseFlop
			g.addMessage("Flop dealt")
		case PhaseFlop:
			if err := g.dealCommunity(1); err != nil {
				return err
			}
			g.Phase = PhaseTurn
			g.addMessage("Turn dealt")
		case PhaseTurn:
			if err := g.dealCommunity(1); err != nil {
				return err
			}
			g.Phase = PhaseRiver
			g.addMessage("River dealt")
		case PhaseRiver:
			g.Phase = PhaseShowdown
			g.CurrentSeat = NoSeat
			return nil
		}

		g.CurrentSeat = g.nextActiveSeat(g.DealerButton)
		return nil
	}

	g.CurrentSeat = next
	return nil
}

func (g *GameState) dealCommunity(count int) error {
	cards, err := g.Deck.DrawCount(count)
	if err != nil {
		return err
	}

	g.Community = append(g.Community, cards...)
	return nil
}

// maybeDefaultWin ends the hand immediately when only one seat is left
// with a claim on the pot. Returns true if the hand ended.
func (g *GameState) maybeDefaultWin() bool {
	winner := NoSeat
	contenders := 0
	for i, seat := range g.Seats {
		if seat.InHand() {
			winner = i
			contenders++
		}
	}

	if contenders != 1 {
		return false
	}

	winAmount := g.Pot
	for _, seat := range g.Seats {
		winAmount += seat.Bet
	}

	for i, seat := range g.Seats {
		seat.Bet = 0

		if i == winner {
			seat.Chips += winAmount
		} else if seat.Chips == 0 {
			seat.Status = StatusOut
		}
	}

	g.Pot = 0
	g.Phase = PhaseShowdown
	g.CurrentSeat = NoSeat
	g.Winners = []int{winner}
	g.HandOver = true

	g.addMessage("%s wins %d chips!", g.Seats[winner].Name, winAmount)

	return true
}

// runShowdown evaluates every live hand and splits the pot between the
// winners. Odd chips are truncated by the floor division.
func (g *GameState) runShowdown() error {
	evals := make([]*poker.Evaluation, len(g.Seats))
	for i, seat := range g.Seats {
		if !seat.InHand() {
			continue
		}

		cards := make([]*deck.Card, 0, len(seat.HoleCards)+len(g.Community))
		cards = append(cards, seat.HoleCards...)
		cards = append(cards, g.Community...)

		eval, err := poker.Evaluate(cards)
		if err != nil {
			return err
		}

		seat.HandEval = eval
		evals[i] = eval
	}

	winners := poker.FindWinners(evals)
	if len(winners) == 0 {
		return errors.New("no live hands at showdown")
	}

	total := g.Pot
	for _, seat := range g.Seats {
		total += seat.Bet
	}
	share := total / len(winners)

	isWinner := make(map[int]bool)
	for _, index := range winners {
		isWinner[index] = true
	}

	for i, seat := range g.Seats {
		seat.Bet = 0

		if isWinner[i] {
			seat.Chips += share
		}

		if seat.Chips == 0 {
			seat.Status = StatusOut
		}
	}

	g.Pot = 0
	g.Winners = winners
	g.HandOver = true

	names := make([]string, len(winners))
	for i, index := range winners {
		names[i] = g.Seats[index].Name
	}

	g.addMessage("%s wins with %s!", strings.Join(names, " and "), evals[winners[0]].Description)

	return nil
}

func (g *GameState) seatName(index int) string {
	if index < 0 || index >= len(g.Seats) {
		return fmt.Sprintf("seat %d", index)
	}

	return g.Seats[index].Name
}
