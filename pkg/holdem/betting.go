package holdem

// LegalActions returns the actions the seat may take in the current state.
// A nil slice means the seat cannot act at all.
func LegalActions(state GameState, seatIndex int) []Action {
	if !state.Phase.IsBetting() {
		return nil
	}

	if seatIndex < 0 || seatIndex >= len(state.Seats) {
		return nil
	}

	seat := state.Seats[seatIndex]
	if !seat.CanAct() {
		return nil
	}

	toCall := state.Round.CurrentBet - seat.Bet

	actions := []Action{ActionFold}

	if toCall == 0 {
		actions = append(actions, ActionCheck)
	} else if seat.Chips >= toCall {
		actions = append(actions, ActionCall)
	}

	if state.Round.CurrentBet == 0 {
		if seat.Chips > 0 {
			actions = append(actions, ActionBet)
		}
	} else if seat.Chips > toCall {
		actions = append(actions, ActionRaise)
	}

	if seat.Chips > 0 {
		actions = append(actions, ActionAllIn)
	}

	return actions
}

// applyAction mutates the state for an already validated action
func (g *GameState) applyAction(seatIndex int, action Action, amount int) {
	seat := g.Seats[seatIndex]
	toCall := g.Round.CurrentBet - seat.Bet

	switch action {
	case ActionFold:
		seat.Status = StatusFolded
		g.Round.markActed(seatIndex)
		g.addMessage("%s folds", seat.Name)
	case ActionCheck:
		g.Round.markActed(seatIndex)
		g.addMessage("%s checks", seat.Name)
	case ActionCall:
		paid := seat.commit(toCall)
		g.Round.markActed(seatIndex)
		g.addMessage("%s calls %d", seat.Name, paid)
	case ActionBet:
		paid := seat.commit(amount)
		g.Round.CurrentBet = seat.Bet
		g.Round.MinRaise = paid
		g.Round.LastRaiser = seatIndex
		g.Round.Acted = []int{seatIndex}
		g.addMessage("%s bets %d", seat.Name, paid)
	case ActionRaise:
		seat.commit(toCall + amount)
		g.Round.CurrentBet = seat.Bet
		g.Round.MinRaise = amount
		g.Round.LastRaiser = seatIndex
		g.Round.Acted = []int{seatIndex}
		g.addMessage("%s raises to %d", seat.Name, seat.Bet)
	case ActionAllIn:
		paid := seat.commit(seat.Chips)

		// an all-in above the current bet reopens the action but does
		// not change the minimum raise
		if seat.Bet > g.Round.CurrentBet {
			g.Round.CurrentBet = seat.Bet
			g.Round.LastRaiser = seatIndex
			g.Round.Acted = []int{seatIndex}
		} else {
			g.Round.markActed(seatIndex)
		}

		g.addMessage("%s goes all-in with %d", seat.Name, paid)
	}
}

// isRoundComplete returns true once every seat that can still act has
// matched the current bet
func isRoundComplete(state GameState) bool {
	active := make([]*Seat, 0, len(state.Seats))
	for _, seat := range state.Seats {
		if seat.CanAct() {
			active = append(active, seat)
		}
	}

	if len(active) <= 1 {
		return true
	}

	for i, seat := range state.Seats {
		if !seat.CanAct() {
			continue
		}

		if !state.Round.HasActed(i) || seat.Bet != state.Round.CurrentBet {
			return false
		}
	}

	return true
}

// collectBets sweeps the seats' bets into the pot and resets the round
func (g *GameState) collectBets() {
	for _, seat := range g.Seats {
		g.Pot += seat.Bet
		seat.Bet = 0
	}

	g.Round = RoundBetting{
		CurrentBet: 0,
		MinRaise:   g.BigBlind,
		LastRaiser: NoSeat,
		Acted:      []int{},
	}
}
