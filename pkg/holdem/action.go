package holdem

import "fmt"

// Action is an action a seat can take during a betting round
type Action string

// action constants
const (
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionBet   Action = "bet"
	ActionRaise Action = "raise"
	ActionAllIn Action = "all-in"
)

var allowedActions = map[Action]bool{
	ActionFold:  true,
	ActionCheck: true,
	ActionCall:  true,
	ActionBet:   true,
	ActionRaise: true,
	ActionAllIn: true,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

func (a Action) String() string {
	switch a {
	case ActionFold:
		return "Fold"
	case ActionCheck:
		return "Check"
	case ActionCall:
		return "Call"
	case ActionBet:
		return "Bet"
	case ActionRaise:
		return "Raise"
	case ActionAllIn:
		return "All-In"
	}

	panic("unknown action")
}
