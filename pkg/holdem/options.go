package holdem

import (
	"errors"
	"time"
)

// Options configures a new game
type Options struct {
	NumSeats     int
	InitialChips int
	SmallBlind   int
	BigBlind     int

	// SeatNames optionally names the seats. Seat 0 is the human seat;
	// unnamed CPU seats get a randomly generated name.
	SeatNames []string

	// CPUThinkDelay is the base pause before a CPU seat acts, and
	// CPUThinkJitter the random extra on top of it.
	CPUThinkDelay  time.Duration
	CPUThinkJitter time.Duration

	// AdvanceDelay is the pause after an action before play moves on.
	AdvanceDelay time.Duration

	// DealDelay is the pause before community cards are dealt or a
	// showdown is resolved.
	DealDelay time.Duration
}

// DefaultOptions returns the standard four-seat game configuration
func DefaultOptions() Options {
	return Options{
		NumSeats:       4,
		InitialChips:   1000,
		SmallBlind:     10,
		BigBlind:       20,
		CPUThinkDelay:  800 * time.Millisecond,
		CPUThinkJitter: 700 * time.Millisecond,
		AdvanceDelay:   300 * time.Millisecond,
		DealDelay:      500 * time.Millisecond,
	}
}

func validateOptions(opts Options) error {
	if opts.NumSeats < 2 {
		return errors.New("game requires at least two seats")
	}

	if opts.SmallBlind <= 0 || opts.BigBlind < opts.SmallBlind {
		return errors.New("blinds must satisfy 0 < small blind <= big blind")
	}

	if opts.InitialChips < opts.BigBlind {
		return errors.New("initial chips must cover the big blind")
	}

	if len(opts.SeatNames) > opts.NumSeats {
		return errors.New("more seat names than seats")
	}

	return nil
}
