package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"fourseatpoker/internal/config"
	"fourseatpoker/internal/rng"
	"fourseatpoker/pkg/deck"
	"fourseatpoker/pkg/holdem"
	"fourseatpoker/pkg/room"
)

// Version is the build version
var Version = "v0.0.0-dev"

var seed = flag.Int64("seed", 0, "seed for a deterministic deck (0 uses a secure source)")

func main() {
	flag.Parse()
	setupLogger()

	var gen rng.Generator = rng.Crypto{}
	if *seed != 0 {
		gen = rng.NewSeeded(*seed)
	}

	cfg := config.Instance()
	table, err := room.NewTable(cfg.GameOptions(), cfg.CPUProfile(), gen, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not create table")
	}
	defer table.Close()

	fmt.Printf("Four Seat Poker %s\n", Version)
	fmt.Println("Commands: fold, check, call, bet <n>, raise <n>, all-in, next, restart, quit")

	if err := table.Dispatch(holdem.StartGame{}); err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	go readCommands(table)

	for state := range table.Updates() {
		render(state)
	}
}

func readCommands(table *room.Table) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		amount := 0
		if len(fields) > 1 {
			amount, _ = strconv.Atoi(fields[1])
		}

		var err error
		switch fields[0] {
		case "next":
			if err = table.Dispatch(holdem.EndHand{}); err == nil {
				err = table.Dispatch(holdem.StartNewHand{})
			}
		case "restart":
			err = table.Dispatch(holdem.RestartGame{})
		case "quit", "exit":
			table.Close()
			return
		default:
			action, actionErr := holdem.ActionFromString(fields[0])
			if actionErr != nil {
				fmt.Printf("unknown command: %s\n", fields[0])
				continue
			}

			err = table.Act(0, action, amount)
		}

		if err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func render(state holdem.GameState) {
	fmt.Printf("\n== Hand %d | %s | Pot %d ==\n", state.HandNumber, state.Phase, state.Pot)

	if len(state.Community) > 0 {
		fmt.Printf("Board: %s\n", cardString(state.Community))
	}

	for i, seat := range state.Seats {
		marker := "  "
		if i == state.CurrentSeat {
			marker = "> "
		}
		if i == state.DealerButton {
			marker = marker[:1] + "D"
		}

		hand := ""
		if seat.IsHuman && len(seat.HoleCards) > 0 {
			hand = " " + cardString(seat.HoleCards)
		}
		if seat.HandEval != nil {
			hand += fmt.Sprintf(" (%s)", seat.HandEval.Description)
		}

		fmt.Printf("%s%-16s %5d chips, bet %4d [%s]%s\n", marker, seat.Name, seat.Chips, seat.Bet, seat.Status, hand)
	}

	if state.Message != "" {
		fmt.Printf("* %s\n", state.Message)
	}

	if state.Phase.IsBetting() && state.CurrentSeat == 0 && state.Seats[0].CanAct() {
		actions := make([]string, 0, 6)
		for _, action := range holdem.LegalActions(state, 0) {
			actions = append(actions, string(action))
		}

		fmt.Printf("Your move (%s): ", strings.Join(actions, ", "))
	}

	if state.HandOver {
		fmt.Println("Type 'next' for the next hand, or 'restart' to start over.")
	}
}

func cardString(cards []*deck.Card) string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.String()
	}

	return strings.Join(out, " ")
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
