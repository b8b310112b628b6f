package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
)

// PlayCmd runs an interactive session with the human deciding each hand.
type PlayCmd struct {
	Name     string `help:"Your seat name" default:"Player"`
	Bankroll int    `help:"Starting bankroll" default:"100"`
	Rounds   int    `help:"Rounds to play (0 plays until you quit or run out of chips)" default:"0"`
	Seed     int64  `help:"RNG seed (0 picks one from the clock)" default:"0"`
	Debug    bool   `help:"Enable debug logging" short:"v"`
}

func (c *PlayCmd) Run() error {
	logger := newLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bus := game.NewEventBus()
	bus.Subscribe(&game.LogSubscriber{Logger: logger})
	bus.Subscribe(consoleSubscriber{})

	sess, err := game.NewSession(game.DefaultRules(), deck.New(randutil.New(seed)), logger, bus)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	player := game.NewPlayer(c.Name, c.Bankroll, &game.PromptStrategy{
		Prompt:          makeActionPrompt(reader),
		InsurancePrompt: makeInsurancePrompt(reader),
	})
	if !sess.AddPlayer(player) {
		return fmt.Errorf("could not seat %s", c.Name)
	}

	minBet := game.DefaultRules().MinBet
	fmt.Printf("Welcome, %s. Bankroll %d, bets are %d a round.\n", c.Name, c.Bankroll, minBet)

	for round := 1; c.Rounds == 0 || round <= c.Rounds; round++ {
		if player.Bankroll < minBet {
			fmt.Println("You can no longer cover the minimum bet. Cashing out.")
			break
		}

		fmt.Printf("\n--- Round %d (bankroll %d) ---\n", round, player.Bankroll)
		result, err := sess.PlayRound(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Round net: %+d chips, bankroll %d\n", result.Net, player.Bankroll)

		if c.Rounds == 0 && !promptYesNo(reader, "Play another round?") {
			break
		}
	}

	stats := sess.Stats()
	if stats.Rounds > 0 {
		fmt.Printf("\nPlayed %d rounds: %d won, %d lost, %d drawn. Net %+.0f chips.\n",
			stats.Rounds, stats.PlayerWins, stats.DealerWins, stats.Draws, stats.SumNet)
	}
	return nil
}

// consoleSubscriber narrates the round on stdout. Hidden cards stay hidden
// until the dealer reveals them by drawing.
type consoleSubscriber struct{}

func (consoleSubscriber) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.CardDealtEvent:
		if e.Hidden {
			fmt.Printf("%s draws a face-down card\n", e.Recipient)
		} else {
			fmt.Printf("%s draws %s\n", e.Recipient, e.Card)
		}
	case game.NaturalEvent:
		if e.Payout > 0 {
			fmt.Printf("Blackjack! %s is paid %d\n", e.Participant, e.Payout)
		} else {
			fmt.Printf("%s has blackjack\n", e.Participant)
		}
	case game.InsuranceResolvedEvent:
		if e.Won {
			fmt.Printf("Insurance pays %d\n", e.Payout)
		} else {
			fmt.Printf("Insurance lost (%d)\n", e.Stake)
		}
	case game.RoundSettledEvent:
		fmt.Printf("Dealer finishes with %s (%d)\n", e.DealerHand, e.DealerValue)
		for _, s := range e.Settlements {
			fmt.Printf("%s: %s, paid %d\n", s.Player, s.Outcome, s.Payout)
		}
	}
}

func makeActionPrompt(reader *bufio.Reader) func(game.HandView) (game.Action, error) {
	return func(view game.HandView) (game.Action, error) {
		value := fmt.Sprintf("%d", view.Value)
		if view.Soft {
			value = "soft " + value
		}
		fmt.Printf("Your hand: %s (%s), dealer shows %s\n", game.Hand(view.Cards), value, view.DealerUpCard)
		for {
			fmt.Print("[h]it or [s]tand? ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return game.Stand, err
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "h", "hit":
				return game.Hit, nil
			case "s", "stand":
				return game.Stand, nil
			}
		}
	}
}

func makeInsurancePrompt(reader *bufio.Reader) func(game.HandView) (bool, error) {
	return func(view game.HandView) (bool, error) {
		fmt.Printf("Dealer shows %s.\n", view.DealerUpCard)
		return promptYesNo(reader, "Buy insurance?"), nil
	}
}

func promptYesNo(reader *bufio.Reader, question string) bool {
	for {
		fmt.Printf("%s [y/n] ", question)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}
