// Package bot provides the built-in decision policies that play seats in a
// simulation. Policies are deliberately simple and deterministic (except
// Random): the interesting behavior lives in the round lifecycle, and the
// simulator just needs terminating, reproducible opponents for it.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjacksim/internal/game"
)

// New creates a strategy by name: "stand", "dealer", "random", or "basic".
// "dealer" mimics the house policy (hit below 17) and buys insurance when
// offered, matching the table's default seat behavior.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	switch name {
	case "stand":
		return NewStand(logger), nil
	case "dealer":
		return NewThreshold(17, true, logger), nil
	case "random":
		return NewRandom(rng, logger), nil
	case "basic":
		return NewBasic(logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Names lists the strategies New accepts.
func Names() []string {
	return []string{"stand", "dealer", "random", "basic"}
}

// Stand always stands, whatever the hand.
type Stand struct {
	logger *log.Logger
}

// NewStand creates a Stand policy.
func NewStand(logger *log.Logger) *Stand {
	return &Stand{logger: logger}
}

func (s *Stand) Action(view game.HandView) game.Action {
	return game.Stand
}

func (s *Stand) TakesInsurance(view game.HandView) bool {
	return false
}

// Threshold hits while the hand value is below a fixed limit. With limit 17
// it plays exactly like the dealer.
type Threshold struct {
	limit  int
	insure bool
	logger *log.Logger
}

// NewThreshold creates a Threshold policy. insure controls whether the
// policy buys insurance when the dealer shows an Ace.
func NewThreshold(limit int, insure bool, logger *log.Logger) *Threshold {
	return &Threshold{limit: limit, insure: insure, logger: logger}
}

func (t *Threshold) Action(view game.HandView) game.Action {
	if view.Value < t.limit {
		return game.Hit
	}
	return game.Stand
}

func (t *Threshold) TakesInsurance(view game.HandView) bool {
	return t.insure
}

// Random hits or stands with equal probability and flips a coin on
// insurance. Termination is guaranteed by the round loop, which forces a
// stand at 21 or bust.
type Random struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a Random policy driven by the given rng.
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{rng: rng, logger: logger}
}

func (r *Random) Action(view game.HandView) game.Action {
	if r.rng.IntN(2) == 0 {
		return game.Hit
	}
	return game.Stand
}

func (r *Random) TakesInsurance(view game.HandView) bool {
	return r.rng.IntN(2) == 0
}

// Basic plays a simplified basic-strategy chart against the dealer's
// up-card. No splits or doubles exist at this table, so the chart reduces
// to hit/stand lines. It never buys insurance.
type Basic struct {
	logger *log.Logger
}

// NewBasic creates a Basic policy.
func NewBasic(logger *log.Logger) *Basic {
	return &Basic{logger: logger}
}

func (b *Basic) Action(view game.HandView) game.Action {
	up := view.DealerUpCard.FaceValue()

	if view.Soft {
		// Soft 19+ stands everywhere; soft 18 stands against weak up-cards.
		switch {
		case view.Value >= 19:
			return game.Stand
		case view.Value == 18 && up >= 2 && up <= 8:
			return game.Stand
		default:
			return game.Hit
		}
	}

	switch {
	case view.Value >= 17:
		return game.Stand
	case view.Value >= 13 && up >= 2 && up <= 6:
		return game.Stand
	case view.Value == 12 && up >= 4 && up <= 6:
		return game.Stand
	default:
		return game.Hit
	}
}

func (b *Basic) TakesInsurance(view game.HandView) bool {
	return false
}
