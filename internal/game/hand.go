package game

import (
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/evaluator"
)

// Hand is an ordered sequence of cards owned by exactly one participant.
type Hand []deck.Card

// Value returns the best blackjack total for the hand.
func (h Hand) Value() int {
	return evaluator.Value(h)
}

// IsBlackjack returns true for a two-card 21.
func (h Hand) IsBlackjack() bool {
	return evaluator.IsBlackjack(h)
}

// IsBust returns true when the hand totals over 21.
func (h Hand) IsBust() bool {
	return evaluator.IsBust(h)
}

// IsSoft returns true when an Ace is currently counted as eleven.
func (h Hand) IsSoft() bool {
	return evaluator.IsSoft(h)
}

// String renders the hand as space-separated cards, e.g. "A♠ K♥".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
