// Package evaluator computes blackjack hand values.
//
// All functions are pure: they read a slice of cards and return a value, with
// no dependence on card order. Aces are worth eleven when that keeps the
// total at or under 21, otherwise one. The result is always the highest legal
// total when one exists, or the ace-minimal total (a bust value over 21) when
// none does.
package evaluator

import "github.com/lox/blackjacksim/internal/deck"

// Bust is the threshold above which a hand is dead.
const Bust = 21

// Value returns the best blackjack total for the given cards. Every Ace is
// first counted as one, then promoted to eleven one at a time while the
// total stays at or under 21. Promotion order does not matter because each
// promotion adds the same ten.
func Value(cards []deck.Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		if c.IsAce() {
			aces++
			total++
		} else {
			total += c.FaceValue()
		}
	}

	for ; aces > 0 && total+10 <= Bust; aces-- {
		total += 10
	}
	return total
}

// IsBlackjack returns true for a natural: exactly two cards totalling 21.
func IsBlackjack(cards []deck.Card) bool {
	return len(cards) == 2 && Value(cards) == Bust
}

// IsBust returns true when no ace valuation keeps the hand at or under 21.
func IsBust(cards []deck.Card) bool {
	return Value(cards) > Bust
}

// IsSoft returns true when the hand counts an Ace as eleven, i.e. the hand
// can absorb a ten-value draw without busting.
func IsSoft(cards []deck.Card) bool {
	hard := 0
	hasAce := false
	for _, c := range cards {
		if c.IsAce() {
			hasAce = true
			hard++
		} else {
			hard += c.FaceValue()
		}
	}
	return hasAce && hard+10 <= Bust
}
