// Package game implements the blackjack round lifecycle.
//
// The main type is Session, which owns the seated players, the dealer, the
// deck, and the current round state. A round walks a fixed sequence of
// phases: placing bets, dealing, offering insurance, player turns, the
// dealer's turn, and settlement. Exactly one phase is active at a time and
// the session replaces the state wholesale on every transition.
//
// # Basic usage
//
// Create a session, seat players, and play rounds:
//
//	sess := game.NewSession(game.DefaultRules(), deckOf(seed), logger, nil)
//	sess.AddPlayer(game.NewPlayer("Bob", 1000, strategy))
//	for i := 0; i < rounds; i++ {
//	    result, err := sess.PlayRound(ctx)
//	    ...
//	}
//
// # Collaborators
//
// The session owns no decision logic of its own collaborators: the Deck
// supplies cards, a Strategy chooses hit or stand for each player, and the
// EventBus carries informational events to whoever wants them. A session
// with no subscribers behaves identically to one with many.
//
// # Determinism
//
// Given a deck driven by a seeded rng and deterministic strategies, a round
// is fully reproducible: per-player loops always run in seating order.
package game
