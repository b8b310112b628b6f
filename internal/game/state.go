package game

// RoundState is the single active phase of the round lifecycle. The session
// holds the current state by value and replaces it wholesale on every
// transition; superseded states are never mutated. EndRound is terminal for
// a round and immediately re-initializes to PlacingBets.
type RoundState int

const (
	StateWaitingForPlayers RoundState = iota
	StatePlacingBets
	StateDealing
	StateOfferingInsurance
	StatePlayersTurn
	StateDealersTurn
	StateEndRound
)

// String returns the string representation of a round state
func (s RoundState) String() string {
	switch s {
	case StateWaitingForPlayers:
		return "WaitingForPlayers"
	case StatePlacingBets:
		return "PlacingBets"
	case StateDealing:
		return "Dealing"
	case StateOfferingInsurance:
		return "OfferingInsurance"
	case StatePlayersTurn:
		return "PlayersTurn"
	case StateDealersTurn:
		return "DealersTurn"
	case StateEndRound:
		return "EndRound"
	default:
		return "Unknown"
	}
}
