package game

import "github.com/lox/blackjacksim/internal/deck"

// Action is a player decision during their turn.
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// HandView is the read-only state a strategy sees when deciding. It carries
// the acting player's cards plus the dealer's up-card; the hole card stays
// hidden until the dealer's turn.
type HandView struct {
	Cards        []deck.Card
	Value        int
	Soft         bool
	DealerUpCard deck.Card
}

// Strategy chooses actions for a player. The session calls Action repeatedly
// until the player stands, busts, or reaches 21, so any strategy terminates.
// Strategies receive immutable views and must not hold session state.
type Strategy interface {
	Action(view HandView) Action
	TakesInsurance(view HandView) bool
}

// PromptStrategy adapts an interactive prompt into a Strategy. A prompt
// error falls back to standing so a broken input stream cannot stall a
// round.
type PromptStrategy struct {
	Prompt          func(view HandView) (Action, error)
	InsurancePrompt func(view HandView) (bool, error)
}

// Action asks the prompt for a decision.
func (s *PromptStrategy) Action(view HandView) Action {
	if s.Prompt == nil {
		return Stand
	}
	action, err := s.Prompt(view)
	if err != nil {
		return Stand
	}
	return action
}

// TakesInsurance asks the prompt whether to buy insurance, declining on any
// error.
func (s *PromptStrategy) TakesInsurance(view HandView) bool {
	if s.InsurancePrompt == nil {
		return false
	}
	buy, err := s.InsurancePrompt(view)
	if err != nil {
		return false
	}
	return buy
}
