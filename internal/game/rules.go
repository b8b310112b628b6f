package game

import "fmt"

// Rules holds the table configuration for a session. Configuration errors
// are fatal at session construction; Validate catches them up front.
type Rules struct {
	MinPlayers     int
	MaxPlayers     int
	MinBet         int
	InsuranceBet   int
	DealerStandsOn int
}

// DefaultRules returns the standard single-deck table: one to six seats,
// 10-chip flat bets, 10-chip insurance, dealer stands on 17.
func DefaultRules() Rules {
	return Rules{
		MinPlayers:     1,
		MaxPlayers:     6,
		MinBet:         10,
		InsuranceBet:   10,
		DealerStandsOn: 17,
	}
}

// Validate checks the rules for configuration errors.
func (r Rules) Validate() error {
	if r.MinPlayers < 1 {
		return fmt.Errorf("min players must be at least 1, got %d", r.MinPlayers)
	}
	if r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("max players (%d) must be at least min players (%d)", r.MaxPlayers, r.MinPlayers)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("min bet must be positive, got %d", r.MinBet)
	}
	if r.MinBet%2 != 0 {
		return fmt.Errorf("min bet must be even so naturals pay exactly 3:2, got %d", r.MinBet)
	}
	if r.InsuranceBet < 0 {
		return fmt.Errorf("insurance bet must not be negative, got %d", r.InsuranceBet)
	}
	if r.DealerStandsOn < 2 || r.DealerStandsOn > 21 {
		return fmt.Errorf("dealer stands-on threshold must be between 2 and 21, got %d", r.DealerStandsOn)
	}
	return nil
}

// DealerShouldDraw is the fixed dealer policy: draw while the hand value is
// below the stand threshold. Soft totals are not treated specially; a soft
// 17 stands just like a hard 17.
func (r Rules) DealerShouldDraw(handValue int) bool {
	return handValue < r.DealerStandsOn
}
