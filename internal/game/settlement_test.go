package game

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
)

func playerWithHand(name string, bet int, spec string) *Player {
	p := NewPlayer(name, 1000, standStrategy{})
	p.PlaceBet(bet)
	p.Hand = deck.MustParseCards(spec)
	return p
}

func dealerWithHand(spec string) *Dealer {
	d := NewDealer()
	d.Hand = deck.MustParseCards(spec)
	return d
}

func TestResolveNaturals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		dealer      string
		player      string
		wantOutcome Outcome
		wantPayout  int
		wantDealerB bool
	}{
		{"player natural pays 3:2", "9h8d", "AsKh", OutcomePlayerWins, 15, false},
		{"both natural is a draw but the payout stands", "AhTd", "AsKh", OutcomeDraw, 15, true},
		{"dealer natural beats a plain hand", "AhTd", "Ts9s", OutcomeDealerWins, 0, true},
		{"no naturals leaves the player unresolved", "9h8d", "Ts9s", OutcomeUnset, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := playerWithHand("P1", 10, tt.player)
			before := p.Bankroll
			result := ResolveNaturals(dealerWithHand(tt.dealer), []*Player{p})

			if result.DealerBlackjack != tt.wantDealerB {
				t.Errorf("DealerBlackjack = %v, want %v", result.DealerBlackjack, tt.wantDealerB)
			}
			if p.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %v, want %v", p.Outcome, tt.wantOutcome)
			}
			if got := p.Bankroll - before; got != tt.wantPayout {
				t.Errorf("payout = %d, want %d", got, tt.wantPayout)
			}
			if result.Paid != tt.wantPayout {
				t.Errorf("Paid = %d, want %d", result.Paid, tt.wantPayout)
			}
		})
	}
}

func TestResolveInsurance(t *testing.T) {
	t.Parallel()

	t.Run("pays 2:1 on a dealer natural", func(t *testing.T) {
		t.Parallel()
		p := playerWithHand("P1", 10, "Ts9s")
		p.BuyInsurance(10)
		before := p.Bankroll

		won, payout := ResolveInsurance(dealerWithHand("AhTd"), p)
		if !won || payout != 20 {
			t.Errorf("ResolveInsurance = (%v, %d), want (true, 20)", won, payout)
		}
		if p.Bankroll != before+20 {
			t.Errorf("bankroll = %d, want %d", p.Bankroll, before+20)
		}
	})

	t.Run("forfeits the stake otherwise", func(t *testing.T) {
		t.Parallel()
		p := playerWithHand("P1", 10, "Ts9s")
		p.BuyInsurance(10)
		before := p.Bankroll

		won, payout := ResolveInsurance(dealerWithHand("Ah8d"), p)
		if won || payout != 0 {
			t.Errorf("ResolveInsurance = (%v, %d), want (false, 0)", won, payout)
		}
		if p.Bankroll != before {
			t.Errorf("bankroll = %d, want %d", p.Bankroll, before)
		}
	})

	t.Run("no side-bet is a no-op", func(t *testing.T) {
		t.Parallel()
		p := playerWithHand("P1", 10, "Ts9s")
		won, payout := ResolveInsurance(dealerWithHand("AhTd"), p)
		if won || payout != 0 {
			t.Errorf("ResolveInsurance = (%v, %d), want (false, 0)", won, payout)
		}
	})
}

func TestSettle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		dealer      string
		player      string
		wantOutcome Outcome
		wantPayout  int
	}{
		{"higher hand wins double", "Th7d", "Ts9s", OutcomePlayerWins, 20},
		{"lower hand loses the stake", "ThTd", "Ts6s", OutcomeDealerWins, 0},
		{"equal hands push the stake back", "Th9d", "Ts9s", OutcomeDraw, 10},
		{"dealer bust pays any standing hand", "Th9d5c", "Ts2s", OutcomePlayerWins, 20},
		{"player bust loses even against a dealer bust", "Th9d5c", "Ts9s5h", OutcomeDealerWins, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := playerWithHand("P1", 10, tt.player)
			before := p.Bankroll
			result := Settle(dealerWithHand(tt.dealer), []*Player{p})

			if p.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %v, want %v", p.Outcome, tt.wantOutcome)
			}
			if got := p.Bankroll - before; got != tt.wantPayout {
				t.Errorf("payout = %d, want %d", got, tt.wantPayout)
			}
			if result.Paid != tt.wantPayout {
				t.Errorf("Paid = %d, want %d", result.Paid, tt.wantPayout)
			}
		})
	}
}

func TestSettleSkipsResolvedPlayers(t *testing.T) {
	t.Parallel()

	p := playerWithHand("P1", 10, "Ts6s")
	p.Outcome = OutcomeDealerWins // busted during the player's turn
	before := p.Bankroll

	dealer := dealerWithHand("Th7d")
	first := Settle(dealer, []*Player{p})
	second := Settle(dealer, []*Player{p})

	if len(first.Settled) != 0 || len(second.Settled) != 0 {
		t.Errorf("resolved player was settled again: %v, %v", first.Settled, second.Settled)
	}
	if p.Bankroll != before {
		t.Errorf("bankroll changed for a resolved player: %d, want %d", p.Bankroll, before)
	}
}
