package game

// Settlement logic. All payouts flow through here and through the
// bet-placement step, and every credited chip is reported back to the
// session's house ledger so conservation can be checked after each round.
//
// Payout table, integer chips:
//
//	natural            bet * 3/2  (paid immediately at the deal)
//	win                bet * 2    (stake returned plus equal winnings)
//	push               bet * 1    (stake returned)
//	loss / bust        0
//	insurance win      stake * 2
//	insurance loss     0

// PlayerSettlement records one player's result for a round.
type PlayerSettlement struct {
	Player  string
	Outcome Outcome
	Payout  int
}

// SettlementResult is the outcome of settling every unresolved player
// against the dealer's final hand.
type SettlementResult struct {
	Settled []PlayerSettlement
	Paid    int
}

// NaturalsResult is the outcome of the pre-settlement natural-blackjack
// check that runs immediately after dealing.
type NaturalsResult struct {
	DealerBlackjack bool
	Naturals        []PlayerSettlement
	Paid            int
}

// ResolveNaturals pays any player holding a two-card 21 at 3:2 and flags
// them blackjack with a player-wins outcome. If the dealer also holds a
// natural, every non-blackjack player loses outright and every blackjack
// holder is re-flagged as a draw; the 3:2 payout already made is kept.
func ResolveNaturals(dealer *Dealer, players []*Player) NaturalsResult {
	result := NaturalsResult{DealerBlackjack: dealer.Hand.IsBlackjack()}

	for _, p := range players {
		if p.Hand.IsBlackjack() {
			payout := p.Bet * 3 / 2
			p.Payout(payout)
			p.Blackjack = true
			p.Outcome = OutcomePlayerWins
			result.Paid += payout
			result.Naturals = append(result.Naturals, PlayerSettlement{
				Player:  p.Name,
				Outcome: OutcomePlayerWins,
				Payout:  payout,
			})
		}
	}

	if result.DealerBlackjack {
		for _, p := range players {
			if p.Blackjack {
				p.Outcome = OutcomeDraw
			} else {
				p.Outcome = OutcomeDealerWins
			}
		}
	}

	return result
}

// ResolveInsurance settles a single player's insurance side-bet against the
// dealer's two-card hand. The side-bet is independent of the main bet: it
// pays 2:1 on a dealer natural and is forfeited otherwise.
func ResolveInsurance(dealer *Dealer, p *Player) (won bool, payout int) {
	if p.InsuranceBet == 0 {
		return false, 0
	}
	if dealer.Hand.IsBlackjack() {
		payout = p.InsuranceBet * 2
		p.Payout(payout)
		return true, payout
	}
	return false, 0
}

// Settle resolves every player without an outcome against the dealer's
// final hand. Players already flagged — blackjack-paid, busted during their
// turn, or decided by a dealer natural — are skipped, so settling is
// idempotent: each player transitions outcome exactly once per round.
func Settle(dealer *Dealer, players []*Player) SettlementResult {
	dealerValue := dealer.Hand.Value()
	dealerBust := dealer.Hand.IsBust()

	var result SettlementResult
	for _, p := range players {
		if p.Resolved() {
			continue
		}

		playerValue := p.Hand.Value()
		var payout int
		switch {
		case playerValue > 21:
			// Bust players are normally flagged during their turn; this
			// branch keeps settlement correct if one reaches us unflagged.
			p.Outcome = OutcomeDealerWins
		case dealerBust || playerValue > dealerValue:
			payout = p.Bet * 2
			p.Payout(payout)
			p.Outcome = OutcomePlayerWins
		case playerValue < dealerValue:
			p.Outcome = OutcomeDealerWins
		default:
			payout = p.Bet
			p.Payout(payout)
			p.Outcome = OutcomeDraw
		}

		result.Paid += payout
		result.Settled = append(result.Settled, PlayerSettlement{
			Player:  p.Name,
			Outcome: p.Outcome,
			Payout:  payout,
		})
	}
	return result
}
