package game

import "github.com/lox/blackjacksim/internal/deck"

// Outcome is a player's result for a single round.
type Outcome int

const (
	OutcomeUnset Outcome = iota
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomeDraw
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUnset:
		return "unset"
	case OutcomePlayerWins:
		return "player-wins"
	case OutcomeDealerWins:
		return "dealer-wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Participant is the state shared by players and the dealer: a name and the
// hand dealt this round.
type Participant struct {
	Name string
	Hand Hand
}

// AddCard appends a card to the participant's hand.
func (p *Participant) AddCard(c deck.Card) {
	p.Hand = append(p.Hand, c)
}

// Player is a seated participant with a bankroll. The bankroll persists
// across rounds; the bet, insurance stake, outcome, and blackjack flag are
// per-round and reset at settlement.
type Player struct {
	Participant
	Strategy Strategy

	Bankroll     int
	Bet          int
	InsuranceBet int
	Outcome      Outcome
	Blackjack    bool
}

// NewPlayer creates a player with a starting bankroll and a decision policy.
func NewPlayer(name string, bankroll int, strategy Strategy) *Player {
	return &Player{
		Participant: Participant{Name: name},
		Strategy:    strategy,
		Bankroll:    bankroll,
	}
}

// PlaceBet escrows the stake: it leaves the bankroll immediately and only
// returns through a payout.
func (p *Player) PlaceBet(amount int) {
	p.Bankroll -= amount
	p.Bet = amount
}

// BuyInsurance escrows the insurance side-bet stake.
func (p *Player) BuyInsurance(amount int) {
	p.Bankroll -= amount
	p.InsuranceBet = amount
}

// Payout credits winnings (or a returned stake) to the bankroll.
func (p *Player) Payout(amount int) {
	p.Bankroll += amount
}

// Resolved reports whether this round's outcome has already been decided.
func (p *Player) Resolved() bool {
	return p.Outcome != OutcomeUnset
}

// ResetRound clears all per-round state. Bankroll persists.
func (p *Player) ResetRound() {
	p.Hand = nil
	p.Bet = 0
	p.InsuranceBet = 0
	p.Outcome = OutcomeUnset
	p.Blackjack = false
}

// Dealer is the house participant. It places no bets and holds no bankroll;
// its first dealt card is the up-card visible to players.
type Dealer struct {
	Participant
}

// NewDealer creates the dealer for a session.
func NewDealer() *Dealer {
	return &Dealer{Participant: Participant{Name: "Dealer"}}
}

// UpCard returns the dealer's visible card. The second return is false
// before any cards are dealt.
func (d *Dealer) UpCard() (deck.Card, bool) {
	if len(d.Hand) == 0 {
		return deck.Card{}, false
	}
	return d.Hand[0], true
}

// ShowsAce reports whether the dealer's up-card is an Ace, which triggers
// the insurance offer.
func (d *Dealer) ShowsAce() bool {
	up, ok := d.UpCard()
	return ok && up.IsAce()
}

// ResetRound clears the dealer's hand.
func (d *Dealer) ResetRound() {
	d.Hand = nil
}
