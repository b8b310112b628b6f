package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/statistics"
)

// Deck supplies cards to a session. After Reset and Shuffle it must hold
// enough cards for one full round; running dry mid-deal is a configuration
// defect the session does not recover from.
type Deck interface {
	Reset()
	Shuffle()
	Deal() (deck.Card, bool)
}

// roundTally accumulates per-round facts for the statistics update made once
// at settlement.
type roundTally struct {
	startTotal      int
	blackjacks      int
	busts           int
	insuranceWins   int
	insuranceLosses int
}

// Session owns one table: the seated players in join order, the dealer, the
// deck, the current round state, and cumulative statistics. All round logic
// runs on the goroutine calling PlayRound; only AddPlayer may be called
// concurrently, and only until the round loop starts.
type Session struct {
	rules  Rules
	deck   Deck
	logger *log.Logger
	bus    EventBus

	mu      sync.Mutex
	players []*Player
	ready   chan struct{}
	state   RoundState

	dealer *Dealer

	// House ledger: every escrowed chip increments it, every payout
	// decrements it. sum(bankrolls) + house is invariant across rounds.
	house      int
	bankTotal  int
	round      roundTally
	lastResult statistics.RoundResult

	stats statistics.Statistics
}

// NewSession creates a session for the given rules and deck. Invalid rules
// are a fatal configuration error. A nil bus gets a fresh one with no
// subscribers.
func NewSession(rules Rules, d Deck, logger *log.Logger, bus EventBus) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if d == nil {
		return nil, fmt.Errorf("session requires a deck")
	}
	if bus == nil {
		bus = NewEventBus()
	}
	return &Session{
		rules:  rules,
		deck:   d,
		logger: logger,
		bus:    bus,
		ready:  make(chan struct{}),
		state:  StateWaitingForPlayers,
		dealer: NewDealer(),
	}, nil
}

// EventBus returns the bus session events are published on.
func (s *Session) EventBus() EventBus { return s.bus }

// State returns the currently active round state.
func (s *Session) State() RoundState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Players returns the seated players in join order.
func (s *Session) Players() []*Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Player, len(s.players))
	copy(out, s.players)
	return out
}

// Dealer returns the session's dealer.
func (s *Session) Dealer() *Dealer { return s.dealer }

// Stats returns a copy of the cumulative statistics.
func (s *Session) Stats() statistics.Statistics {
	return s.stats.Clone()
}

// AddPlayer seats a player. Join requests outside WaitingForPlayers or when
// the table is full are rejected no-ops, reported on the event bus. Returns
// true when the player was seated.
func (s *Session) AddPlayer(p *Player) bool {
	if p == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateWaitingForPlayers {
		s.bus.Publish(JoinRejectedEvent{Player: p.Name, Reason: "session already started", timestamp: time.Now()})
		return false
	}
	if len(s.players) >= s.rules.MaxPlayers {
		s.bus.Publish(JoinRejectedEvent{Player: p.Name, Reason: "session is full", timestamp: time.Now()})
		return false
	}

	s.players = append(s.players, p)
	s.bankTotal += p.Bankroll
	s.bus.Publish(PlayerJoinedEvent{Player: p.Name, Seats: len(s.players), timestamp: time.Now()})

	if len(s.players) == s.rules.MinPlayers {
		close(s.ready)
	}
	return true
}

// WaitForPlayers blocks until the minimum player count is reached or the
// context is cancelled. The wait is signalled by joins, never polled.
func (s *Session) WaitForPlayers(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PlayRound runs one complete round through every phase and returns its
// result. The first call waits for the minimum player count. Cancellation
// is honored between phases only; each phase runs to completion once
// entered.
func (s *Session) PlayRound(ctx context.Context) (statistics.RoundResult, error) {
	if s.State() == StateWaitingForPlayers {
		if err := s.WaitForPlayers(ctx); err != nil {
			return statistics.RoundResult{}, err
		}
		s.transition(StatePlacingBets)
	}

	s.round = roundTally{startTotal: s.totalBankrolls()}

	for {
		if err := ctx.Err(); err != nil {
			return statistics.RoundResult{}, err
		}

		next, err := s.step()
		if err != nil {
			return statistics.RoundResult{}, err
		}

		finished := s.State() == StateEndRound
		s.transition(next)
		if finished {
			return s.lastResult, nil
		}
	}
}

// step executes the entry action of the active state and returns the next
// state. Every state is handled explicitly; an unknown state is a defect in
// the machine itself and fails loudly.
func (s *Session) step() (RoundState, error) {
	switch s.State() {
	case StateWaitingForPlayers:
		// PlayRound transitions out of the wait before stepping.
		panic("game: step invoked in WaitingForPlayers")
	case StatePlacingBets:
		return s.placeBets()
	case StateDealing:
		return s.deal()
	case StateOfferingInsurance:
		return s.offerInsurance()
	case StatePlayersTurn:
		return s.playersTurn()
	case StateDealersTurn:
		return s.dealersTurn()
	case StateEndRound:
		return s.endRound()
	default:
		panic(fmt.Sprintf("game: unhandled round state %d", s.State()))
	}
}

func (s *Session) transition(to RoundState) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("state changed", "from", from, "to", to)
	}
	s.bus.Publish(StateChangedEvent{From: from, To: to, timestamp: time.Now()})
}

// placeBets escrows the table minimum for every player in seating order.
func (s *Session) placeBets() (RoundState, error) {
	for _, p := range s.players {
		p.PlaceBet(s.rules.MinBet)
		s.house += s.rules.MinBet
		s.bus.Publish(BetPlacedEvent{Player: p.Name, Amount: s.rules.MinBet, timestamp: time.Now()})
	}
	return StateDealing, nil
}

// deal resets and shuffles the deck, deals two cards to every player and the
// dealer alternating, and resolves naturals immediately.
func (s *Session) deal() (RoundState, error) {
	s.deck.Reset()
	s.deck.Shuffle()

	for pass := 0; pass < 2; pass++ {
		for _, p := range s.players {
			s.dealCard(&p.Participant, false)
		}
		// Dealer's second card is the hole card.
		s.dealCard(&s.dealer.Participant, pass == 1)
	}

	naturals := ResolveNaturals(s.dealer, s.players)
	s.house -= naturals.Paid
	s.round.blackjacks = len(naturals.Naturals)

	for _, n := range naturals.Naturals {
		s.bus.Publish(NaturalEvent{Participant: n.Player, Payout: n.Payout, timestamp: time.Now()})
	}
	if naturals.DealerBlackjack {
		s.bus.Publish(NaturalEvent{Participant: s.dealer.Name, timestamp: time.Now()})
	}

	return StateOfferingInsurance, nil
}

// offerInsurance runs the insurance side-bet when the dealer shows an Ace.
// The side-bet resolves here, before the dealer's turn, independent of the
// main bet.
func (s *Session) offerInsurance() (RoundState, error) {
	if s.rules.InsuranceBet == 0 || !s.dealer.ShowsAce() {
		return StatePlayersTurn, nil
	}

	for _, p := range s.players {
		if !p.Strategy.TakesInsurance(s.viewFor(p)) {
			continue
		}
		p.BuyInsurance(s.rules.InsuranceBet)
		s.house += s.rules.InsuranceBet

		won, payout := ResolveInsurance(s.dealer, p)
		s.house -= payout
		if won {
			s.round.insuranceWins++
		} else {
			s.round.insuranceLosses++
		}
		s.bus.Publish(InsuranceResolvedEvent{
			Player:    p.Name,
			Stake:     p.InsuranceBet,
			Won:       won,
			Payout:    payout,
			timestamp: time.Now(),
		})
	}
	return StatePlayersTurn, nil
}

// playersTurn asks each unresolved player's strategy for actions until the
// player stands, busts, or reaches 21. Busting decides the outcome on the
// spot so settlement never touches the player again.
func (s *Session) playersTurn() (RoundState, error) {
	for _, p := range s.players {
		if p.Resolved() {
			continue
		}

		for {
			view := s.viewFor(p)
			if view.Value >= 21 {
				break
			}

			action := p.Strategy.Action(view)
			if action == Stand {
				s.bus.Publish(PlayerActionEvent{Player: p.Name, Action: Stand, HandValue: view.Value, timestamp: time.Now()})
				break
			}

			s.dealCard(&p.Participant, false)
			busted := p.Hand.IsBust()
			s.bus.Publish(PlayerActionEvent{Player: p.Name, Action: Hit, HandValue: p.Hand.Value(), Busted: busted, timestamp: time.Now()})

			if busted {
				p.Outcome = OutcomeDealerWins
				s.round.busts++
				break
			}
		}
	}
	return StateDealersTurn, nil
}

// dealersTurn draws for the dealer under the fixed policy until it stands.
func (s *Session) dealersTurn() (RoundState, error) {
	for s.rules.DealerShouldDraw(s.dealer.Hand.Value()) {
		s.dealCard(&s.dealer.Participant, false)
	}
	if s.logger != nil {
		s.logger.Debug("dealer stands", "hand", s.dealer.Hand.String(), "value", s.dealer.Hand.Value())
	}
	return StateEndRound, nil
}

// endRound settles all remaining players, verifies chip conservation,
// updates the cumulative statistics exactly once, and resets per-round
// state for the next round.
func (s *Session) endRound() (RoundState, error) {
	settlement := Settle(s.dealer, s.players)
	s.house -= settlement.Paid

	s.bus.Publish(RoundSettledEvent{
		DealerHand:  s.dealer.Hand.String(),
		DealerValue: s.dealer.Hand.Value(),
		Settlements: settlement.Settled,
		timestamp:   time.Now(),
	})

	if err := s.validateConservation(); err != nil {
		return 0, err
	}

	result := statistics.RoundResult{
		Net:             s.totalBankrolls() - s.round.startTotal,
		Blackjacks:      s.round.blackjacks,
		Busts:           s.round.busts,
		InsuranceWins:   s.round.insuranceWins,
		InsuranceLosses: s.round.insuranceLosses,
	}
	for _, p := range s.players {
		switch p.Outcome {
		case OutcomePlayerWins:
			result.PlayerWin = true
		case OutcomeDealerWins:
			result.DealerWin = true
		case OutcomeDraw:
			result.Draw = true
		case OutcomeUnset:
			panic(fmt.Sprintf("game: player %s reached settlement with no outcome", p.Name))
		}
	}

	s.stats.Add(result)
	s.lastResult = result

	for _, p := range s.players {
		p.ResetRound()
	}
	s.dealer.ResetRound()

	return StatePlacingBets, nil
}

// dealCard draws from the deck into the participant's hand. The deck is
// specified to hold enough cards for a full round, so exhaustion here is a
// fatal configuration defect.
func (s *Session) dealCard(p *Participant, hidden bool) deck.Card {
	card, ok := s.deck.Deal()
	if !ok {
		panic(fmt.Sprintf("game: deck exhausted dealing to %s; deck must hold enough cards for one round", p.Name))
	}
	p.AddCard(card)
	s.bus.Publish(CardDealtEvent{Recipient: p.Name, Card: card, Hidden: hidden, timestamp: time.Now()})
	return card
}

func (s *Session) viewFor(p *Player) HandView {
	up, _ := s.dealer.UpCard()
	return HandView{
		Cards:        append([]deck.Card(nil), p.Hand...),
		Value:        p.Hand.Value(),
		Soft:         p.Hand.IsSoft(),
		DealerUpCard: up,
	}
}

func (s *Session) totalBankrolls() int {
	total := 0
	for _, p := range s.players {
		total += p.Bankroll
	}
	return total
}

// validateConservation checks the house ledger: every chip that left a
// bankroll must sit in the house ledger or have been paid back. A mismatch
// means the machine mis-paid somewhere and continuing would silently
// corrupt the statistics.
func (s *Session) validateConservation() error {
	if got := s.totalBankrolls() + s.house; got != s.bankTotal {
		return fmt.Errorf("chip conservation violated: bankrolls+house = %d, expected %d", got, s.bankTotal)
	}
	return nil
}
