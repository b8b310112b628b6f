package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjacksim/internal/deck"
)

// EventType identifies a session event.
type EventType string

const (
	EventTypeStateChanged      EventType = "state_changed"
	EventTypePlayerJoined      EventType = "player_joined"
	EventTypeJoinRejected      EventType = "join_rejected"
	EventTypeBetPlaced         EventType = "bet_placed"
	EventTypeCardDealt         EventType = "card_dealt"
	EventTypeNatural           EventType = "natural"
	EventTypeInsuranceResolved EventType = "insurance_resolved"
	EventTypePlayerAction      EventType = "player_action"
	EventTypeRoundSettled      EventType = "round_settled"
)

// String returns the string representation of the event type
func (et EventType) String() string { return string(et) }

// Event is any informational notification emitted by a session. Events are
// observational only: round behavior never depends on whether anyone
// subscribes.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// StateChangedEvent is published on every round-state transition.
type StateChangedEvent struct {
	From      RoundState
	To        RoundState
	timestamp time.Time
}

func (e StateChangedEvent) EventType() EventType { return EventTypeStateChanged }
func (e StateChangedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerJoinedEvent is published when a player takes a seat.
type PlayerJoinedEvent struct {
	Player    string
	Seats     int
	timestamp time.Time
}

func (e PlayerJoinedEvent) EventType() EventType { return EventTypePlayerJoined }
func (e PlayerJoinedEvent) Timestamp() time.Time { return e.timestamp }

// JoinRejectedEvent is published when a join request is refused: the session
// is either full or past WaitingForPlayers. The request is a no-op.
type JoinRejectedEvent struct {
	Player    string
	Reason    string
	timestamp time.Time
}

func (e JoinRejectedEvent) EventType() EventType { return EventTypeJoinRejected }
func (e JoinRejectedEvent) Timestamp() time.Time { return e.timestamp }

// BetPlacedEvent is published when a player's stake is escrowed.
type BetPlacedEvent struct {
	Player    string
	Amount    int
	timestamp time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// CardDealtEvent is published for every dealt card. Hidden is true for the
// dealer's hole card, whose identity must not reach observers until the
// dealer's turn.
type CardDealtEvent struct {
	Recipient string
	Card      deck.Card
	Hidden    bool
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NaturalEvent is published when a participant is dealt a two-card 21.
type NaturalEvent struct {
	Participant string
	Payout      int
	timestamp   time.Time
}

func (e NaturalEvent) EventType() EventType { return EventTypeNatural }
func (e NaturalEvent) Timestamp() time.Time { return e.timestamp }

// InsuranceResolvedEvent is published once per insured player at the
// insurance step.
type InsuranceResolvedEvent struct {
	Player    string
	Stake     int
	Won       bool
	Payout    int
	timestamp time.Time
}

func (e InsuranceResolvedEvent) EventType() EventType { return EventTypeInsuranceResolved }
func (e InsuranceResolvedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published for each hit or stand during a player's
// turn.
type PlayerActionEvent struct {
	Player    string
	Action    Action
	HandValue int
	Busted    bool
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// RoundSettledEvent is published once per round after settlement.
type RoundSettledEvent struct {
	DealerHand  string
	DealerValue int
	Settlements []PlayerSettlement
	timestamp   time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives session events.
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a basic in-memory event bus implementation.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus with no subscribers.
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order.
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// LogSubscriber forwards session events to a structured logger. Interactive
// sessions subscribe it at info level; simulations usually leave the bus
// empty.
type LogSubscriber struct {
	Logger *log.Logger
}

// OnEvent logs the event with key-value context.
func (s *LogSubscriber) OnEvent(event Event) {
	switch e := event.(type) {
	case StateChangedEvent:
		s.Logger.Debug("state changed", "from", e.From, "to", e.To)
	case PlayerJoinedEvent:
		s.Logger.Info("player joined", "player", e.Player, "seats", e.Seats)
	case JoinRejectedEvent:
		s.Logger.Warn("join rejected", "player", e.Player, "reason", e.Reason)
	case BetPlacedEvent:
		s.Logger.Info("bet placed", "player", e.Player, "amount", e.Amount)
	case CardDealtEvent:
		if e.Hidden {
			s.Logger.Info("card dealt", "to", e.Recipient, "card", "face down")
		} else {
			s.Logger.Info("card dealt", "to", e.Recipient, "card", e.Card)
		}
	case NaturalEvent:
		s.Logger.Info("natural 21", "participant", e.Participant, "payout", e.Payout)
	case InsuranceResolvedEvent:
		s.Logger.Info("insurance resolved", "player", e.Player, "stake", e.Stake, "won", e.Won, "payout", e.Payout)
	case PlayerActionEvent:
		s.Logger.Info("player action", "player", e.Player, "action", e.Action, "value", e.HandValue, "busted", e.Busted)
	case RoundSettledEvent:
		s.Logger.Info("round settled", "dealer", e.DealerHand, "value", e.DealerValue)
		for _, st := range e.Settlements {
			s.Logger.Info("outcome", "player", st.Player, "outcome", st.Outcome, "payout", st.Payout)
		}
	default:
		s.Logger.Debug("event", "type", event.EventType())
	}
}
