package game

import (
	"sync"

	"github.com/lox/blackjacksim/internal/deck"
)

// scriptedDeck deals a fixed card sequence, restarting it on Reset. Tests
// use it to force exact hands through a round.
type scriptedDeck struct {
	cards []deck.Card
	next  int
}

func newScriptedDeck(spec string) *scriptedDeck {
	return &scriptedDeck{cards: deck.MustParseCards(spec)}
}

func (d *scriptedDeck) Reset()   { d.next = 0 }
func (d *scriptedDeck) Shuffle() {}

func (d *scriptedDeck) Deal() (deck.Card, bool) {
	if d.next >= len(d.cards) {
		return deck.Card{}, false
	}
	c := d.cards[d.next]
	d.next++
	return c, true
}

// standStrategy always stands and optionally buys insurance.
type standStrategy struct {
	insure bool
}

func (s standStrategy) Action(HandView) Action       { return Stand }
func (s standStrategy) TakesInsurance(HandView) bool { return s.insure }

// hitBelow hits until the hand reaches the limit.
type hitBelow struct {
	limit int
}

func (s hitBelow) Action(view HandView) Action {
	if view.Value < s.limit {
		return Hit
	}
	return Stand
}

func (s hitBelow) TakesInsurance(HandView) bool { return false }

// eventRecorder captures every published event for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) OnEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) ofType(t EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}
