package deck

import (
	rand "math/rand/v2"
)

// Deck is a standard 52-card deck with injectable randomness. A nil rng gets
// a non-deterministic fallback; simulations always inject a seeded source so
// a run can be replayed from its seed.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck in canonical order using the given rng for
// all subsequent shuffles.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card. The second return is false when the
// deck is exhausted.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset restores the deck to a full 52 cards. It does not shuffle; callers
// decide when to randomize.
func (d *Deck) Reset() {
	d.fill()
}
