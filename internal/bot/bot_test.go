package bot

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
)

func view(hand string, up string) game.HandView {
	cards := deck.MustParseCards(hand)
	h := game.Hand(cards)
	return game.HandView{
		Cards:        cards,
		Value:        h.Value(),
		Soft:         h.IsSoft(),
		DealerUpCard: deck.MustParseCards(up)[0],
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		strategy, err := New(name, randutil.New(1), nil)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
		if strategy == nil {
			t.Errorf("New(%q) returned nil strategy", name)
		}
	}

	if _, err := New("cheat", randutil.New(1), nil); err == nil {
		t.Error("New accepted an unknown strategy name")
	}
}

func TestStand(t *testing.T) {
	t.Parallel()

	s := NewStand(nil)
	if got := s.Action(view("2s3h", "Ah")); got != game.Stand {
		t.Errorf("Action = %v, want stand on any hand", got)
	}
	if s.TakesInsurance(view("2s3h", "Ah")) {
		t.Error("Stand bought insurance")
	}
}

func TestThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		want game.Action
	}{
		{"Th6s", game.Hit},   // 16
		{"Th7s", game.Stand}, // 17
		{"As6s", game.Stand}, // soft 17 counts as 17
		{"ThTd", game.Stand}, // 20
	}

	policy := NewThreshold(17, true, nil)
	for _, tt := range tests {
		if got := policy.Action(view(tt.hand, "5h")); got != tt.want {
			t.Errorf("Action(%s) = %v, want %v", tt.hand, got, tt.want)
		}
	}
	if !policy.TakesInsurance(view("Th7s", "Ah")) {
		t.Error("insuring threshold policy declined insurance")
	}
}

func TestRandomIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewRandom(randutil.New(42), nil)
	b := NewRandom(randutil.New(42), nil)
	v := view("Th6s", "5h")

	for i := 0; i < 100; i++ {
		if a.Action(v) != b.Action(v) {
			t.Fatalf("diverged at decision %d with equal seeds", i)
		}
	}
}

func TestBasic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand string
		up   string
		want game.Action
	}{
		{"hard 17 stands", "Th7s", "Ah", game.Stand},
		{"hard 16 vs 10 hits", "Th6s", "Td", game.Hit},
		{"hard 13 vs 6 stands", "Th3s", "6d", game.Stand},
		{"hard 13 vs 7 hits", "Th3s", "7d", game.Hit},
		{"hard 12 vs 4 stands", "Th2s", "4d", game.Stand},
		{"hard 12 vs 2 hits", "Th2s", "2d", game.Hit},
		{"hard 11 always hits", "6h5s", "6d", game.Hit},
		{"soft 19 stands", "As8s", "Td", game.Stand},
		{"soft 18 vs 6 stands", "As7s", "6d", game.Stand},
		{"soft 18 vs 9 hits", "As7s", "9d", game.Hit},
		{"soft 17 hits", "As6s", "6d", game.Hit},
	}

	policy := NewBasic(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := policy.Action(view(tt.hand, tt.up)); got != tt.want {
				t.Errorf("Action(%s vs %s) = %v, want %v", tt.hand, tt.up, got, tt.want)
			}
		})
	}

	if policy.TakesInsurance(view("ThTd", "Ah")) {
		t.Error("Basic bought insurance")
	}
}
