package simulator

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/lox/blackjacksim/internal/game"
)

func TestRunProducesRequestedRounds(t *testing.T) {
	t.Parallel()

	sim := New(Config{Rounds: 500, Seed: 1})
	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.Rounds != 500 {
		t.Errorf("Rounds = %d, want 500", result.Stats.Rounds)
	}
	if err := result.Stats.Validate(); err != nil {
		t.Errorf("statistics invalid: %v", err)
	}
	if result.Seed != 1 {
		t.Errorf("Seed = %d, want 1", result.Seed)
	}
}

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()

	run := func() float64 {
		sim := New(Config{
			Rounds:  300,
			Seed:    42,
			Workers: 4,
			Seats: []Seat{
				{Name: "P1", Strategy: "random", Bankroll: 1000},
				{Name: "P2", Strategy: "basic", Bankroll: 1000},
			},
		})
		result, err := sim.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return result.Stats.SumNet
	}

	if a, b := run(), run(); a != b {
		t.Errorf("equal seeds diverged: %v vs %v", a, b)
	}
}

func TestRunShardsAcrossWorkers(t *testing.T) {
	t.Parallel()

	// More workers than rounds: the extra workers must not be spawned and
	// the round count must still be exact.
	sim := New(Config{Rounds: 3, Seed: 7, Workers: 16})
	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.Rounds != 3 {
		t.Errorf("Rounds = %d, want 3", result.Stats.Rounds)
	}
}

func TestRunReportsProgress(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	max := 0

	sim := New(Config{
		Rounds:  50,
		Seed:    1,
		Workers: 2,
		OnProgress: func(done int) {
			mu.Lock()
			if done > max {
				max = done
			}
			mu.Unlock()
		},
	})
	if _, err := sim.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if max != 50 {
		t.Errorf("final progress = %d, want 50", max)
	}
}

func TestRunValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			"zero rounds",
			Config{Rounds: 0},
			"rounds must be positive",
		},
		{
			"unpayable bankroll",
			Config{Rounds: 1, Seats: []Seat{{Name: "P1", Strategy: "stand", Bankroll: 5}}},
			"cannot cover the minimum bet",
		},
		{
			"too many seats",
			Config{Rounds: 1, Seats: make([]Seat, 7)},
			"outside table limits",
		},
		{
			"invalid rules",
			Config{Rounds: 1, Rules: game.Rules{MinPlayers: 1, MaxPlayers: 6, MinBet: 15, DealerStandsOn: 17}},
			"invalid rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.config).Run(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Run = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunUnknownStrategy(t *testing.T) {
	t.Parallel()

	sim := New(Config{
		Rounds: 1,
		Seats:  []Seat{{Name: "P1", Strategy: "cheat", Bankroll: 1000}},
	})
	if _, err := sim.Run(context.Background()); err == nil {
		t.Fatal("Run accepted an unknown strategy")
	}
}

func TestRunHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{Rounds: 100000, Seed: 1})
	if _, err := sim.Run(ctx); err == nil {
		t.Fatal("Run ignored a cancelled context")
	}
}
