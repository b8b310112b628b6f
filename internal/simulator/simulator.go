// Package simulator runs many blackjack rounds and aggregates the results.
//
// Rounds are sharded across workers, each with its own session, deck, and
// seeded rng — no state is shared between concurrent sessions. A run is
// reproducible from its master seed regardless of worker count because each
// shard derives an independent seed and plays a fixed number of rounds.
package simulator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/bot"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/statistics"
)

// Seat describes one simulated player.
type Seat struct {
	Name     string
	Strategy string
	Bankroll int
}

// Config holds configuration for a simulation run.
type Config struct {
	Rounds  int
	Seats   []Seat
	Seed    int64
	Workers int
	Timeout time.Duration
	Rules   game.Rules
	Logger  *log.Logger
	Clock   quartz.Clock

	// OnProgress, when set, is called with the total completed round count
	// after every round. It must be cheap; it runs on worker goroutines.
	OnProgress func(completed int)
}

// Result is the outcome of a completed run.
type Result struct {
	Stats   statistics.Statistics
	Elapsed time.Duration
	Seed    int64
}

// Simulator runs blackjack round simulations.
type Simulator struct {
	config Config
}

// New creates a simulator, applying defaults for unset config fields.
func New(config Config) *Simulator {
	if len(config.Seats) == 0 {
		config.Seats = []Seat{{Name: "Player1", Strategy: "dealer", Bankroll: 1000}}
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the configured number of rounds and returns aggregate
// statistics. Workers beyond the round count are not spawned.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if len(cfg.Seats) < cfg.Rules.MinPlayers || len(cfg.Seats) > cfg.Rules.MaxPlayers {
		return nil, fmt.Errorf("seat count %d outside table limits [%d, %d]",
			len(cfg.Seats), cfg.Rules.MinPlayers, cfg.Rules.MaxPlayers)
	}
	for i, seat := range cfg.Seats {
		if seat.Name == "" {
			return nil, fmt.Errorf("seat %d has no name", i+1)
		}
		if seat.Bankroll < cfg.Rules.MinBet {
			return nil, fmt.Errorf("seat %q bankroll %d cannot cover the minimum bet %d",
				seat.Name, seat.Bankroll, cfg.Rules.MinBet)
		}
	}

	workers := cfg.Workers
	if workers > cfg.Rounds {
		workers = cfg.Rounds
	}

	start := cfg.Clock.Now()

	workerStats := make([]*statistics.Statistics, workers)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		// Spread the remainder across the first shards.
		rounds := cfg.Rounds / workers
		if w < cfg.Rounds%workers {
			rounds++
		}
		shardSeed := randutil.ShardSeed(cfg.Seed, w)
		stats := &statistics.Statistics{}
		workerStats[w] = stats

		g.Go(func() error {
			return s.runShard(gctx, shardSeed, rounds, stats, &completed)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.Statistics{}
	for _, ws := range workerStats {
		merged.Merge(ws)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return &Result{
		Stats:   merged,
		Elapsed: cfg.Clock.Since(start),
		Seed:    cfg.Seed,
	}, nil
}

// runShard plays a fixed number of rounds on a private session.
func (s *Simulator) runShard(ctx context.Context, seed int64, rounds int, stats *statistics.Statistics, completed *atomic.Int64) error {
	cfg := s.config
	rng := randutil.New(seed)

	sess, err := game.NewSession(cfg.Rules, deck.New(rng), cfg.Logger, nil)
	if err != nil {
		return err
	}

	for _, seat := range cfg.Seats {
		strategy, err := bot.New(seat.Strategy, rng, cfg.Logger)
		if err != nil {
			return err
		}
		if !sess.AddPlayer(game.NewPlayer(seat.Name, seat.Bankroll, strategy)) {
			return fmt.Errorf("failed to seat %s: rules allow at most %d players", seat.Name, cfg.Rules.MaxPlayers)
		}
	}

	for round := 0; round < rounds; round++ {
		roundCtx, cancel := context.WithCancel(ctx)
		watchdog := cfg.Clock.AfterFunc(cfg.Timeout, cancel)

		result, err := sess.PlayRound(roundCtx)
		watchdog.Stop()
		cancel()
		if err != nil {
			return fmt.Errorf("round %d (seed %d): %w", round+1, seed, err)
		}

		stats.Add(result)
		done := int(completed.Add(1))
		if cfg.OnProgress != nil {
			cfg.OnProgress(done)
		}
	}
	return nil
}
