package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/simulator"
)

// SimulateCmd runs many rounds of blackjack and prints aggregate statistics.
type SimulateCmd struct {
	Rounds   int           `help:"Number of rounds to simulate" default:"10000"`
	Players  int           `help:"Seats to fill when no config file is given" default:"1"`
	Strategy string        `help:"Decision policy for simulated seats" default:"dealer" enum:"stand,dealer,random,basic"`
	Bankroll int           `help:"Starting bankroll per seat" default:"1000"`
	Seed     int64         `help:"RNG seed for reproducible runs (0 picks one from the clock)" default:"0"`
	Workers  int           `help:"Concurrent sessions to shard rounds across" default:"1"`
	Timeout  time.Duration `help:"Per-round watchdog timeout" default:"30s"`
	Config   string        `help:"HCL table configuration file" type:"path"`
	Progress bool          `help:"Show a live progress bar"`
	Debug    bool          `help:"Enable debug logging" short:"v"`
}

func (c *SimulateCmd) Run() error {
	logger := newLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	simCfg := simulator.Config{
		Rounds:  c.Rounds,
		Seed:    seed,
		Workers: c.Workers,
		Timeout: c.Timeout,
		Logger:  logger,
	}

	if c.Config != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", c.Config, err)
		}
		simCfg.Rules = cfg.Rules()
		for _, p := range cfg.Players {
			simCfg.Seats = append(simCfg.Seats, simulator.Seat{
				Name:     p.Name,
				Strategy: p.Strategy,
				Bankroll: p.Bankroll,
			})
		}
	} else {
		for i := 0; i < c.Players; i++ {
			simCfg.Seats = append(simCfg.Seats, simulator.Seat{
				Name:     fmt.Sprintf("Player%d", i+1),
				Strategy: c.Strategy,
				Bankroll: c.Bankroll,
			})
		}
	}

	logger.Info("starting simulation",
		"rounds", c.Rounds,
		"seats", len(simCfg.Seats),
		"workers", c.Workers,
		"seed", seed,
	)

	var result *simulator.Result
	var err error

	if c.Progress {
		result, err = c.runWithProgress(simCfg)
	} else {
		result, err = simulator.New(simCfg).Run(context.Background())
	}
	if err != nil {
		return err
	}

	printReport(result)
	return nil
}

// runWithProgress drives the simulation from a goroutine while a bubbletea
// program owns the terminal for the progress bar.
func (c *SimulateCmd) runWithProgress(simCfg simulator.Config) (*simulator.Result, error) {
	p := tea.NewProgram(newProgressModel(simCfg.Rounds))

	// Progress updates arrive from worker goroutines; sending every round
	// would swamp the UI at high throughput.
	simCfg.OnProgress = func(done int) {
		if done%64 == 0 || done == simCfg.Rounds {
			p.Send(progressMsg(done))
		}
	}

	var result *simulator.Result
	var runErr error
	go func() {
		result, runErr = simulator.New(simCfg).Run(context.Background())
		p.Send(simDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}
	return result, nil
}
