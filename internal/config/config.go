// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjacksim/internal/bot"
	"github.com/lox/blackjacksim/internal/game"
)

// File is the root of a configuration file: one session block plus any
// number of named player blocks.
type File struct {
	Session SessionConfig  `hcl:"session,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// SessionConfig configures the table rules. InsuranceBet is a pointer so an
// explicit zero disables the insurance offer instead of reading as unset.
type SessionConfig struct {
	MinPlayers     int  `hcl:"min_players,optional"`
	MaxPlayers     int  `hcl:"max_players,optional"`
	MinBet         int  `hcl:"min_bet,optional"`
	InsuranceBet   *int `hcl:"insurance_bet,optional"`
	DealerStandsOn int  `hcl:"dealer_stands_on,optional"`
}

// PlayerConfig configures one seat.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Bankroll int    `hcl:"bankroll,optional"`
}

// Default returns the configuration used when no file is given: default
// table rules and a single dealer-mimic seat.
func Default() *File {
	insurance := 10
	return &File{
		Session: SessionConfig{
			MinPlayers:     1,
			MaxPlayers:     6,
			MinBet:         10,
			InsuranceBet:   &insurance,
			DealerStandsOn: 17,
		},
		Players: []PlayerConfig{
			{Name: "Player1", Strategy: "dealer", Bankroll: 1000},
		},
	}
}

// Load parses an HCL configuration file, returning defaults when the file
// does not exist.
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *File) {
	def := Default()
	if cfg.Session.MinPlayers == 0 {
		cfg.Session.MinPlayers = def.Session.MinPlayers
	}
	if cfg.Session.MaxPlayers == 0 {
		cfg.Session.MaxPlayers = def.Session.MaxPlayers
	}
	if cfg.Session.MinBet == 0 {
		cfg.Session.MinBet = def.Session.MinBet
	}
	if cfg.Session.InsuranceBet == nil {
		cfg.Session.InsuranceBet = def.Session.InsuranceBet
	}
	if cfg.Session.DealerStandsOn == 0 {
		cfg.Session.DealerStandsOn = def.Session.DealerStandsOn
	}
	if len(cfg.Players) == 0 {
		cfg.Players = def.Players
	}
	for i := range cfg.Players {
		if cfg.Players[i].Bankroll == 0 {
			cfg.Players[i].Bankroll = 1000
		}
	}
}

// Rules converts the session block into table rules.
func (f *File) Rules() game.Rules {
	insurance := 0
	if f.Session.InsuranceBet != nil {
		insurance = *f.Session.InsuranceBet
	}
	return game.Rules{
		MinPlayers:     f.Session.MinPlayers,
		MaxPlayers:     f.Session.MaxPlayers,
		MinBet:         f.Session.MinBet,
		InsuranceBet:   insurance,
		DealerStandsOn: f.Session.DealerStandsOn,
	}
}

// Validate checks the configuration for errors.
func (f *File) Validate() error {
	if err := f.Rules().Validate(); err != nil {
		return err
	}

	if len(f.Players) < f.Session.MinPlayers {
		return fmt.Errorf("%d players configured but session requires at least %d", len(f.Players), f.Session.MinPlayers)
	}
	if len(f.Players) > f.Session.MaxPlayers {
		return fmt.Errorf("%d players configured but session seats at most %d", len(f.Players), f.Session.MaxPlayers)
	}

	valid := make(map[string]bool)
	for _, name := range bot.Names() {
		valid[name] = true
	}
	seen := make(map[string]bool)
	for _, p := range f.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if !valid[p.Strategy] {
			return fmt.Errorf("player %s: invalid strategy %q", p.Name, p.Strategy)
		}
		if p.Bankroll <= 0 {
			return fmt.Errorf("player %s: bankroll must be positive", p.Name)
		}
	}
	return nil
}
