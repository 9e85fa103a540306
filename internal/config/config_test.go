package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/datalog"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Simulation.Players != 4 || cfg.Rules.StartingCash != 1500 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Trials != 1000 {
		t.Errorf("trials = %d, want default 1000", cfg.Simulation.Trials)
	}
}

func TestLoadAppliesDefaultsToOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	content := `
simulation {
  players = 3
  data    = "losers_names"
}

rules {
  starting_cash_list = [1500, 1400, 1300]
}

behaviour {
  cash_floor = 200
}

experiment {
  refuse_group = "indigo"
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Simulation.Players != 3 {
		t.Errorf("players = %d, want 3", cfg.Simulation.Players)
	}
	if cfg.Simulation.Turns != 1000 {
		t.Errorf("omitted turns = %d, want default 1000", cfg.Simulation.Turns)
	}
	if cfg.Behaviour.UnmortgageCoeff != 3 {
		t.Errorf("omitted unmortgage_coeff = %d, want default 3", cfg.Behaviour.UnmortgageCoeff)
	}
	if cfg.DataCategory() != datalog.LosersNames {
		t.Errorf("data category = %q", cfg.DataCategory())
	}
	if cfg.RefusedGroup() != board.Indigo {
		t.Errorf("refused group = %v", cfg.RefusedGroup())
	}
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	if err := os.WriteFile(path, []byte("simulation {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed HCL should fail to load")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few players", func(c *Config) { c.Simulation.Players = 1 }},
		{"too many players", func(c *Config) { c.Simulation.Players = 9 }},
		{"zero turns", func(c *Config) { c.Simulation.Turns = 0 }},
		{"negative trials", func(c *Config) { c.Simulation.Trials = -5 }},
		{"zero workers", func(c *Config) { c.Simulation.Workers = 0 }},
		{"negative house limit", func(c *Config) { c.Rules.HouseLimit = -1 }},
		{"bad data category", func(c *Config) { c.Simulation.Data = "nope" }},
		{"bad refuse group", func(c *Config) { c.Experiment.RefuseGroup = "nope" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestStartingCashFor(t *testing.T) {
	cfg := Default()
	if got := cfg.StartingCashFor(3); got != 1500 {
		t.Errorf("flat starting cash = %d, want 1500", got)
	}
	cfg.Rules.StartingCashList = []int{1000, 2000}
	for seat, want := range []int{1000, 2000, 1000, 2000} {
		if got := cfg.StartingCashFor(seat); got != want {
			t.Errorf("seat %d cash = %d, want %d", seat, got, want)
		}
	}
}
