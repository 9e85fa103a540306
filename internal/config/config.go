// Package config holds the immutable run configuration: game rules, player
// behaviour, the experimental player profile and simulation parameters. A
// single value is constructed at startup and passed by reference into the
// board, game and simulator constructors; nothing mutates it afterwards.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/datalog"
)

// Config is the complete run configuration.
type Config struct {
	Simulation Simulation `hcl:"simulation,block"`
	Rules      Rules      `hcl:"rules,block"`
	Behaviour  Behaviour  `hcl:"behaviour,block"`
	Experiment Experiment `hcl:"experiment,block"`
}

// Simulation controls the multi-trial driver.
type Simulation struct {
	Players   int    `hcl:"players,optional"`
	Turns     int    `hcl:"turns,optional"`
	Trials    int    `hcl:"trials,optional"`
	Seed      int64  `hcl:"seed,optional"`
	Workers   int    `hcl:"workers,optional"`
	NoShuffle bool   `hcl:"no_shuffle,optional"` // keep fixed seating order
	Data      string `hcl:"data,optional"`       // datalog category, "" disables
}

// Rules are the economic rules of the game itself.
type Rules struct {
	StartingCash     int   `hcl:"starting_cash,optional"`
	StartingCashList []int `hcl:"starting_cash_list,optional"` // per seat, cycled; overrides StartingCash
	Salary           int   `hcl:"salary,optional"`
	LuxuryTax        int   `hcl:"luxury_tax,optional"`
	PropertyTaxCap   int   `hcl:"property_tax_cap,optional"`
	JailFine         int   `hcl:"jail_fine,optional"`
	HouseLimit       int   `hcl:"house_limit,optional"`
	HotelLimit       int   `hcl:"hotel_limit,optional"`
	AllowUnevenBuild bool  `hcl:"allow_uneven_build,optional"`
}

// Behaviour is the shared money-management policy of ordinary players.
// Boolean options are named so the zero value is the standard behaviour.
type Behaviour struct {
	CashFloor          int  `hcl:"cash_floor,optional"`
	UnmortgageCoeff    int  `hcl:"unmortgage_coeff,optional"` // redeem when cash > redemption x coeff
	DisableTrading     bool `hcl:"disable_trading,optional"`
	DisableThreeWay    bool `hcl:"disable_three_way,optional"`
	BuildCheapestFirst bool `hcl:"build_cheapest_first,optional"`
	BuildRandom        bool `hcl:"build_random,optional"`
}

// Experiment overrides behaviour for the player named "exp". It exists so a
// single deviant strategy can be measured against a uniform control group.
type Experiment struct {
	RefuseTrade         bool   `hcl:"refuse_trade,optional"`
	RefuseGroup         string `hcl:"refuse_group,optional"` // never buy this group
	HouseLimit          int    `hcl:"house_limit,optional"`  // per-property improvement cap, 0 = none
	CashFloor           int    `hcl:"cash_floor,optional"`
	BuildCheapestFirst  bool   `hcl:"build_cheapest_first,optional"`
	BuildExpensiveFirst bool   `hcl:"build_expensive_first,optional"`
	BuildLowRise        bool   `hcl:"build_low_rise,optional"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Simulation: Simulation{
			Players: 4,
			Turns:   1000,
			Trials:  1000,
			Workers: 1,
		},
		Rules: Rules{
			StartingCash:   1500,
			Salary:         200,
			LuxuryTax:      75,
			PropertyTaxCap: 200,
			JailFine:       50,
			HouseLimit:     32,
			HotelLimit:     12,
		},
		Behaviour: Behaviour{
			UnmortgageCoeff: 3,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults for a
// missing file and for any omitted option.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Blocks are optional in the file; decode through pointers and keep the
	// zero value for anything omitted.
	var raw struct {
		Simulation *Simulation `hcl:"simulation,block"`
		Rules      *Rules      `hcl:"rules,block"`
		Behaviour  *Behaviour  `hcl:"behaviour,block"`
		Experiment *Experiment `hcl:"experiment,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var cfg Config
	if raw.Simulation != nil {
		cfg.Simulation = *raw.Simulation
	}
	if raw.Rules != nil {
		cfg.Rules = *raw.Rules
	}
	if raw.Behaviour != nil {
		cfg.Behaviour = *raw.Behaviour
	}
	if raw.Experiment != nil {
		cfg.Experiment = *raw.Experiment
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Simulation.Players == 0 {
		cfg.Simulation.Players = def.Simulation.Players
	}
	if cfg.Simulation.Turns == 0 {
		cfg.Simulation.Turns = def.Simulation.Turns
	}
	if cfg.Simulation.Trials == 0 {
		cfg.Simulation.Trials = def.Simulation.Trials
	}
	if cfg.Simulation.Workers == 0 {
		cfg.Simulation.Workers = def.Simulation.Workers
	}
	if cfg.Rules.StartingCash == 0 {
		cfg.Rules.StartingCash = def.Rules.StartingCash
	}
	if cfg.Rules.Salary == 0 {
		cfg.Rules.Salary = def.Rules.Salary
	}
	if cfg.Rules.LuxuryTax == 0 {
		cfg.Rules.LuxuryTax = def.Rules.LuxuryTax
	}
	if cfg.Rules.PropertyTaxCap == 0 {
		cfg.Rules.PropertyTaxCap = def.Rules.PropertyTaxCap
	}
	if cfg.Rules.JailFine == 0 {
		cfg.Rules.JailFine = def.Rules.JailFine
	}
	if cfg.Rules.HouseLimit == 0 {
		cfg.Rules.HouseLimit = def.Rules.HouseLimit
	}
	if cfg.Rules.HotelLimit == 0 {
		cfg.Rules.HotelLimit = def.Rules.HotelLimit
	}
	if cfg.Behaviour.UnmortgageCoeff == 0 {
		cfg.Behaviour.UnmortgageCoeff = def.Behaviour.UnmortgageCoeff
	}
}

// Validate fails fast on configuration no game can run with.
func (c *Config) Validate() error {
	if c.Simulation.Players < 2 || c.Simulation.Players > 8 {
		return fmt.Errorf("players must be 2-8, got %d", c.Simulation.Players)
	}
	if c.Simulation.Turns <= 0 {
		return fmt.Errorf("turns must be positive, got %d", c.Simulation.Turns)
	}
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Simulation.Workers)
	}
	if c.Rules.HouseLimit < 0 || c.Rules.HotelLimit < 0 {
		return fmt.Errorf("building limits must not be negative")
	}
	if c.Behaviour.UnmortgageCoeff <= 0 {
		return fmt.Errorf("unmortgage_coeff must be positive, got %d", c.Behaviour.UnmortgageCoeff)
	}
	if _, err := datalog.ParseCategory(c.Simulation.Data); err != nil {
		return err
	}
	if _, err := board.ParseGroup(c.Experiment.RefuseGroup); err != nil {
		return err
	}
	return nil
}

// DataCategory returns the parsed datalog category. Validate must have
// succeeded first.
func (c *Config) DataCategory() datalog.Category {
	cat, _ := datalog.ParseCategory(c.Simulation.Data)
	return cat
}

// RefusedGroup returns the property group the experimental player refuses to
// buy, or board.GroupNone. Validate must have succeeded first.
func (c *Config) RefusedGroup() board.Group {
	g, _ := board.ParseGroup(c.Experiment.RefuseGroup)
	return g
}

// StartingCashFor returns the starting cash for the given seat, cycling the
// per-seat list when one is configured.
func (c *Config) StartingCashFor(seat int) int {
	if len(c.Rules.StartingCashList) > 0 {
		return c.Rules.StartingCashList[seat%len(c.Rules.StartingCashList)]
	}
	return c.Rules.StartingCash
}
