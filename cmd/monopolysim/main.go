package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/monopolysim/internal/config"
	"github.com/lox/monopolysim/internal/simulator"
	"github.com/lox/monopolysim/internal/statistics"
)

type CLI struct {
	Config   string `help:"HCL configuration file" type:"path"`
	Trials   int    `default:"0" help:"Number of games to simulate (overrides config)"`
	Turns    int    `default:"0" help:"Turn budget per game (overrides config)"`
	Players  int    `default:"0" help:"Number of players (overrides config)"`
	Workers  int    `default:"0" help:"Parallel workers (overrides config)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Data     string `help:"Raw data category to record: popular_cells, losers_names, last_turn, net_worth, remaining_players"`
	DataFile string `default:"data.txt" help:"File the raw data stream is written to"`
	LogFile  string `help:"Write a debug log of every game event to this file"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("monopolysim"),
		kong.Description("Property trading game simulator for strategy experiments"))

	if err := run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.Trials > 0 {
		cfg.Simulation.Trials = cli.Trials
	}
	if cli.Turns > 0 {
		cfg.Simulation.Turns = cli.Turns
	}
	if cli.Players > 0 {
		cfg.Simulation.Players = cli.Players
	}
	if cli.Workers > 0 {
		cfg.Simulation.Workers = cli.Workers
	}
	if cli.Data != "" {
		cfg.Simulation.Data = cli.Data
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cli.Seed
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	// A log file captures every game event regardless of terminal verbosity.
	if cli.LogFile != "" {
		f, err := os.Create(cli.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{Level: log.DebugLevel})
	}

	var dataWriter *os.File
	if cfg.DataCategory() != "" {
		dataWriter, err = os.Create(cli.DataFile)
		if err != nil {
			return fmt.Errorf("opening data file: %w", err)
		}
		defer dataWriter.Close()
	}

	fmt.Printf("Simulating %d games of %d players, %d turns each (seed %d)\n",
		cfg.Simulation.Trials, cfg.Simulation.Players, cfg.Simulation.Turns, seed)

	progress := newProgressPrinter()
	simCfg := simulator.Config{
		Trials:   cfg.Simulation.Trials,
		Seed:     seed,
		Workers:  cfg.Simulation.Workers,
		Game:     cfg,
		Logger:   logger,
		Progress: progress.update,
	}
	if dataWriter != nil {
		simCfg.DataWriter = dataWriter
	}

	stats, err := simulator.New(simCfg).Run()
	if err != nil {
		return err
	}

	printResults(stats)
	return nil
}

func printResults(stats *statistics.Statistics) {
	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("Games played: %d\n", stats.Trials())
	fmt.Printf("Game length: mean %.1f turns, min %d, max %d\n",
		stats.TurnsMean(), stats.TurnsMin(), stats.TurnsMax())

	fmt.Printf("\nSurvivors per game:\n")
	for _, row := range stats.SurvivorHistogram() {
		fmt.Printf("  %d survived: %d games\n", row[0], row[1])
	}

	fmt.Printf("\nSurvival rate by player:\n")
	for _, name := range stats.Names() {
		rate, margin := stats.SurvivalRate(name)
		fmt.Printf("  %-8s %.3f +/- %.3f\n", name, rate, margin)
	}

	if delta := stats.ExperimentDelta("exp"); delta != 0 {
		fmt.Printf("\nExperiment delta vs control mean: %+.3f\n", delta)
	}
}
