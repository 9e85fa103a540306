// Package simulator drives many independent game trials and aggregates their
// outcomes. Each trial derives its own seed from the master seed, so a run is
// reproducible regardless of worker count.
package simulator

import (
	"bytes"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/monopolysim/internal/config"
	"github.com/lox/monopolysim/internal/datalog"
	"github.com/lox/monopolysim/internal/game"
	"github.com/lox/monopolysim/internal/statistics"
)

// Config holds configuration for a simulation run.
type Config struct {
	Trials  int
	Seed    int64
	Workers int

	Game   *config.Config
	Logger *log.Logger
	Clock  quartz.Clock

	// Progress, when set, is called once per completed trial with the count
	// of trials finished so far. With multiple workers the calls may arrive
	// concurrently and out of order.
	Progress func(done, total int)

	// DataWriter receives the selected raw data stream, in trial order.
	DataWriter io.Writer
}

// Simulator runs game trials.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(cfg Config) *Simulator {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Simulator{config: cfg}
}

// Run executes every trial and returns the aggregated statistics.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	stats := statistics.New()
	start := s.config.Clock.Now()

	var err error
	if s.config.Workers > 1 {
		err = s.runParallel(stats)
	} else {
		err = s.runSequential(stats)
	}
	if err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	rate := float64(s.config.Trials) / elapsed.Seconds()
	s.config.Logger.Info("simulation complete",
		"trials", s.config.Trials, "elapsed", elapsed, "trials/sec", fmt.Sprintf("%.1f", rate))
	return stats, nil
}

func (s *Simulator) runSequential(stats *statistics.Statistics) error {
	rec := newRecorder(s.config.Game, s.config.DataWriter)
	for trial := 0; trial < s.config.Trials; trial++ {
		g, err := game.New(s.config.Game, s.trialSeed(trial), s.config.Logger, rec)
		if err != nil {
			return fmt.Errorf("trial %d: %w", trial, err)
		}
		res := g.Run()
		if err := stats.Add(statistics.TrialResult(res)); err != nil {
			return fmt.Errorf("trial %d: %w", trial, err)
		}
		if s.config.Progress != nil {
			s.config.Progress(trial+1, s.config.Trials)
		}
	}
	return nil
}

// runParallel fans trials out over a bounded worker pool. Each trial records
// its data stream into a private buffer; results and buffers are folded in
// trial order afterwards so output matches a sequential run byte for byte.
func (s *Simulator) runParallel(stats *statistics.Statistics) error {
	results := make([]game.Result, s.config.Trials)
	buffers := make([]bytes.Buffer, s.config.Trials)

	var completed atomic.Int64
	var eg errgroup.Group
	eg.SetLimit(s.config.Workers)
	for trial := 0; trial < s.config.Trials; trial++ {
		eg.Go(func() error {
			rec := newRecorder(s.config.Game, &buffers[trial])
			g, err := game.New(s.config.Game, s.trialSeed(trial), s.config.Logger, rec)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			results[trial] = g.Run()
			if s.config.Progress != nil {
				s.config.Progress(int(completed.Add(1)), s.config.Trials)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for trial := range results {
		if err := stats.Add(statistics.TrialResult(results[trial])); err != nil {
			return fmt.Errorf("trial %d: %w", trial, err)
		}
		if s.config.DataWriter != nil && buffers[trial].Len() > 0 {
			if _, err := s.config.DataWriter.Write(buffers[trial].Bytes()); err != nil {
				return fmt.Errorf("writing data stream: %w", err)
			}
		}
	}
	return nil
}

func (s *Simulator) trialSeed(trial int) int64 {
	return s.config.Seed + int64(trial)
}

func newRecorder(cfg *config.Config, w io.Writer) *datalog.Recorder {
	return datalog.NewRecorder(cfg.DataCategory(), w)
}
