// Package statistics aggregates trial results and derives survival rates with
// confidence margins, including the experimental-versus-control comparison.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TrialResult is one completed game's outcome. A non-positive balance marks
// an eliminated player.
type TrialResult struct {
	Names    []string
	Balances []int
	Turns    int
}

// Statistics accumulates results across trials. Not safe for concurrent use;
// the simulator adds results from a single goroutine.
type Statistics struct {
	trials int

	survivorCounts map[int]int    // survivors per game -> games
	lossesByName   map[string]int // player name -> games lost
	gamesByName    map[string]int // player name -> games seated

	turnsTotal int
	turnsMin   int
	turnsMax   int
}

// New creates an empty accumulator.
func New() *Statistics {
	return &Statistics{
		survivorCounts: make(map[int]int),
		lossesByName:   make(map[string]int),
		gamesByName:    make(map[string]int),
	}
}

// Add folds one trial into the totals.
func (s *Statistics) Add(r TrialResult) error {
	if len(r.Names) != len(r.Balances) {
		return fmt.Errorf("mismatched result: %d names, %d balances", len(r.Names), len(r.Balances))
	}
	survivors := 0
	for i, bal := range r.Balances {
		s.gamesByName[r.Names[i]]++
		if bal > 0 {
			survivors++
		} else {
			s.lossesByName[r.Names[i]]++
		}
	}
	s.survivorCounts[survivors]++

	if s.trials == 0 || r.Turns < s.turnsMin {
		s.turnsMin = r.Turns
	}
	if r.Turns > s.turnsMax {
		s.turnsMax = r.Turns
	}
	s.turnsTotal += r.Turns
	s.trials++
	return nil
}

// Trials returns the number of results added.
func (s *Statistics) Trials() int { return s.trials }

// SurvivorHistogram returns (survivor count, games) pairs in ascending order.
func (s *Statistics) SurvivorHistogram() [][2]int {
	var out [][2]int
	for k, v := range s.survivorCounts {
		out = append(out, [2]int{k, v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// Names returns every player name seen, sorted.
func (s *Statistics) Names() []string {
	var out []string
	for name := range s.gamesByName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SurvivalRate returns a player's fraction of games survived and the 95%
// confidence margin of that estimate.
func (s *Statistics) SurvivalRate(name string) (rate, margin float64) {
	n := s.gamesByName[name]
	if n == 0 {
		return 0, 0
	}
	rate = 1 - float64(s.lossesByName[name])/float64(n)
	margin = 1.96 * math.Sqrt(rate*(1-rate)/float64(n))
	return rate, margin
}

// ExperimentDelta returns the experimental player's survival rate minus the
// mean control rate. Zero when the experimental player never played.
func (s *Statistics) ExperimentDelta(experimental string) float64 {
	if s.gamesByName[experimental] == 0 {
		return 0
	}
	expRate, _ := s.SurvivalRate(experimental)
	controlSum, controls := 0.0, 0
	for name := range s.gamesByName {
		if name == experimental {
			continue
		}
		r, _ := s.SurvivalRate(name)
		controlSum += r
		controls++
	}
	if controls == 0 {
		return 0
	}
	return expRate - controlSum/float64(controls)
}

// TurnsMean returns the average game length in turns.
func (s *Statistics) TurnsMean() float64 {
	if s.trials == 0 {
		return 0
	}
	return float64(s.turnsTotal) / float64(s.trials)
}

// TurnsMin returns the shortest game seen.
func (s *Statistics) TurnsMin() int { return s.turnsMin }

// TurnsMax returns the longest game seen.
func (s *Statistics) TurnsMax() int { return s.turnsMax }

// Validate checks internal consistency of the accumulated counts.
func (s *Statistics) Validate() error {
	games := 0
	for _, v := range s.survivorCounts {
		games += v
	}
	if games != s.trials {
		return fmt.Errorf("survivor histogram covers %d games, expected %d", games, s.trials)
	}
	for name, losses := range s.lossesByName {
		if losses > s.gamesByName[name] {
			return fmt.Errorf("player %s lost %d of %d games", name, losses, s.gamesByName[name])
		}
	}
	return nil
}
