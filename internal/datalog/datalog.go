// Package datalog emits the raw per-trial data stream consumed by external
// aggregation and plotting tools. One category is selected per run; each
// record is a plain text line.
package datalog

import (
	"fmt"
	"io"
)

// Category selects which raw data a run records.
type Category string

const (
	// None disables the data stream.
	None Category = ""
	// PopularCells records the cell index a player occupies at the start of
	// each of their moves, plus one final record when they go bankrupt.
	PopularCells Category = "popular_cells"
	// LosersNames records the name of each player that goes bankrupt.
	LosersNames Category = "losers_names"
	// LastTurn records the turn number at which each game ended.
	LastTurn Category = "last_turn"
	// NetWorth records one tab-separated net-worth snapshot per turn, one
	// column per player, plus a pre-game snapshot.
	NetWorth Category = "net_worth"
	// RemainingPlayers records how many players ended each game solvent.
	RemainingPlayers Category = "remaining_players"
)

// Categories lists every selectable category.
var Categories = []Category{PopularCells, LosersNames, LastTurn, NetWorth, RemainingPlayers}

// ParseCategory resolves a configured category name. The empty string selects
// no data stream; anything else unknown is a configuration error.
func ParseCategory(s string) (Category, error) {
	if s == "" || s == "none" {
		return None, nil
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return None, fmt.Errorf("unknown data category %q", s)
}

// Recorder appends lines for a single category to a writer. A nil Recorder
// discards everything, so game code can record unconditionally.
type Recorder struct {
	category Category
	w        io.Writer
}

// NewRecorder creates a recorder for the given category. Returns nil when the
// category is None or the writer is nil, which disables recording.
func NewRecorder(c Category, w io.Writer) *Recorder {
	if c == None || w == nil {
		return nil
	}
	return &Recorder{category: c, w: w}
}

// Enabled reports whether records of category c will be written.
func (r *Recorder) Enabled(c Category) bool {
	return r != nil && r.category == c
}

// Record writes one line if c matches the recorder's category.
func (r *Recorder) Record(c Category, line string) {
	if !r.Enabled(c) {
		return
	}
	fmt.Fprintln(r.w, line)
}
