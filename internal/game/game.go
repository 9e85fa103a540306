// Package game implements the turn state machine and the economic decision
// engine for a single trial: movement, jail and card resolution, the
// buy/build/mortgage/trade policies and bankruptcy liquidation.
package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/carddeck"
	"github.com/lox/monopolysim/internal/config"
	"github.com/lox/monopolysim/internal/datalog"
	"github.com/lox/monopolysim/internal/randutil"
)

// Game holds all mutable state for one trial. State is single-writer by
// construction: turns execute strictly sequentially.
type Game struct {
	cfg     *config.Config
	board   *board.Board
	players []*Player

	chance    *carddeck.Deck
	community *carddeck.Deck

	dice    *rand.Rand
	shuffle *rand.Rand

	logger *log.Logger
	rec    *datalog.Recorder
}

// Result is the outcome of one completed trial. Balances are in seating
// order; a non-positive balance denotes elimination.
type Result struct {
	Names    []string
	Balances []int
	Turns    int // turns simulated before termination or budget exhaustion
}

// New creates a game from an immutable configuration and a trial seed. The
// seed derives two independent random streams: one for dice and card draws,
// one for seating and deck shuffles.
func New(cfg *config.Config, seed int64, logger *log.Logger, rec *datalog.Recorder) (*Game, error) {
	n := cfg.Simulation.Players
	if n < 2 || n > len(playerNames) {
		return nil, fmt.Errorf("number of players must be 2-%d, got %d", len(playerNames), n)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dice, shuffle := randutil.Streams(seed)

	type seatAttrs struct {
		name string
		cash int
	}
	seats := make([]seatAttrs, n)
	for i := 0; i < n; i++ {
		seats[i] = seatAttrs{name: playerNames[i], cash: cfg.StartingCashFor(i)}
	}
	if !cfg.Simulation.NoShuffle {
		shuffle.Shuffle(len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })
	}

	g := &Game{
		cfg:       cfg,
		board:     board.New(cfg.Rules.HouseLimit, cfg.Rules.HotelLimit),
		chance:    carddeck.NewChance(shuffle),
		community: carddeck.NewCommunity(shuffle),
		dice:      dice,
		shuffle:   shuffle,
		logger:    logger,
		rec:       rec,
	}
	for i, s := range seats {
		g.players = append(g.players, &Player{
			Name:   s.name,
			Index:  i,
			Cash:   s.cash,
			policy: g.policyFor(s.name),
		})
	}
	g.recalculate()
	return g, nil
}

// policyFor binds the behaviour settings to a player; the player named "exp"
// gets the experimental overrides.
func (g *Game) policyFor(name string) policy {
	beh := g.cfg.Behaviour
	p := policy{
		cashFloor: beh.CashFloor,
		build: board.BuildPolicy{
			AllowUneven: g.cfg.Rules.AllowUnevenBuild,
			Rand:        g.shuffle,
		},
	}
	switch {
	case beh.BuildRandom:
		p.build.Order = board.OrderRandom
	case beh.BuildCheapestFirst:
		p.build.Order = board.OrderCheapestFirst
	default:
		p.build.Order = board.OrderExpensiveFirst
	}

	if name != "exp" {
		return p
	}
	exp := g.cfg.Experiment
	p.cashFloor = exp.CashFloor
	p.refuseTrade = exp.RefuseTrade
	p.refuseGroup = g.cfg.RefusedGroup()
	p.build.LevelCap = exp.HouseLimit
	p.build.LowRise = exp.BuildLowRise
	if exp.BuildCheapestFirst {
		p.build.Order = board.OrderCheapestFirst
	}
	if exp.BuildExpensiveFirst {
		p.build.Order = board.OrderExpensiveFirst
	}
	return p
}

// Board exposes the board for inspection by tests and reporting.
func (g *Game) Board() *board.Board { return g.board }

// Players exposes the seated players in turn order.
func (g *Game) Players() []*Player { return g.players }

// Run plays the game to termination: at most the configured turn budget, or
// until at most one solvent player remains.
func (g *Game) Run() Result {
	if g.rec.Enabled(datalog.NetWorth) {
		g.recordNetWorth()
	}

	turns := g.cfg.Simulation.Turns
	played := turns
	for i := 0; i < turns; i++ {
		if g.over() {
			g.rec.Record(datalog.LastTurn, strconv.Itoa(i-1))
			played = i
			break
		}
		g.logger.Debug("turn", "n", i+1)
		for _, p := range g.players {
			if g.over() {
				break
			}
			for g.takeTurn(p) {
			}
		}
		if g.rec.Enabled(datalog.NetWorth) {
			g.recordNetWorth()
		}
	}

	res := Result{Turns: played}
	alive := 0
	for _, p := range g.players {
		res.Names = append(res.Names, p.Name)
		res.Balances = append(res.Balances, p.Cash)
		if !p.Bankrupt {
			alive++
		}
	}
	g.rec.Record(datalog.RemainingPlayers, strconv.Itoa(alive))
	return res
}

// over reports whether at most one player remains solvent.
func (g *Game) over() bool {
	alive := 0
	for _, p := range g.players {
		if !p.Bankrupt {
			alive++
		}
	}
	return alive <= 1
}

func (g *Game) recordNetWorth() {
	var sb strings.Builder
	for i, p := range g.players {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(strconv.Itoa(p.NetWorth(g.board)))
	}
	g.rec.Record(datalog.NetWorth, sb.String())
}

// recalculate refreshes monopoly flags and every player's cached wanted,
// offered and build lists. Must run after every ownership or mortgage change;
// stale flags are a correctness bug.
func (g *Game) recalculate() {
	g.board.RecomputeMonopolies()
	for _, p := range g.players {
		p.wanted = g.board.WantedProperties(p.Index)
		p.offered = g.board.OfferedProperties(p.Index)
		p.buildList = g.board.BuildCandidates(p.Index, p.policy.build)
	}
}
