package game

import (
	"fmt"

	"github.com/lox/monopolysim/internal/board"
)

// playerNames supplies the fixed roster. The first name is the experimental
// profile; the rest form the control group.
var playerNames = [...]string{"exp", "blue", "green", "red", "yellow", "white", "purple", "orange"}

// mortgage is one outstanding mortgage debt: the mortgaged property and the
// price to redeem it (1.1x half the base cost, truncated).
type mortgage struct {
	pos    int
	redeem int
}

// policy is a player's fixed decision profile for the whole game.
type policy struct {
	cashFloor   int
	refuseTrade bool
	refuseGroup board.Group
	build       board.BuildPolicy
}

// Player is the mutable per-participant state. Index is the player's seat in
// turn order and the value stored in board.Property.Owner.
type Player struct {
	Name  string
	Index int

	Cash     int
	Position int

	InJail             bool
	DaysInJail         int
	ConsecutiveDoubles int
	JailCardChance     bool
	JailCardCommunity  bool

	Bankrupt bool

	mortgages []mortgage
	dice      [2]int

	// Cached decision lists, recomputed after every ownership change. Never
	// authoritative: always derivable from board state.
	wanted    []int
	offered   []int
	buildList []board.BuildCandidate

	policy policy
}

func (p *Player) String() string {
	return fmt.Sprintf("player %s: position %d, cash $%d", p.Name, p.Position, p.Cash)
}

// NetWorth is the player's cash plus the liquidation-equivalent value of all
// holdings. Used for the percent-of-worth tax and the net-worth data stream.
func (p *Player) NetWorth(b *board.Board) int {
	return p.Cash + b.OwnedValue(p.Index)
}

// cheapestMortgage returns the index into p.mortgages of the cheapest
// outstanding redemption, or -1 when none exist. Ties keep the oldest entry.
func (p *Player) cheapestMortgage() int {
	best := -1
	for i, m := range p.mortgages {
		if best < 0 || m.redeem < p.mortgages[best].redeem {
			best = i
		}
	}
	return best
}

// enterJail puts the player in jail. Entering jail by any route clears the
// doubles streak.
func (p *Player) enterJail() {
	p.Position = board.JailPos
	p.InJail = true
	p.ConsecutiveDoubles = 0
}

func (p *Player) diceTotal() int { return p.dice[0] + p.dice[1] }
