package board

import (
	rand "math/rand/v2"
	"sort"
)

// NumCells is the fixed size of the board.
const NumCells = 40

// JailPos is the cell players are sent to when jailed.
const JailPos = 10

const railroadRentPerOwned = 25

// Board owns the cell/property set for one game plus the global building
// supply counters. It never holds references to players; owners are indices
// the game layer resolves.
type Board struct {
	cells [NumCells]Cell

	houses     int
	hotels     int
	houseLimit int
	hotelLimit int
}

// New creates a board with the standard layout and the given building supply
// caps.
func New(houseLimit, hotelLimit int) *Board {
	return &Board{
		cells:      newCells(),
		houseLimit: houseLimit,
		hotelLimit: hotelLimit,
	}
}

// Cell returns the cell at pos.
func (b *Board) Cell(pos int) *Cell { return &b.cells[pos] }

// Property returns the property at pos, or nil if the cell is not purchasable.
func (b *Board) Property(pos int) *Property { return b.cells[pos].Prop }

// EachProperty calls fn for every property in board order.
func (b *Board) EachProperty(fn func(p *Property)) {
	for i := range b.cells {
		if p := b.cells[i].Prop; p != nil {
			fn(p)
		}
	}
}

// HousesBuilt reports the number of houses currently standing.
func (b *Board) HousesBuilt() int { return b.houses }

// HotelsBuilt reports the number of hotels currently standing.
func (b *Board) HotelsBuilt() int { return b.hotels }

// Rent computes what landing on pos costs, without side effects. chanceBoost
// is set by the nearest-railroad/nearest-utility Chance cards and doubles the
// railroad rent or forces the 10x utility multiplier.
func (b *Board) Rent(pos, diceTotal int, chanceBoost bool) int {
	p := b.Property(pos)
	if p == nil {
		return 0
	}
	switch p.Group {
	case Utility:
		if p.Monopoly || chanceBoost {
			return diceTotal * 10
		}
		return diceTotal * 4
	case Railroad:
		rent := railroadRentPerOwned * b.railroadsOwned(p.Owner)
		if chanceBoost {
			rent *= 2
		}
		return rent
	default:
		if p.Houses > 0 {
			return p.RentHouse[p.Houses-1]
		}
		if p.Monopoly {
			return 2 * p.RentBase
		}
		return p.RentBase
	}
}

func (b *Board) railroadsOwned(owner int) int {
	if owner == NoOwner {
		return 0
	}
	count := 0
	b.EachProperty(func(p *Property) {
		if p.Group == Railroad && p.Owner == owner {
			count++
		}
	})
	return count
}

// RecomputeMonopolies refreshes the Monopoly flag on every property: a group
// is a monopoly iff a single owner holds every member. Must run after every
// ownership change before the next rent or build decision.
func (b *Board) RecomputeMonopolies() {
	owners := make(map[Group]int)
	b.EachProperty(func(p *Property) {
		if p.Owner == NoOwner {
			owners[p.Group] = NoOwner
			return
		}
		if prev, seen := owners[p.Group]; seen {
			if prev != p.Owner {
				owners[p.Group] = NoOwner
			}
		} else {
			owners[p.Group] = p.Owner
		}
	})
	b.EachProperty(func(p *Property) {
		p.Monopoly = owners[p.Group] != NoOwner
	})
}

// HasMonopoly reports whether any completed monopoly exists on the board.
func (b *Board) HasMonopoly() bool {
	found := false
	b.EachProperty(func(p *Property) {
		if p.Monopoly {
			found = true
		}
	})
	return found
}

// GroupShare returns the fraction of the group's members owned by owner.
func (b *Board) GroupShare(g Group, owner int) float64 {
	total, owned := 0, 0
	b.EachProperty(func(p *Property) {
		if p.Group != g {
			return
		}
		total++
		if p.Owner == owner {
			owned++
		}
	})
	if total == 0 {
		return 0
	}
	return float64(owned) / float64(total)
}

// OwnedValue returns the liquidation-equivalent value of owner's holdings:
// half base cost for mortgaged properties, base cost plus building cost for
// the rest. Net worth is this plus cash.
func (b *Board) OwnedValue(owner int) int {
	worth := 0
	b.EachProperty(func(p *Property) {
		if p.Owner != owner {
			return
		}
		if p.Mortgaged {
			worth += p.CostBase / 2
		} else {
			worth += p.CostBase + p.CostHouse*p.Houses
		}
	})
	return worth
}

// LiquidationTarget picks the asset a distressed owner should part with next:
// the property with the lowest group-ownership share, most-improved first on
// ties. Returns false when nothing unmortgaged remains.
func (b *Board) LiquidationTarget(owner int) (int, bool) {
	type asset struct {
		pos    int
		share  float64
		houses int
	}
	var owned []asset
	b.EachProperty(func(p *Property) {
		if p.Owner == owner && !p.Mortgaged {
			owned = append(owned, asset{p.Pos, b.GroupShare(p.Group, owner), p.Houses})
		}
	})
	if len(owned) == 0 {
		return 0, false
	}
	sort.SliceStable(owned, func(i, j int) bool {
		if owned[i].share != owned[j].share {
			return owned[i].share < owned[j].share
		}
		return owned[i].houses > owned[j].houses
	})
	return owned[0].pos, true
}

// Downgrade applies one liquidation step to the property at pos and returns
// the cash raised and whether the step was a mortgage (the caller records the
// redemption debt). A hotel sells for 2.5x the building cost, a house for
// half, an unimproved property mortgages for half its base cost.
func (b *Board) Downgrade(pos int) (proceeds int, mortgaged bool) {
	p := b.Property(pos)
	switch {
	case p.Houses == HotelLevel:
		p.Houses = 0
		b.hotels--
		return p.CostHouse * 5 / 2, false
	case p.Houses > 0:
		p.Houses--
		b.houses--
		return p.CostHouse / 2, false
	default:
		p.Mortgaged = true
		return p.CostBase / 2, true
	}
}

// ReleaseAll returns every property owned by owner to the open market,
// clearing ownership and mortgage state. Used on bankruptcy; by then all
// buildings have already been liquidated.
func (b *Board) ReleaseAll(owner int) {
	b.EachProperty(func(p *Property) {
		if p.Owner == owner {
			p.Owner = NoOwner
			p.Mortgaged = false
		}
	})
}

// Improve adds one building to the property at pos, enforcing the global
// supply caps. A hotel consumes a hotel slot and returns four houses to the
// supply. Reports whether the build happened and whether it was a hotel.
func (b *Board) Improve(pos int) (hotel, ok bool) {
	p := b.Property(pos)
	hotel = p.Houses == HotelLevel-1
	if hotel {
		if b.hotels == b.hotelLimit {
			return hotel, false
		}
	} else if b.houses == b.houseLimit {
		return hotel, false
	}
	p.Houses++
	if hotel {
		b.hotels++
		b.houses -= 4
	} else {
		b.houses++
	}
	return hotel, true
}

// BuildOrder selects which affordable candidate a player improves first.
type BuildOrder int

const (
	// OrderExpensiveFirst prefers the priciest affordable building (default).
	OrderExpensiveFirst BuildOrder = iota
	// OrderCheapestFirst prefers the cheapest affordable building.
	OrderCheapestFirst
	// OrderRandom shuffles the candidates.
	OrderRandom
)

// BuildPolicy tunes how build candidates are selected and ordered for one
// player.
type BuildPolicy struct {
	Order       BuildOrder
	AllowUneven bool // drop the uniform-development rule
	LevelCap    int  // experimental per-property improvement cap, 0 = none
	LowRise     bool // experimental: only build where fewer than 3 houses stand
	Rand        *rand.Rand
}

// BuildCandidate is one property a player could improve next.
type BuildCandidate struct {
	Pos       int
	Group     Group
	Houses    int
	CostHouse int
	CostBase  int
}

// BuildCandidates lists the properties owner may improve, ordered so that the
// preferred candidate sorts last (callers scan from the end for the first
// affordable entry). Eligible properties sit in a completed non-railroad,
// non-utility monopoly with no mortgaged group member, below the hotel level,
// and - unless uneven development is allowed - at the minimum improvement
// level within their group.
func (b *Board) BuildCandidates(owner int, pol BuildPolicy) []BuildCandidate {
	var out []BuildCandidate
	minInGroup := make(map[Group]int)
	mortgagedGroup := make(map[Group]bool)
	b.EachProperty(func(p *Property) {
		if p.Owner == owner && p.Mortgaged {
			mortgagedGroup[p.Group] = true
		}
	})
	b.EachProperty(func(p *Property) {
		if p.Owner != owner || !p.Monopoly || p.Group == Railroad || p.Group == Utility {
			return
		}
		if p.Houses >= HotelLevel || p.Mortgaged || mortgagedGroup[p.Group] {
			return
		}
		if pol.LevelCap > 0 && p.Houses >= pol.LevelCap {
			return
		}
		out = append(out, BuildCandidate{
			Pos:       p.Pos,
			Group:     p.Group,
			Houses:    p.Houses,
			CostHouse: p.CostHouse,
			CostBase:  p.CostBase,
		})
		if min, seen := minInGroup[p.Group]; !seen || p.Houses < min {
			minInGroup[p.Group] = p.Houses
		}
	})
	if len(out) == 0 {
		return nil
	}

	if !pol.AllowUneven {
		kept := out[:0]
		for _, c := range out {
			if c.Houses == minInGroup[c.Group] {
				kept = append(kept, c)
			}
		}
		out = kept
	}

	switch pol.Order {
	case OrderRandom:
		if pol.Rand != nil {
			pol.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		}
	case OrderCheapestFirst:
		// Descending so the reverse scan hits the cheapest first.
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].CostHouse != out[j].CostHouse {
				return out[i].CostHouse > out[j].CostHouse
			}
			return out[i].CostBase > out[j].CostBase
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].CostHouse != out[j].CostHouse {
				return out[i].CostHouse < out[j].CostHouse
			}
			return out[i].CostBase < out[j].CostBase
		})
	}

	if pol.LowRise {
		hasLow := false
		for _, c := range out {
			if c.Houses < 3 {
				hasLow = true
			}
		}
		if hasLow {
			kept := out[:0]
			for _, c := range out {
				if c.Houses < 3 {
					kept = append(kept, c)
				}
			}
			out = kept
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Houses != out[j].Houses {
				return out[i].Houses < out[j].Houses
			}
			if out[i].CostHouse != out[j].CostHouse {
				return out[i].CostHouse < out[j].CostHouse
			}
			return out[i].CostBase < out[j].CostBase
		})
	}
	return out
}

// WantedProperties lists the positions owner would trade for: members of any
// non-utility group where owner holds all but one member, that owner does not
// hold. Unowned members count as wanted too; trade matching skips them.
func (b *Board) WantedProperties(owner int) []int {
	type tally struct{ total, owned int }
	groups := make(map[Group]*tally)
	b.EachProperty(func(p *Property) {
		t := groups[p.Group]
		if t == nil {
			t = &tally{}
			groups[p.Group] = t
		}
		t.total++
		if p.Owner == owner {
			t.owned++
		}
	})
	var wanted []int
	b.EachProperty(func(p *Property) {
		if p.Group == Utility || p.Owner == owner {
			return
		}
		if t := groups[p.Group]; t.total-t.owned == 1 {
			wanted = append(wanted, p.Pos)
		}
	})
	sort.Ints(wanted)
	return wanted
}

// OfferedProperties lists the positions owner would give up in a trade: the
// single unmortgaged holding in any non-utility group where owner holds
// exactly one member.
func (b *Board) OfferedProperties(owner int) []int {
	counts := make(map[Group]int)
	b.EachProperty(func(p *Property) {
		if p.Owner == owner {
			counts[p.Group]++
		}
	})
	var offered []int
	b.EachProperty(func(p *Property) {
		if p.Group == Utility || p.Owner != owner || p.Mortgaged {
			return
		}
		if counts[p.Group] == 1 {
			offered = append(offered, p.Pos)
		}
	})
	sort.Ints(offered)
	return offered
}
