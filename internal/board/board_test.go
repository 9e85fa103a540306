package board

import (
	"testing"

	"github.com/lox/monopolysim/internal/randutil"
)

func newTestBoard() *Board {
	return New(32, 12)
}

// claimGroup assigns every member of a group to owner and refreshes flags.
func claimGroup(b *Board, g Group, owner int) {
	b.EachProperty(func(p *Property) {
		if p.Group == g {
			p.Owner = owner
		}
	})
	b.RecomputeMonopolies()
}

func TestLayout(t *testing.T) {
	b := newTestBoard()
	if b.Cell(0).Kind != KindGo {
		t.Errorf("cell 0 should be Go, got %v", b.Cell(0).Kind)
	}
	if b.Cell(JailPos).Kind != KindJail {
		t.Errorf("cell %d should be Jail, got %v", JailPos, b.Cell(JailPos).Kind)
	}
	if b.Cell(30).Kind != KindGoToJail {
		t.Errorf("cell 30 should be Go To Jail, got %v", b.Cell(30).Kind)
	}
	props := 0
	b.EachProperty(func(p *Property) {
		props++
		if p.Owner != NoOwner {
			t.Errorf("property %d should start unowned", p.Pos)
		}
	})
	if props != 28 {
		t.Errorf("expected 28 purchasable cells, got %d", props)
	}
}

func TestRentUnimproved(t *testing.T) {
	b := newTestBoard()
	p := b.Property(1)
	p.Owner = 0
	b.RecomputeMonopolies()
	if got := b.Rent(1, 7, false); got != p.RentBase {
		t.Errorf("partial group rent = %d, want %d", got, p.RentBase)
	}
}

func TestRentMonopolyDoubles(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	p := b.Property(1)
	if got := b.Rent(1, 7, false); got != 2*p.RentBase {
		t.Errorf("monopoly rent = %d, want %d", got, 2*p.RentBase)
	}
}

func TestRentWithHouses(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	p := b.Property(1)
	p.Houses = 3
	if got := b.Rent(1, 7, false); got != p.RentHouse[2] {
		t.Errorf("3-house rent = %d, want %d", got, p.RentHouse[2])
	}
}

func TestRentRailroads(t *testing.T) {
	b := newTestBoard()
	b.Property(5).Owner = 0
	b.Property(15).Owner = 0
	b.RecomputeMonopolies()
	if got := b.Rent(5, 7, false); got != 50 {
		t.Errorf("two railroads rent = %d, want 50", got)
	}
	if got := b.Rent(5, 7, true); got != 100 {
		t.Errorf("boosted railroad rent = %d, want 100", got)
	}
}

func TestRentUtilities(t *testing.T) {
	b := newTestBoard()
	b.Property(12).Owner = 0
	b.RecomputeMonopolies()
	if got := b.Rent(12, 7, false); got != 28 {
		t.Errorf("single utility rent = %d, want 28", got)
	}
	if got := b.Rent(12, 7, true); got != 70 {
		t.Errorf("boosted utility rent = %d, want 70", got)
	}
	b.Property(28).Owner = 0
	b.RecomputeMonopolies()
	if got := b.Rent(12, 7, false); got != 70 {
		t.Errorf("both utilities rent = %d, want 70", got)
	}
}

func TestRecomputeMonopoliesIdempotent(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, LightBlue, 1)
	b.Property(6).Owner = 2
	b.RecomputeMonopolies()
	b.RecomputeMonopolies()
	if b.Property(6).Monopoly {
		t.Error("split group must not be a monopoly")
	}
	claimGroup(b, LightBlue, 1)
	if !b.Property(6).Monopoly {
		t.Error("complete group must be a monopoly")
	}
}

func TestImproveSupplyCaps(t *testing.T) {
	b := New(2, 1)
	claimGroup(b, Brown, 0)
	if _, ok := b.Improve(1); !ok {
		t.Fatal("first house should build")
	}
	if _, ok := b.Improve(3); !ok {
		t.Fatal("second house should build")
	}
	if _, ok := b.Improve(1); ok {
		t.Error("house supply exhausted, build should fail")
	}
	if b.HousesBuilt() != 2 {
		t.Errorf("houses built = %d, want 2", b.HousesBuilt())
	}
}

func TestImproveHotelReturnsHouses(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	p := b.Property(1)
	p.Houses = 4
	b.houses = 4
	hotel, ok := b.Improve(1)
	if !hotel || !ok {
		t.Fatalf("expected hotel build, got hotel=%v ok=%v", hotel, ok)
	}
	if b.HousesBuilt() != 0 {
		t.Errorf("hotel should return 4 houses to supply, %d standing", b.HousesBuilt())
	}
	if b.HotelsBuilt() != 1 {
		t.Errorf("hotels built = %d, want 1", b.HotelsBuilt())
	}
	if p.Houses != HotelLevel {
		t.Errorf("houses = %d, want %d", p.Houses, HotelLevel)
	}
}

func TestDowngradeSequence(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	p := b.Property(1)
	p.Houses = 5
	b.hotels = 1

	proceeds, mortgaged := b.Downgrade(1)
	if mortgaged || proceeds != p.CostHouse*5/2 {
		t.Errorf("hotel sale = %d mortgaged=%v, want %d false", proceeds, mortgaged, p.CostHouse*5/2)
	}
	if p.Houses != 0 {
		t.Errorf("hotel sale should clear houses, got %d", p.Houses)
	}

	proceeds, mortgaged = b.Downgrade(1)
	if !mortgaged || proceeds != p.CostBase/2 {
		t.Errorf("mortgage = %d mortgaged=%v, want %d true", proceeds, mortgaged, p.CostBase/2)
	}
	if !p.Mortgaged {
		t.Error("property should be mortgaged")
	}
}

func TestLiquidationTargetPrefersLowShare(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	b.Property(6).Owner = 0 // one of three light blues
	b.RecomputeMonopolies()

	pos, ok := b.LiquidationTarget(0)
	if !ok {
		t.Fatal("expected a target")
	}
	if pos != 6 {
		t.Errorf("target = %d, want the minority holding 6", pos)
	}
}

func TestLiquidationTargetPrefersImproved(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	b.Property(3).Houses = 2
	pos, ok := b.LiquidationTarget(0)
	if !ok || pos != 3 {
		t.Errorf("target = %d ok=%v, want improved 3", pos, ok)
	}
}

func TestReleaseAll(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	b.Property(1).Mortgaged = true
	b.ReleaseAll(0)
	b.EachProperty(func(p *Property) {
		if p.Owner == 0 {
			t.Errorf("property %d still owned after release", p.Pos)
		}
		if p.Mortgaged {
			t.Errorf("property %d still mortgaged after release", p.Pos)
		}
	})
}

func TestBuildCandidatesUniformRule(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	b.Property(1).Houses = 1

	out := b.BuildCandidates(0, BuildPolicy{})
	if len(out) != 1 || out[0].Pos != 3 {
		t.Fatalf("uniform rule should only offer the lagging member, got %+v", out)
	}

	out = b.BuildCandidates(0, BuildPolicy{AllowUneven: true})
	if len(out) != 2 {
		t.Errorf("uneven building should offer both members, got %d", len(out))
	}
}

func TestBuildCandidatesSkipMortgagedGroup(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	b.Property(1).Mortgaged = true
	if out := b.BuildCandidates(0, BuildPolicy{}); len(out) != 0 {
		t.Errorf("group with a mortgaged member must not build, got %+v", out)
	}
}

func TestBuildCandidatesNoRailroadsOrUtilities(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Railroad, 0)
	claimGroup(b, Utility, 0)
	if out := b.BuildCandidates(0, BuildPolicy{}); len(out) != 0 {
		t.Errorf("railroads and utilities are unbuildable, got %+v", out)
	}
}

func TestBuildCandidatesLevelCap(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	b.Property(1).Houses = 2
	b.Property(3).Houses = 2
	if out := b.BuildCandidates(0, BuildPolicy{LevelCap: 2}); len(out) != 0 {
		t.Errorf("level cap reached, got %+v", out)
	}
}

func TestBuildCandidatesOrder(t *testing.T) {
	b := newTestBoard()
	claimGroup(b, Brown, 0)
	claimGroup(b, Indigo, 0)

	// Preferred candidate sorts last.
	out := b.BuildCandidates(0, BuildPolicy{Order: OrderExpensiveFirst})
	if len(out) == 0 {
		t.Fatal("expected candidates")
	}
	if last := out[len(out)-1]; last.Group != Indigo {
		t.Errorf("expensive-first should prefer indigo, got group %v", last.Group)
	}

	out = b.BuildCandidates(0, BuildPolicy{Order: OrderCheapestFirst})
	if last := out[len(out)-1]; last.Group != Brown {
		t.Errorf("cheapest-first should prefer brown, got group %v", last.Group)
	}

	rng := randutil.New(1)
	out = b.BuildCandidates(0, BuildPolicy{Order: OrderRandom, Rand: rng})
	if len(out) != 4 {
		t.Errorf("random order must keep all candidates, got %d", len(out))
	}
}

func TestWantedProperties(t *testing.T) {
	b := newTestBoard()
	b.Property(1).Owner = 0 // one of two browns
	b.RecomputeMonopolies()
	wanted := b.WantedProperties(0)
	if len(wanted) != 1 || wanted[0] != 3 {
		t.Errorf("wanted = %v, want [3]", wanted)
	}
}

func TestWantedPropertiesExcludesUtilities(t *testing.T) {
	b := newTestBoard()
	b.Property(12).Owner = 0
	b.RecomputeMonopolies()
	for _, pos := range b.WantedProperties(0) {
		if b.Property(pos).Group == Utility {
			t.Errorf("utilities are never wanted, got %d", pos)
		}
	}
}

func TestOfferedProperties(t *testing.T) {
	b := newTestBoard()
	b.Property(6).Owner = 0 // single light blue
	claimGroup(b, Brown, 0) // complete pair, not offered

	offered := b.OfferedProperties(0)
	if len(offered) != 1 || offered[0] != 6 {
		t.Errorf("offered = %v, want [6]", offered)
	}

	b.Property(6).Mortgaged = true
	if offered := b.OfferedProperties(0); len(offered) != 0 {
		t.Errorf("mortgaged singles are not offered, got %v", offered)
	}
}

func TestOwnedValue(t *testing.T) {
	b := newTestBoard()
	p := b.Property(1)
	p.Owner = 0
	if got := b.OwnedValue(0); got != p.CostBase {
		t.Errorf("owned value = %d, want %d", got, p.CostBase)
	}
	p.Houses = 2
	if got := b.OwnedValue(0); got != p.CostBase+2*p.CostHouse {
		t.Errorf("owned value with houses = %d, want %d", got, p.CostBase+2*p.CostHouse)
	}
	p.Houses = 0
	p.Mortgaged = true
	if got := b.OwnedValue(0); got != p.CostBase/2 {
		t.Errorf("mortgaged value = %d, want %d", got, p.CostBase/2)
	}
}

func TestParseGroup(t *testing.T) {
	if g, err := ParseGroup("orange"); err != nil || g != Orange {
		t.Errorf("ParseGroup(orange) = %v, %v", g, err)
	}
	if g, err := ParseGroup(""); err != nil || g != GroupNone {
		t.Errorf("ParseGroup(empty) = %v, %v", g, err)
	}
	if _, err := ParseGroup("mauve"); err == nil {
		t.Error("unknown group should error")
	}
}
