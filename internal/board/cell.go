package board

import "fmt"

// Kind identifies what a board cell does when landed on. It is a closed set;
// every dispatch over it must be exhaustive.
type Kind int

const (
	KindGo Kind = iota
	KindProperty
	KindCommunity
	KindChance
	KindIncomeTax // 10% of net worth, capped
	KindLuxuryTax // fixed amount
	KindJail      // the jail cell as a landing spot ("just visiting")
	KindGoToJail
	KindFreeParking
)

func (k Kind) String() string {
	switch k {
	case KindGo:
		return "go"
	case KindProperty:
		return "property"
	case KindCommunity:
		return "community"
	case KindChance:
		return "chance"
	case KindIncomeTax:
		return "income-tax"
	case KindLuxuryTax:
		return "luxury-tax"
	case KindJail:
		return "jail"
	case KindGoToJail:
		return "go-to-jail"
	case KindFreeParking:
		return "free-parking"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Group partitions properties into monopoly sets. Color groups have 2 or 3
// members, railroads 4, utilities 2.
type Group int

const (
	GroupNone Group = iota
	Brown
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	Indigo
	Railroad
	Utility
)

var groupNames = map[Group]string{
	Brown:     "brown",
	LightBlue: "light-blue",
	Pink:      "pink",
	Orange:    "orange",
	Red:       "red",
	Yellow:    "yellow",
	Green:     "green",
	Indigo:    "indigo",
	Railroad:  "railroad",
	Utility:   "utility",
}

func (g Group) String() string {
	if n, ok := groupNames[g]; ok {
		return n
	}
	return "none"
}

// ParseGroup resolves a configuration group name. Empty input means no group.
func ParseGroup(s string) (Group, error) {
	if s == "" {
		return GroupNone, nil
	}
	for g, n := range groupNames {
		if n == s {
			return g, nil
		}
	}
	return GroupNone, fmt.Errorf("unknown property group %q", s)
}

// NoOwner marks an unowned property. Ownership is a player index, never a
// pointer, so the board carries no references into the player set.
const NoOwner = -1

// HotelLevel is the improvement level at which a property carries a hotel.
const HotelLevel = 5

// Property holds the economic state of a purchasable cell. The price columns
// are immutable after construction; Owner, Mortgaged, Monopoly and Houses
// mutate over a game.
type Property struct {
	Pos       int
	CostBase  int
	RentBase  int
	CostHouse int
	RentHouse [5]int // rent at improvement level 1..5 (5 = hotel)
	Group     Group

	Owner     int
	Mortgaged bool
	Monopoly  bool
	Houses    int // 0..4 houses, 5 = hotel
}

// Cell is one of the 40 board positions. Prop is non-nil exactly when Kind is
// KindProperty.
type Cell struct {
	Kind Kind
	Name string
	Prop *Property
}
