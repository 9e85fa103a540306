package board

// The standard 40-cell layout. This table is part of the external contract:
// costs, rents and groups must match it exactly for results to be comparable
// across implementations.

func property(pos int, name string, costBase, rentBase, costHouse int, rentHouse [5]int, group Group) Cell {
	return Cell{
		Kind: KindProperty,
		Name: name,
		Prop: &Property{
			Pos:       pos,
			CostBase:  costBase,
			RentBase:  rentBase,
			CostHouse: costHouse,
			RentHouse: rentHouse,
			Group:     group,
			Owner:     NoOwner,
		},
	}
}

func newCells() [NumCells]Cell {
	return [NumCells]Cell{
		// 0-4
		{Kind: KindGo, Name: "Go"},
		property(1, "A1 Mediterranean Avenue", 60, 2, 50, [5]int{10, 30, 90, 160, 250}, Brown),
		{Kind: KindCommunity, Name: "Community Chest"},
		property(3, "A2 Baltic Avenue", 60, 4, 50, [5]int{20, 60, 180, 320, 450}, Brown),
		{Kind: KindIncomeTax, Name: "Property Tax"},
		// 5-9
		property(5, "R1 Reading Railroad", 200, 0, 0, [5]int{}, Railroad),
		property(6, "B1 Oriental Avenue", 100, 6, 50, [5]int{30, 90, 270, 400, 550}, LightBlue),
		{Kind: KindChance, Name: "Chance"},
		property(8, "B2 Vermont Avenue", 100, 6, 50, [5]int{30, 90, 270, 400, 550}, LightBlue),
		property(9, "B3 Connecticut Avenue", 120, 8, 50, [5]int{40, 100, 300, 450, 600}, LightBlue),
		// 10-14
		{Kind: KindJail, Name: "Prison"},
		property(11, "C1 St.Charles Place", 140, 10, 100, [5]int{50, 150, 450, 625, 750}, Pink),
		property(12, "U1 Electric Company", 150, 0, 0, [5]int{}, Utility),
		property(13, "C2 States Avenue", 140, 10, 100, [5]int{50, 150, 450, 625, 750}, Pink),
		property(14, "C3 Virginia Avenue", 160, 12, 100, [5]int{60, 180, 500, 700, 900}, Pink),
		// 15-19
		property(15, "R2 Pennsylvania Railroad", 200, 0, 0, [5]int{}, Railroad),
		property(16, "D1 St.James Place", 180, 14, 100, [5]int{70, 200, 550, 700, 950}, Orange),
		{Kind: KindCommunity, Name: "Community Chest"},
		property(18, "D2 Tennessee Avenue", 180, 14, 100, [5]int{70, 200, 550, 700, 950}, Orange),
		property(19, "D3 New York Avenue", 200, 16, 100, [5]int{80, 220, 600, 800, 1000}, Orange),
		// 20-24
		{Kind: KindFreeParking, Name: "Free Parking"},
		property(21, "E1 Kentucky Avenue", 220, 18, 150, [5]int{90, 250, 700, 875, 1050}, Red),
		{Kind: KindChance, Name: "Chance"},
		property(23, "E2 Indiana Avenue", 220, 18, 150, [5]int{90, 250, 700, 875, 1050}, Red),
		property(24, "E3 Illinois Avenue", 240, 20, 150, [5]int{100, 300, 750, 925, 1100}, Red),
		// 25-29
		property(25, "R3 BnO Railroad", 200, 0, 0, [5]int{}, Railroad),
		property(26, "F1 Atlantic Avenue", 260, 22, 150, [5]int{110, 330, 800, 975, 1150}, Yellow),
		property(27, "F2 Ventinor Avenue", 260, 22, 150, [5]int{110, 330, 800, 975, 1150}, Yellow),
		property(28, "U2 Waterworks", 150, 0, 0, [5]int{}, Utility),
		property(29, "F3 Martin Gardens", 280, 24, 150, [5]int{120, 360, 850, 1025, 1200}, Yellow),
		// 30-34
		{Kind: KindGoToJail, Name: "Go To Jail"},
		property(31, "G1 Pacific Avenue", 300, 26, 200, [5]int{130, 390, 900, 1100, 1275}, Green),
		property(32, "G2 North Carolina Avenue", 300, 26, 200, [5]int{130, 390, 900, 1100, 1275}, Green),
		{Kind: KindCommunity, Name: "Community Chest"},
		property(34, "G3 Pennsylvania Avenue", 320, 28, 200, [5]int{150, 450, 100, 1200, 1400}, Green),
		// 35-39
		property(35, "R4 Short Line", 200, 0, 0, [5]int{}, Railroad),
		{Kind: KindChance, Name: "Chance"},
		property(37, "H1 Park Place", 350, 35, 200, [5]int{175, 500, 1100, 1300, 1500}, Indigo),
		{Kind: KindLuxuryTax, Name: "Luxury Tax"},
		property(39, "H2 Boardwalk", 400, 50, 200, [5]int{200, 600, 1400, 1700, 2000}, Indigo),
	}
}
