package game

// repayMortgage redeems the cheapest outstanding mortgage when cash comfortably
// covers it, per the unmortgage coefficient. Reports whether a redemption
// happened; the caller recalculates and loops.
func (g *Game) repayMortgage(p *Player) bool {
	i := p.cheapestMortgage()
	if i < 0 {
		return false
	}
	m := p.mortgages[i]
	if p.Cash <= m.redeem*g.cfg.Behaviour.UnmortgageCoeff {
		return false
	}
	p.Cash -= m.redeem
	g.board.Property(m.pos).Mortgaged = false
	p.mortgages = append(p.mortgages[:i], p.mortgages[i+1:]...)
	g.logger.Debug("unmortgaged", "player", p.Name, "cell", g.board.Cell(m.pos).Name, "paid", m.redeem)
	return true
}

// buildImprovement erects one house or hotel on the most preferred affordable
// candidate, keeping the cash floor intact. Reports whether a build happened;
// the caller loops until it returns false.
func (g *Game) buildImprovement(p *Player) bool {
	available := p.Cash - p.policy.cashFloor

	// Candidates are ordered preferred-last; scan from the end for the first
	// one the player can pay for.
	for i := len(p.buildList) - 1; i >= 0; i-- {
		c := p.buildList[i]
		if c.CostHouse > available {
			continue
		}
		hotel, ok := g.board.Improve(c.Pos)
		if !ok {
			// Building supply exhausted; nothing cheaper would fare better.
			return false
		}
		p.Cash -= c.CostHouse
		if hotel {
			g.logger.Debug("built hotel", "player", p.Name, "cell", g.board.Cell(c.Pos).Name)
		} else {
			g.logger.Debug("built house", "player", p.Name, "cell", g.board.Cell(c.Pos).Name)
		}
		p.buildList = g.board.BuildCandidates(p.Index, p.policy.build)
		return true
	}
	return false
}

// twoWayTrade looks for a swap that completes a monopoly for both sides: p
// gets a property it wants, the counterparty gets one of p's offered singles
// from a different group, and whoever receives the cheaper property pays the
// price difference. Executed trades restart the scan against fresh lists.
// Every trade completes a group for each recipient and completed groups leave
// all wanted lists, so the restart loop terminates within the group count.
func (g *Game) twoWayTrade(p *Player) bool {
	traded := false
restart:
	for i := len(p.wanted) - 1; i >= 0; i-- {
		wantedPos := p.wanted[i]
		wantedProp := g.board.Property(wantedPos)
		if wantedProp.Owner < 0 {
			continue
		}
		other := g.players[wantedProp.Owner]
		for j := len(other.wanted) - 1; j >= 0; j-- {
			offeredPos := other.wanted[j]
			offeredProp := g.board.Property(offeredPos)
			if offeredProp.Owner != p.Index || !contains(p.offered, offeredPos) {
				continue
			}
			if offeredProp.Group == wantedProp.Group {
				continue
			}

			// Whoever receives the more expensive property pays the
			// difference in base cost.
			payer, payee := p, other
			diff := wantedProp.CostBase - offeredProp.CostBase
			if diff < 0 {
				payer, payee, diff = other, p, -diff
			}
			if payer.Cash-diff < payer.policy.cashFloor {
				continue
			}
			payer.Cash -= diff
			payee.Cash += diff
			wantedProp.Owner = p.Index
			offeredProp.Owner = other.Index
			g.logger.Debug("two-way trade",
				"got", g.board.Cell(wantedPos).Name, "player", p.Name,
				"gave", g.board.Cell(offeredPos).Name, "to", other.Name, "adjustment", diff)
			g.recalculate()
			traded = true
			goto restart
		}
	}
	return traded
}

// threeWayTrade looks for a cycle across three owners in which each receives a
// property completing one of its monopolies and pays the base-cost difference
// of its leg. All three legs must clear every participant's cash floor.
func (g *Game) threeWayTrade(p *Player) bool {
	traded := false
restart:
	for i := len(p.wanted) - 1; i >= 0; i-- {
		pos1 := p.wanted[i]
		prop1 := g.board.Property(pos1)
		if prop1.Owner < 0 {
			continue
		}
		owner1 := g.players[prop1.Owner]
		for j := len(owner1.wanted) - 1; j >= 0; j-- {
			pos2 := owner1.wanted[j]
			prop2 := g.board.Property(pos2)
			if prop2.Owner < 0 || prop2.Owner == p.Index || prop2.Owner == owner1.Index {
				continue
			}
			owner2 := g.players[prop2.Owner]
			for k := len(owner2.wanted) - 1; k >= 0; k-- {
				pos3 := owner2.wanted[k]
				prop3 := g.board.Property(pos3)
				if prop3.Owner != p.Index || !contains(p.offered, pos3) {
					continue
				}
				if prop1.Group == prop2.Group || prop2.Group == prop3.Group || prop1.Group == prop3.Group {
					continue
				}

				pay1 := prop1.CostBase - prop3.CostBase
				pay2 := prop2.CostBase - prop1.CostBase
				pay3 := prop3.CostBase - prop2.CostBase
				if p.Cash-pay1 <= p.policy.cashFloor ||
					owner1.Cash-pay2 <= owner1.policy.cashFloor ||
					owner2.Cash-pay3 <= owner2.policy.cashFloor {
					continue
				}

				prop1.Owner = p.Index
				prop2.Owner = owner1.Index
				prop3.Owner = owner2.Index
				p.Cash -= pay1
				owner1.Cash += pay1
				owner1.Cash -= pay2
				owner2.Cash += pay2
				owner2.Cash -= pay3
				p.Cash += pay3
				g.logger.Debug("three-way trade",
					"player", p.Name, "got", g.board.Cell(pos1).Name,
					"second", owner1.Name, "third", owner2.Name)
				g.recalculate()
				traded = true
				goto restart
			}
		}
	}
	return traded
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
