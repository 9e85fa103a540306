package game

import (
	"fmt"
	"strconv"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/carddeck"
	"github.com/lox/monopolysim/internal/datalog"
)

// takeTurn plays one move for p and reports whether doubles earned another.
// Rolling doubles into jail, or going bankrupt, never earns one.
func (g *Game) takeTurn(p *Player) bool {
	if p.Bankrupt {
		return false
	}
	g.rec.Record(datalog.PopularCells, strconv.Itoa(p.Position))

	// Money management before the roll: clear cheap mortgages, then build.
	for g.repayMortgage(p) {
		g.recalculate()
	}
	for g.buildImprovement(p) {
	}
	if !p.policy.refuseTrade && !g.cfg.Behaviour.DisableTrading {
		if !g.twoWayTrade(p) && len(g.players) >= 3 && !g.cfg.Behaviour.DisableThreeWay {
			g.threeWayTrade(p)
		}
	}

	p.dice[0] = g.dice.IntN(6) + 1
	p.dice[1] = g.dice.IntN(6) + 1
	g.logger.Debug("roll", "player", p.Name, "dice", p.dice)

	goAgain := false
	if p.dice[0] == p.dice[1] && !p.InJail {
		goAgain = true
		p.ConsecutiveDoubles++
		if p.ConsecutiveDoubles == 3 {
			g.logger.Debug("three doubles, straight to jail", "player", p.Name)
			p.enterJail()
			return false
		}
	} else {
		p.ConsecutiveDoubles = 0
	}

	if p.InJail {
		switch {
		case p.JailCardChance:
			p.JailCardChance = false
			g.chance.Requeue(carddeck.ChanceJailFree)
			g.logger.Debug("used chance jail card", "player", p.Name)
		case p.JailCardCommunity:
			p.JailCardCommunity = false
			g.community.Requeue(carddeck.CommunityJailFree)
			g.logger.Debug("used community jail card", "player", p.Name)
		case p.dice[0] != p.dice[1]:
			p.DaysInJail++
			if p.DaysInJail < 3 {
				return false
			}
			// Third failed roll: pay the fine and walk out.
			p.Cash -= g.cfg.Rules.JailFine
			p.DaysInJail = 0
		default:
			// Doubles release, but the bonus move is forfeit.
			p.DaysInJail = 0
			goAgain = false
		}
		p.InJail = false
	}

	p.Position += p.diceTotal()
	if p.Position >= board.NumCells {
		p.Position -= board.NumCells
		p.Cash += g.cfg.Rules.Salary
	}

	g.cellAction(p, p.Position, false)
	g.checkBankruptcy(p)

	return goAgain && !p.InJail && !p.Bankrupt
}

// cellAction resolves the effect of standing on pos. fromChance marks arrival
// via a nearest-railroad/utility card, which boosts the rent there.
func (g *Game) cellAction(p *Player, pos int, fromChance bool) {
	cell := g.board.Cell(pos)
	switch cell.Kind {
	case board.KindProperty:
		g.propertyAction(p, pos, fromChance)
	case board.KindLuxuryTax:
		p.Cash -= g.cfg.Rules.LuxuryTax
	case board.KindIncomeTax:
		tax := p.NetWorth(g.board) / 10
		if cap := g.cfg.Rules.PropertyTaxCap; tax > cap {
			tax = cap
		}
		p.Cash -= tax
	case board.KindGoToJail:
		p.enterJail()
	case board.KindChance:
		g.drawChance(p)
	case board.KindCommunity:
		g.drawCommunity(p)
	case board.KindGo, board.KindJail, board.KindFreeParking:
		// Nothing happens on these.
	default:
		panic(fmt.Sprintf("unhandled cell kind %v at %d", cell.Kind, pos))
	}
}

// propertyAction buys an unowned property when the buyer's policy allows it,
// or transfers rent to a foreign owner. Mortgaged and self-owned cells are
// free to stand on.
func (g *Game) propertyAction(p *Player, pos int, fromChance bool) {
	prop := g.board.Property(pos)
	switch {
	case prop.Owner == p.Index || prop.Mortgaged:
		return
	case prop.Owner == board.NoOwner:
		if !g.wantsToBuy(p, prop) {
			return
		}
		p.Cash -= prop.CostBase
		prop.Owner = p.Index
		g.logger.Debug("bought", "player", p.Name, "cell", g.board.Cell(pos).Name, "cost", prop.CostBase)
		g.recalculate()
	default:
		rent := g.board.Rent(pos, p.diceTotal(), fromChance)
		owner := g.players[prop.Owner]
		p.Cash -= rent
		owner.Cash += rent
		g.logger.Debug("paid rent", "player", p.Name, "to", owner.Name, "rent", rent)
	}
}

// wantsToBuy applies the purchase policy: keep the cash floor intact and honour
// the experimental refused group.
func (g *Game) wantsToBuy(p *Player, prop *board.Property) bool {
	if p.policy.refuseGroup != board.GroupNone && prop.Group == p.policy.refuseGroup {
		return false
	}
	return p.Cash > prop.CostBase+p.policy.cashFloor
}

// checkBankruptcy liquidates assets while p's cash is negative. When nothing
// is left to liquidate the player leaves the game: cards return to their
// decks, properties to the open market.
func (g *Game) checkBankruptcy(p *Player) {
	for p.Cash < 0 {
		pos, ok := g.board.LiquidationTarget(p.Index)
		if !ok {
			p.Bankrupt = true
			if p.JailCardChance {
				p.JailCardChance = false
				g.chance.Requeue(carddeck.ChanceJailFree)
			}
			if p.JailCardCommunity {
				p.JailCardCommunity = false
				g.community.Requeue(carddeck.CommunityJailFree)
			}
			g.board.ReleaseAll(p.Index)
			p.mortgages = nil
			g.recalculate()
			g.logger.Debug("bankrupt", "player", p.Name)
			g.rec.Record(datalog.LosersNames, p.Name)
			g.rec.Record(datalog.PopularCells, strconv.Itoa(p.Position))
			return
		}
		proceeds, mortgaged := g.board.Downgrade(pos)
		p.Cash += proceeds
		if mortgaged {
			prop := g.board.Property(pos)
			p.mortgages = append(p.mortgages, mortgage{
				pos:    pos,
				redeem: prop.CostBase / 2 * 11 / 10,
			})
		}
		g.logger.Debug("liquidated", "player", p.Name, "cell", g.board.Cell(pos).Name, "raised", proceeds)
		g.recalculate()
	}
}
