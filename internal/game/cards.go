package game

import (
	"fmt"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/carddeck"
)

// drawChance draws and resolves one Chance card. Every card returns to the
// back of the deck except the jail-free card, which the player keeps.
func (g *Game) drawChance(p *Player) {
	card, ok := g.chance.Draw()
	if !ok {
		// Both jail-free cards can be held at once, never all sixteen.
		panic("chance deck exhausted")
	}
	g.logger.Debug("chance", "player", p.Name, "card", card)

	switch card {
	case carddeck.ChanceAdvanceStCharles:
		g.advanceTo(p, 11)
	case carddeck.ChanceJailFree:
		p.JailCardChance = true
	case carddeck.ChanceAdvanceReading:
		g.advanceTo(p, 5)
	case carddeck.ChanceNearestRailroad:
		pos := ((p.Position+4)/10*10 + 5) % board.NumCells
		p.Position = pos
		g.cellAction(p, pos, true)
	case carddeck.ChanceAdvanceIllinois:
		g.advanceTo(p, 24)
	case carddeck.ChanceGeneralRepairs:
		p.Cash -= g.repairBill(p, 25, 100)
	case carddeck.ChanceAdvanceGo:
		p.Cash += g.cfg.Rules.Salary
		p.Position = 0
	case carddeck.ChanceBankDividend:
		p.Cash += 50
	case carddeck.ChancePoorTax:
		p.Cash -= 15
	case carddeck.ChanceNearestUtility:
		pos := 12
		if p.Position > 12 && p.Position <= 28 {
			pos = 28
		}
		p.Position = pos
		g.cellAction(p, pos, true)
	case carddeck.ChanceGoToJail:
		p.enterJail()
	case carddeck.ChanceChairman:
		for _, other := range g.players {
			if other != p && !other.Bankrupt {
				p.Cash -= 50
				other.Cash += 50
			}
		}
	case carddeck.ChanceAdvanceBoardwalk:
		p.Position = 39
		g.cellAction(p, p.Position, false)
	case carddeck.ChanceGoBackThree:
		p.Position -= 3
		g.cellAction(p, p.Position, false)
	case carddeck.ChanceLoanMatures:
		p.Cash += 150
	case carddeck.ChanceCrosswordPrize:
		p.Cash += 100
	default:
		panic(fmt.Sprintf("unhandled chance card %d", card))
	}

	if card != carddeck.ChanceJailFree {
		g.chance.Requeue(card)
	}
}

// drawCommunity draws and resolves one Community Chest card.
func (g *Game) drawCommunity(p *Player) {
	card, ok := g.community.Draw()
	if !ok {
		panic("community deck exhausted")
	}
	g.logger.Debug("community chest", "player", p.Name, "card", card)

	switch card {
	case carddeck.CommunitySchoolTax:
		p.Cash -= 150
	case carddeck.CommunityOperaNight:
		for _, other := range g.players {
			if other != p && !other.Bankrupt {
				other.Cash -= 50
				p.Cash += 50
				g.checkBankruptcy(other)
			}
		}
	case carddeck.CommunityInheritance:
		p.Cash += 100
	case carddeck.CommunityHospitalFee:
		p.Cash -= 100
	case carddeck.CommunityTaxRefund:
		p.Cash += 20
	case carddeck.CommunityGoToJail:
		p.enterJail()
	case carddeck.CommunityJailFree:
		p.JailCardCommunity = true
	case carddeck.CommunityBeautyContest:
		p.Cash += 10
	case carddeck.CommunityStreetRepairs:
		p.Cash -= g.repairBill(p, 40, 115)
	case carddeck.CommunityBankError:
		p.Cash += 200
	case carddeck.CommunityAdvanceGo:
		p.Cash += g.cfg.Rules.Salary
		p.Position = 0
	case carddeck.CommunityXmasFund:
		p.Cash += 100
	case carddeck.CommunityDoctorsFee:
		p.Cash -= 50
	case carddeck.CommunityStockSale:
		p.Cash += 45
	case carddeck.CommunityServices:
		p.Cash += 25
	case carddeck.CommunityLifeInsurance:
		p.Cash += 100
	default:
		panic(fmt.Sprintf("unhandled community card %d", card))
	}

	if card != carddeck.CommunityJailFree {
		g.community.Requeue(card)
	}
}

// advanceTo moves the player forward to pos, paying salary when the move
// crosses Go, and resolves the destination cell.
func (g *Game) advanceTo(p *Player, pos int) {
	if p.Position >= pos {
		p.Cash += g.cfg.Rules.Salary
	}
	p.Position = pos
	g.cellAction(p, pos, false)
}

// repairBill totals the per-building assessment across p's holdings. A
// hotel-level property is charged the hotel rate instead of five house rates.
func (g *Game) repairBill(p *Player, perHouse, perHotel int) int {
	bill := 0
	g.board.EachProperty(func(prop *board.Property) {
		if prop.Owner != p.Index {
			return
		}
		if prop.Houses == board.HotelLevel {
			bill += perHotel
		} else {
			bill += prop.Houses * perHouse
		}
	})
	return bill
}
