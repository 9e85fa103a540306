package carddeck

// Card identifies one card in a deck. The two decks use disjoint identifier
// spaces; the numeric order below is the published effect table and changing
// it changes game semantics.
type Card int

// Chance cards.
const (
	ChanceAdvanceStCharles Card = iota
	ChanceJailFree
	ChanceAdvanceReading
	ChanceNearestRailroad
	ChanceAdvanceIllinois
	ChanceGeneralRepairs
	ChanceAdvanceGo
	ChanceBankDividend
	ChancePoorTax
	ChanceNearestUtility
	ChanceGoToJail
	ChanceChairman
	ChanceAdvanceBoardwalk
	ChanceGoBackThree
	ChanceLoanMatures
	ChanceCrosswordPrize

	chanceCount
)

// Community Chest cards.
const (
	CommunitySchoolTax Card = iota + communityBase
	CommunityOperaNight
	CommunityInheritance
	CommunityHospitalFee
	CommunityTaxRefund
	CommunityGoToJail
	CommunityJailFree
	CommunityBeautyContest
	CommunityStreetRepairs
	CommunityBankError
	CommunityAdvanceGo
	CommunityXmasFund
	CommunityDoctorsFee
	CommunityStockSale
	CommunityServices
	CommunityLifeInsurance

	communityEnd
)

const (
	communityBase  = 100
	communityCount = int(communityEnd - communityBase)
)

// DeckSize is the number of cards in each deck.
const DeckSize = 16

var chanceNames = [...]string{
	"Advance to St.Charles",
	"Get Out Of Jail Free",
	"Take a ride on the Reading",
	"Advance to the nearest Railroad, pay double",
	"Advance to Illinois Avenue",
	"Make general repairs to your property",
	"Advance to GO",
	"Bank pays you dividend $50",
	"Pay poor tax $15",
	"Advance to the nearest Utility, pay 10x dice",
	"Go Directly to Jail",
	"Elected chairman, pay each player $50",
	"Advance to Boardwalk",
	"Go back 3 spaces",
	"Building loan matures, receive $150",
	"Crossword competition prize $100",
}

var communityNames = [...]string{
	"Pay school tax $150",
	"Opera night, collect $50 from each player",
	"You inherit $100",
	"Pay hospital $100",
	"Income tax refund $20",
	"Go Directly to Jail",
	"Get Out Of Jail Free",
	"Second prize in beauty contest $10",
	"Assigned for street repairs",
	"Bank error in your favour $200",
	"Advance to GO",
	"X-Mas fund matured $100",
	"Doctor's fee $50",
	"From sale of stock you get $45",
	"Receive for services $25",
	"Life insurance matures, collect $100",
}

func (c Card) String() string {
	switch {
	case c >= 0 && int(c) < int(chanceCount):
		return chanceNames[c]
	case c >= communityBase && c < communityEnd:
		return communityNames[c-communityBase]
	}
	return "unknown card"
}
