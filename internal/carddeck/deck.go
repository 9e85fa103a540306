// Package carddeck implements the two circular card decks. Cards drawn from
// the front are requeued to the back once their effect resolves, except the
// jail-free card, which stays with the drawing player until spent or the
// holder goes bankrupt.
package carddeck

import rand "math/rand/v2"

// Deck is an ordered set of card identifiers.
type Deck struct {
	cards []Card
}

// NewChance creates a shuffled Chance deck.
func NewChance(rng *rand.Rand) *Deck {
	return newDeck(rng, ChanceAdvanceStCharles)
}

// NewCommunity creates a shuffled Community Chest deck.
func NewCommunity(rng *rand.Rand) *Deck {
	return newDeck(rng, CommunitySchoolTax)
}

func newDeck(rng *rand.Rand, first Card) *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for i := 0; i < DeckSize; i++ {
		d.cards = append(d.cards, first+Card(i))
	}
	d.shuffle(rng)
	return d
}

func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Requeue appends a card to the back of the deck.
func (d *Deck) Requeue(c Card) {
	d.cards = append(d.cards, c)
}

// Len returns the number of cards currently in circulation.
func (d *Deck) Len() int { return len(d.cards) }
