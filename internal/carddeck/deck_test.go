package carddeck

import (
	"testing"

	"github.com/lox/monopolysim/internal/randutil"
)

func TestNewDecksHoldEveryCard(t *testing.T) {
	rng := randutil.New(7)
	for name, d := range map[string]*Deck{
		"chance":    NewChance(rng),
		"community": NewCommunity(rng),
	} {
		if d.Len() != DeckSize {
			t.Errorf("%s deck has %d cards, want %d", name, d.Len(), DeckSize)
		}
		seen := make(map[Card]bool)
		for d.Len() > 0 {
			c, ok := d.Draw()
			if !ok {
				t.Fatalf("%s deck draw failed with cards remaining", name)
			}
			if seen[c] {
				t.Errorf("%s deck holds duplicate card %v", name, c)
			}
			seen[c] = true
		}
		if len(seen) != DeckSize {
			t.Errorf("%s deck yielded %d distinct cards, want %d", name, len(seen), DeckSize)
		}
	}
}

func TestDrawRequeueCycles(t *testing.T) {
	d := NewChance(randutil.New(3))
	first, _ := d.Draw()
	d.Requeue(first)
	if d.Len() != DeckSize {
		t.Fatalf("deck has %d cards after requeue, want %d", d.Len(), DeckSize)
	}
	// The requeued card must come back last.
	var last Card
	for d.Len() > 0 {
		last, _ = d.Draw()
	}
	if last != first {
		t.Errorf("requeued card returned as %v, want %v", last, first)
	}
}

func TestDrawEmpty(t *testing.T) {
	d := &Deck{}
	if _, ok := d.Draw(); ok {
		t.Error("empty deck draw should report false")
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := NewChance(randutil.New(42))
	b := NewChance(randutil.New(42))
	for a.Len() > 0 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("same seed produced different orders: %v vs %v", ca, cb)
		}
	}
}

func TestCardStrings(t *testing.T) {
	if s := ChanceJailFree.String(); s != "Get Out Of Jail Free" {
		t.Errorf("chance jail card name = %q", s)
	}
	if s := CommunityBankError.String(); s != "Bank error in your favour $200" {
		t.Errorf("community card name = %q", s)
	}
	if s := Card(999).String(); s != "unknown card" {
		t.Errorf("out of range card name = %q", s)
	}
}
