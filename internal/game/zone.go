package game

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
	"strings"
)

// Zone is an ordered collection of cards. Index 0 is the top.
// Duplicates are allowed. A Zone is not safe for concurrent use.
type Zone struct {
	cards []*Card
	rng   *rand.Rand
}

// NewZone creates a zone holding a copy of cards. rng drives Shuffle; when
// nil the package-level source is used.
func NewZone(rng *rand.Rand, cards ...*Card) *Zone {
	return &Zone{
		cards: cloneCards(cards),
		rng:   rng,
	}
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int {
	return len(z.cards)
}

// At returns the card at index i. It panics if i is out of range.
func (z *Zone) At(i int) *Card {
	return z.cards[i]
}

// Cards returns a copy of the zone's cards in order.
func (z *Zone) Cards() []*Card {
	return cloneCards(z.cards)
}

// cloneCards copies cards into a new slice that is never nil.
func cloneCards(cards []*Card) []*Card {
	return append(make([]*Card, 0, len(cards)), cards...)
}

// All yields the cards with their index, in order.
func (z *Zone) All() iter.Seq2[int, *Card] {
	return slices.All(z.cards)
}

// Names returns the card names in order.
func (z *Zone) Names() []string {
	names := make([]string, len(z.cards))
	for i, c := range z.cards {
		names[i] = c.name
	}
	return names
}

func (z *Zone) String() string {
	return "[" + strings.Join(z.Names(), ", ") + "]"
}

// GetCardByName returns the first card named name.
func (z *Zone) GetCardByName(name string) (*Card, error) {
	for _, c := range z.cards {
		if c.name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCardNotFound, name)
}

// Contains reports whether a card named name is in the zone.
func (z *Zone) Contains(name string) bool {
	return z.indexOf(name) >= 0
}

// resolve returns the card ref points at. By-name refs are looked up in this
// zone.
func (z *Zone) resolve(ref CardRef) (*Card, error) {
	if card, ok := ref.Card(); ok {
		return card, nil
	}
	return z.GetCardByName(ref.name)
}

func (z *Zone) indexOf(name string) int {
	return slices.IndexFunc(z.cards, func(c *Card) bool {
		return c.name == name
	})
}

// AddCard appends a card to the bottom of the zone.
//
// A by-name ref is resolved against this zone's own contents, so it only
// succeeds when a card with that name is already here; the found card is
// appended again.
func (z *Zone) AddCard(ref CardRef) error {
	card, err := z.resolve(ref)
	if err != nil {
		return err
	}
	z.cards = append(z.cards, card)
	return nil
}

// AddCards adds each ref in order. It stops at the first failure and keeps
// the cards added before it.
func (z *Zone) AddCards(refs ...CardRef) error {
	for _, ref := range refs {
		if err := z.AddCard(ref); err != nil {
			return err
		}
	}
	return nil
}

// RemoveCard removes the first card with the ref's name.
func (z *Zone) RemoveCard(ref CardRef) error {
	_, err := z.PopCard(ref)
	return err
}

// RemoveCards removes each ref in order. It stops at the first failure and
// keeps the removals made before it.
func (z *Zone) RemoveCards(refs ...CardRef) error {
	for _, ref := range refs {
		if err := z.RemoveCard(ref); err != nil {
			return err
		}
	}
	return nil
}

// PopCard removes the first card with the ref's name and returns it.
func (z *Zone) PopCard(ref CardRef) (*Card, error) {
	name := ref.Name()
	i := z.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrCardNotFound, name)
	}
	card := z.cards[i]
	z.cards = slices.Delete(z.cards, i, i+1)
	return card, nil
}

// PopNCards removes and returns the top n cards in order. If the zone holds
// fewer than n cards nothing is removed.
func (z *Zone) PopNCards(n int) ([]*Card, error) {
	if n < 0 || n > len(z.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, len(z.cards))
	}
	popped := cloneCards(z.cards[:n])
	z.cards = slices.Delete(z.cards, 0, n)
	return popped, nil
}

// Shuffle randomizes the order of the zone.
func (z *Zone) Shuffle() {
	swap := func(i, j int) { z.cards[i], z.cards[j] = z.cards[j], z.cards[i] }
	if z.rng == nil {
		rand.Shuffle(len(z.cards), swap)
		return
	}
	z.rng.Shuffle(len(z.cards), swap)
}

// Sort orders the zone by card name, keeping the relative order of cards
// with equal names.
func (z *Zone) Sort() {
	slices.SortStableFunc(z.cards, CompareCards)
}
