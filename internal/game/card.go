package game

import (
	"strings"

	"github.com/google/uuid"
	"github.com/magefree/mage-deck/internal/game/counters"
	"github.com/magefree/mage-deck/internal/game/mana"
)

// Card types that go straight to the graveyard when played.
const (
	TypeInstant = "Instant"
	TypeSorcery = "Sorcery"
)

// Card is a single physical card.
//
// Identity for comparison is the name only: two cards with the same name are
// equal even if their cost, type or rules differ. The combat ability is the
// only mutable part and belongs to this card alone.
type Card struct {
	id            string
	name          string
	rules         string
	cardType      string
	cost          mana.Cost
	combatAbility *counters.CombatAbility
}

// NewCard creates a card with a fresh ID. ability may be nil.
func NewCard(name, rules, cardType string, cost mana.Cost, ability *counters.CombatAbility) *Card {
	return &Card{
		id:            uuid.NewString(),
		name:          name,
		rules:         rules,
		cardType:      cardType,
		cost:          cost,
		combatAbility: ability,
	}
}

// ID identifies this Card value. Copies added to a deck by reference share
// one Card and so share its ID.
func (c *Card) ID() string { return c.id }

// Name returns the card name.
func (c *Card) Name() string { return c.name }

// Rules returns the rules text.
func (c *Card) Rules() string { return c.rules }

// Type returns the free-form type line.
func (c *Card) Type() string { return c.cardType }

// Cost returns the card's cost.
func (c *Card) Cost() mana.Cost { return c.cost }

// CombatAbility returns the card's power/toughness state, or nil.
func (c *Card) CombatAbility() *counters.CombatAbility { return c.combatAbility }

// IsInstantOrSorcery reports whether playing the card sends it to the
// graveyard instead of the battlefield.
func (c *Card) IsInstantOrSorcery() bool {
	return c.cardType == TypeInstant || c.cardType == TypeSorcery
}

// Equal compares cards by name.
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.name == other.name
}

// CompareCards orders cards by name. It returns a negative number when a
// sorts before b, zero when the names match, and a positive number otherwise.
func CompareCards(a, b *Card) int {
	return strings.Compare(a.name, b.name)
}

// String renders name, cost, type, combat ability and rules on separate
// lines.
func (c *Card) String() string {
	return strings.Join([]string{
		c.name,
		c.cost.String(),
		c.cardType,
		c.combatAbility.String(),
		c.rules,
	}, "\n")
}

// CardRef selects a card either by value or by name.
type CardRef struct {
	card *Card
	name string
}

// ByValue refers to a specific card.
func ByValue(card *Card) CardRef {
	return CardRef{card: card}
}

// ByName refers to the first card with the given name.
func ByName(name string) CardRef {
	return CardRef{name: name}
}

// Card returns the referenced card when the ref was built with ByValue.
func (r CardRef) Card() (*Card, bool) {
	return r.card, r.card != nil
}

// Name returns the referenced name.
func (r CardRef) Name() string {
	if r.card != nil {
		return r.card.name
	}
	return r.name
}

func (r CardRef) String() string {
	return r.Name()
}
