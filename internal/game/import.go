package game

import (
	"fmt"

	"github.com/magefree/mage-deck/internal/cardfile"
	"github.com/magefree/mage-deck/internal/game/counters"
	"github.com/magefree/mage-deck/internal/game/mana"
	"go.uber.org/zap"
)

// ImportDeckFromFile parses a deck list file and rebuilds the deck from it.
func (d *Deck) ImportDeckFromFile(path string) error {
	records, err := cardfile.ParseFile(path)
	if err != nil {
		return err
	}
	return d.ImportDeckFromRecords(records)
}

// ImportDeckFromRecords rebuilds the deck from deck-list records.
//
// Each record becomes one Card, added to the deck list Number times as the
// same *Card. A record whose power and toughness are both integers gets a
// combat ability. On error the deck is left as it was.
func (d *Deck) ImportDeckFromRecords(records cardfile.Records) error {
	cards, err := CardsFromRecords(records)
	if err != nil {
		return err
	}
	d.Reset(cards)

	d.logger.Info("deck imported",
		zap.Int("distinct_cards", records.Len()),
		zap.Int("total_cards", len(cards)),
	)
	return nil
}

// CardsFromRecords builds the card list for records without touching a deck.
func CardsFromRecords(records cardfile.Records) ([]*Card, error) {
	var cards []*Card
	for rec := range records.All() {
		number, ok := rec.Number.Int()
		if !ok || number < 0 {
			return nil, fmt.Errorf("%w: %q: number %q", ErrInvalidRecord, rec.Name, rec.Number.Raw)
		}
		card, err := CardFromRecord(rec)
		if err != nil {
			return nil, err
		}
		for range number {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// CardFromRecord builds a single card from a record, ignoring its number.
func CardFromRecord(rec cardfile.CardRecord) (*Card, error) {
	cost, err := costFromCounts(rec.Cost)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", rec.Name, err)
	}

	var ability *counters.CombatAbility
	power, powerOK := rec.Power.Int()
	toughness, toughnessOK := rec.Toughness.Int()
	if powerOK && toughnessOK {
		ability = counters.NewCombatAbility(power, toughness)
	}

	return NewCard(rec.Name, rec.Rules, rec.Type, cost, ability), nil
}

func costFromCounts(counts cardfile.CostCounts) (mana.Cost, error) {
	parts := make([]mana.ColorAmount, 0, counts.Len())
	for key, n := range counts.All() {
		color, err := mana.ParseColor(key)
		if err != nil {
			return mana.Cost{}, err
		}
		parts = append(parts, mana.ColorAmount{Color: color, Amount: n})
	}
	return mana.NewCost(parts...), nil
}
