package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// ZoneID identifies one of a deck's zones.
type ZoneID int

const (
	ZoneLibrary ZoneID = iota
	ZoneHand
	ZoneBattlefield
	ZoneGraveyard
	ZoneExile
	ZoneDeckList
)

// GameplayZones lists the zones cards move between, in display order.
var GameplayZones = []ZoneID{ZoneLibrary, ZoneHand, ZoneBattlefield, ZoneGraveyard, ZoneExile}

func (id ZoneID) String() string {
	switch id {
	case ZoneLibrary:
		return "library"
	case ZoneHand:
		return "hand"
	case ZoneBattlefield:
		return "battlefield"
	case ZoneGraveyard:
		return "graveyard"
	case ZoneExile:
		return "exile"
	case ZoneDeckList:
		return "deck"
	default:
		return "unknown"
	}
}

// Deck owns one player's card pool and its zones.
//
// The deck list is the sorted record of every card the deck was built from.
// Cards only move between the gameplay zones, so every card in the deck list
// is in exactly one of library, hand, battlefield, graveyard or exile.
type Deck struct {
	list        *Zone
	library     *Zone
	hand        *Zone
	battlefield *Zone
	graveyard   *Zone
	exile       *Zone

	rng    *rand.Rand
	logger *zap.Logger
	replay *Replay
}

// Option configures a Deck.
type Option func(*Deck)

// WithRand sets the random source used to shuffle the library.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// WithSeed shuffles with a source seeded by seed, for reproducible decks.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger for zone moves and imports.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Deck) {
		d.logger = logger
	}
}

// WithReplay records the deck into r. Building or resetting the deck starts
// a new recording; every successful move appends a frame.
func WithReplay(r *Replay) Option {
	return func(d *Deck) {
		d.replay = r
	}
}

// NewDeck creates a deck from cards. The deck list is sorted by name, the
// library is a shuffled copy, and every other zone starts empty.
func NewDeck(cards []*Card, opts ...Option) *Deck {
	d := &Deck{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(newSeed()))
	}
	d.Reset(cards)
	return d
}

// newSeed returns a seed from crypto/rand, falling back to the clock.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Reset rebuilds every zone from cards, discarding the previous state.
func (d *Deck) Reset(cards []*Card) {
	d.list = NewZone(d.rng, cards...)
	d.list.Sort()
	d.library = NewZone(d.rng, cards...)
	d.library.Shuffle()
	d.hand = NewZone(d.rng)
	d.battlefield = NewZone(d.rng)
	d.graveyard = NewZone(d.rng)
	d.exile = NewZone(d.rng)
	if d.replay != nil {
		d.replay.begin(d.Snapshot())
	}
}

func (d *Deck) record() {
	if d.replay != nil {
		d.replay.push(d.Snapshot())
	}
}

// List returns the sorted deck list.
func (d *Deck) List() *Zone { return d.list }

// Library returns the library; index 0 is the top.
func (d *Deck) Library() *Zone { return d.library }

// Hand returns the hand.
func (d *Deck) Hand() *Zone { return d.hand }

// Battlefield returns the battlefield.
func (d *Deck) Battlefield() *Zone { return d.battlefield }

// Graveyard returns the graveyard.
func (d *Deck) Graveyard() *Zone { return d.graveyard }

// Exile returns the exile zone.
func (d *Deck) Exile() *Zone { return d.exile }

// Zone returns the zone with the given ID.
func (d *Deck) Zone(id ZoneID) (*Zone, error) {
	switch id {
	case ZoneLibrary:
		return d.library, nil
	case ZoneHand:
		return d.hand, nil
	case ZoneBattlefield:
		return d.battlefield, nil
	case ZoneGraveyard:
		return d.graveyard, nil
	case ZoneExile:
		return d.exile, nil
	case ZoneDeckList:
		return d.list, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownZone, int(id))
	}
}

// Len returns the number of cards in the deck list.
func (d *Deck) Len() int {
	return d.list.Len()
}

func (d *Deck) String() string {
	return d.list.String()
}

// Play moves a card from the hand to the graveyard if it is an instant or
// sorcery, and to the battlefield otherwise.
func (d *Deck) Play(ref CardRef) error {
	card, err := d.hand.GetCardByName(ref.Name())
	if err != nil {
		return err
	}
	if card.IsInstantOrSorcery() {
		return d.moveCard(ref, ZoneHand, ZoneGraveyard)
	}
	return d.moveCard(ref, ZoneHand, ZoneBattlefield)
}

// Draw moves the top n cards of the library to the end of the hand.
func (d *Deck) Draw(n int) error {
	return d.moveNCards(n, ZoneLibrary, ZoneHand)
}

// Discard moves a card from the hand to the graveyard.
func (d *Deck) Discard(ref CardRef) error {
	return d.moveCard(ref, ZoneHand, ZoneGraveyard)
}

// Mill moves the top n cards of the library to the graveyard.
func (d *Deck) Mill(n int) error {
	return d.moveNCards(n, ZoneLibrary, ZoneGraveyard)
}

// KillCard moves a card from the battlefield to the graveyard.
func (d *Deck) KillCard(ref CardRef) error {
	return d.moveCard(ref, ZoneBattlefield, ZoneGraveyard)
}

// ExileCard moves a card from any gameplay zone to exile.
func (d *Deck) ExileCard(ref CardRef, from ZoneID) error {
	if from == ZoneDeckList {
		return fmt.Errorf("%w: %s is not a gameplay zone", ErrUnknownZone, from)
	}
	return d.moveCard(ref, from, ZoneExile)
}

// moveCard pops the card from the source zone and appends it to the target.
// Nothing changes if the card is not in the source zone.
func (d *Deck) moveCard(ref CardRef, fromID, toID ZoneID) error {
	from, err := d.Zone(fromID)
	if err != nil {
		return err
	}
	to, err := d.Zone(toID)
	if err != nil {
		return err
	}

	card, err := from.PopCard(ref)
	if err != nil {
		return err
	}
	if err := to.AddCard(ByValue(card)); err != nil {
		return err
	}

	d.logger.Debug("card moved",
		zap.String("card_id", card.ID()),
		zap.String("card_name", card.Name()),
		zap.Stringer("source_zone", fromID),
		zap.Stringer("target_zone", toID),
	)
	d.record()
	return nil
}

// moveNCards moves the top n cards of the source zone to the end of the
// target, keeping their order. Nothing moves if the source is short.
func (d *Deck) moveNCards(n int, fromID, toID ZoneID) error {
	from, err := d.Zone(fromID)
	if err != nil {
		return err
	}
	to, err := d.Zone(toID)
	if err != nil {
		return err
	}

	cards, err := from.PopNCards(n)
	if err != nil {
		return err
	}
	for _, card := range cards {
		if err := to.AddCard(ByValue(card)); err != nil {
			return err
		}
	}

	d.logger.Debug("cards moved",
		zap.Int("count", len(cards)),
		zap.Stringer("source_zone", fromID),
		zap.Stringer("target_zone", toID),
	)
	d.record()
	return nil
}

// Counts returns the number of cards in each gameplay zone.
func (d *Deck) Counts() map[ZoneID]int {
	counts := make(map[ZoneID]int, len(GameplayZones))
	for _, id := range GameplayZones {
		z, _ := d.Zone(id)
		counts[id] = z.Len()
	}
	return counts
}

// CheckConservation verifies that the gameplay zones together hold each card
// of the deck list exactly as many times as the list does.
func (d *Deck) CheckConservation() error {
	remaining := make(map[*Card]int, d.list.Len())
	for _, c := range d.list.cards {
		remaining[c]++
	}
	for _, id := range GameplayZones {
		z, _ := d.Zone(id)
		for _, c := range z.cards {
			remaining[c]--
		}
	}
	for c, n := range remaining {
		switch {
		case n > 0:
			return fmt.Errorf("%w: %q missing from zones", ErrConservation, c.Name())
		case n < 0:
			return fmt.Errorf("%w: %q not in deck list", ErrConservation, c.Name())
		}
	}
	return nil
}
