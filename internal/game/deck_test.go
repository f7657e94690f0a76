package game_test

import (
	"math/rand"
	"testing"

	"github.com/magefree/mage-deck/internal/game"
	"github.com/magefree/mage-deck/internal/game/mana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newCard(name, cardType string) *game.Card {
	return game.NewCard(name, "", cardType, mana.NewCost(), nil)
}

// bearsAndBolt returns two references to one Bear and one Bolt.
func bearsAndBolt() []*game.Card {
	bear := newCard("Bear", "Creature")
	bolt := newCard("Bolt", game.TypeInstant)
	return []*game.Card{bear, bear, bolt}
}

func newTestDeck(t *testing.T, cards []*game.Card) *game.Deck {
	t.Helper()
	return game.NewDeck(cards, game.WithSeed(7), game.WithLogger(zaptest.NewLogger(t)))
}

func requireConserved(t *testing.T, d *game.Deck) {
	t.Helper()
	require.NoError(t, d.CheckConservation())
	total := 0
	for _, n := range d.Counts() {
		total += n
	}
	require.Equal(t, d.Len(), total)
}

func TestNewDeck(t *testing.T) {
	t.Run("sorted list and shuffled library", func(t *testing.T) {
		cards := []*game.Card{newCard("Opt", game.TypeInstant), newCard("Bear", "Creature"), newCard("Ancestral", game.TypeSorcery)}
		d := newTestDeck(t, cards)

		assert.Equal(t, []string{"Ancestral", "Bear", "Opt"}, d.List().Names())
		assert.ElementsMatch(t, cards, d.Library().Cards())
		assert.Equal(t, 0, d.Hand().Len())
		assert.Equal(t, 0, d.Battlefield().Len())
		assert.Equal(t, 0, d.Graveyard().Len())
		assert.Equal(t, 0, d.Exile().Len())
		assert.Equal(t, "Opt", cards[0].Name(), "caller's slice must not be sorted in place")
		requireConserved(t, d)
	})

	t.Run("empty deck", func(t *testing.T) {
		d := game.NewDeck(nil)
		assert.Equal(t, 0, d.Len())
		assert.Equal(t, "[]", d.String())
		assert.ErrorIs(t, d.Draw(1), game.ErrNotEnoughCards)
		require.NoError(t, d.Draw(0))
	})

	t.Run("same seed gives same library", func(t *testing.T) {
		var cards []*game.Card
		for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
			cards = append(cards, newCard(name, "Creature"))
		}
		d1 := game.NewDeck(cards, game.WithSeed(99))
		d2 := game.NewDeck(cards, game.WithRand(rand.New(rand.NewSource(99))))
		assert.Equal(t, d1.Library().Cards(), d2.Library().Cards())
	})
}

func TestDeck_Draw(t *testing.T) {
	var cards []*game.Card
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		cards = append(cards, newCard(name, "Creature"))
	}

	for n := 0; n <= len(cards); n++ {
		d := newTestDeck(t, cards)
		library := d.Library().Cards()

		require.NoError(t, d.Draw(n))
		assert.Equal(t, library[:n], d.Hand().Cards(), "draw %d keeps order", n)
		assert.Equal(t, library[n:], d.Library().Cards())
		requireConserved(t, d)
	}

	t.Run("appends to the end of the hand", func(t *testing.T) {
		d := newTestDeck(t, cards)
		library := d.Library().Cards()
		require.NoError(t, d.Draw(1))
		require.NoError(t, d.Draw(2))
		assert.Equal(t, library[:3], d.Hand().Cards())
	})

	t.Run("short library draws nothing", func(t *testing.T) {
		d := newTestDeck(t, cards)
		require.NoError(t, d.Draw(3))
		library := d.Library().Cards()
		hand := d.Hand().Cards()

		err := d.Draw(3)
		assert.ErrorIs(t, err, game.ErrNotEnoughCards)
		assert.Equal(t, library, d.Library().Cards())
		assert.Equal(t, hand, d.Hand().Cards())
		requireConserved(t, d)
	})
}

func TestDeck_Mill(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())
	top := d.Library().At(0)

	require.NoError(t, d.Mill(1))
	assert.Equal(t, []*game.Card{top}, d.Graveyard().Cards())
	assert.Equal(t, 2, d.Library().Len())

	assert.ErrorIs(t, d.Mill(3), game.ErrNotEnoughCards)
	assert.Equal(t, 2, d.Library().Len())
	assert.Equal(t, 1, d.Graveyard().Len())
	requireConserved(t, d)
}

func TestDeck_BearAndBoltScenario(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())

	require.NoError(t, d.Draw(3))
	assert.Equal(t, 3, d.Hand().Len())

	require.NoError(t, d.Play(game.ByName("Bolt")))
	require.NoError(t, d.Play(game.ByName("Bear")))

	assert.Equal(t, []string{"Bear"}, d.Hand().Names())
	assert.Equal(t, []string{"Bear"}, d.Battlefield().Names())
	assert.Equal(t, []string{"Bolt"}, d.Graveyard().Names())
	assert.Equal(t, 0, d.Library().Len())
	requireConserved(t, d)
}

func TestDeck_Play(t *testing.T) {
	sorcery := newCard("Divination", game.TypeSorcery)
	artifact := newCard("Sol Ring", "Artifact")
	d := newTestDeck(t, []*game.Card{sorcery, artifact})
	require.NoError(t, d.Draw(2))

	require.NoError(t, d.Play(game.ByValue(sorcery)))
	require.NoError(t, d.Play(game.ByValue(artifact)))
	assert.Equal(t, []string{"Divination"}, d.Graveyard().Names())
	assert.Equal(t, []string{"Sol Ring"}, d.Battlefield().Names())

	err := d.Play(game.ByName("Sol Ring"))
	assert.ErrorIs(t, err, game.ErrCardNotFound)
	assert.Equal(t, 1, d.Battlefield().Len())
	requireConserved(t, d)
}

func TestDeck_DiscardAndKill(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())
	require.NoError(t, d.Draw(3))

	require.NoError(t, d.Discard(game.ByName("Bolt")))
	assert.Equal(t, []string{"Bolt"}, d.Graveyard().Names())

	assert.ErrorIs(t, d.Discard(game.ByName("Bolt")), game.ErrCardNotFound)
	assert.Equal(t, 1, d.Graveyard().Len())

	assert.ErrorIs(t, d.KillCard(game.ByName("Bear")), game.ErrCardNotFound)

	require.NoError(t, d.Play(game.ByName("Bear")))
	require.NoError(t, d.KillCard(game.ByName("Bear")))
	assert.Equal(t, 0, d.Battlefield().Len())
	assert.Equal(t, []string{"Bolt", "Bear"}, d.Graveyard().Names())
	requireConserved(t, d)
}

func TestDeck_ExileCard(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())

	top := d.Library().At(0)
	require.NoError(t, d.ExileCard(game.ByValue(top), game.ZoneLibrary))
	assert.Equal(t, []*game.Card{top}, d.Exile().Cards())

	require.NoError(t, d.Draw(2))
	for _, c := range d.Hand().Cards() {
		require.NoError(t, d.ExileCard(game.ByValue(c), game.ZoneHand))
	}
	assert.Equal(t, 3, d.Exile().Len())
	assert.Equal(t, 0, d.Hand().Len())

	err := d.ExileCard(game.ByName("Bear"), game.ZoneGraveyard)
	assert.ErrorIs(t, err, game.ErrCardNotFound)

	err = d.ExileCard(game.ByName("Bear"), game.ZoneDeckList)
	assert.ErrorIs(t, err, game.ErrUnknownZone)
	assert.Equal(t, 3, d.List().Len())

	err = d.ExileCard(game.ByName("Bear"), game.ZoneID(42))
	assert.ErrorIs(t, err, game.ErrUnknownZone)
	requireConserved(t, d)
}

func TestDeck_Zone(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())
	for _, id := range append(game.GameplayZones, game.ZoneDeckList) {
		z, err := d.Zone(id)
		require.NoError(t, err, id.String())
		assert.NotNil(t, z)
	}
	assert.Equal(t, "battlefield", game.ZoneBattlefield.String())
	assert.Equal(t, "unknown", game.ZoneID(-1).String())
}

func TestDeck_ConservationUnderRandomPlay(t *testing.T) {
	var cards []*game.Card
	for _, name := range []string{"Bear", "Elf", "Giant", "Wolf"} {
		c := newCard(name, "Creature")
		cards = append(cards, c, c, c)
	}
	for _, name := range []string{"Bolt", "Opt", "Shock"} {
		c := newCard(name, game.TypeInstant)
		cards = append(cards, c, c)
	}

	rng := rand.New(rand.NewSource(1234))
	d := game.NewDeck(cards, game.WithSeed(1234))

	pick := func(z *game.Zone) game.CardRef {
		if z.Len() == 0 {
			return game.ByName("Nothing")
		}
		return game.ByValue(z.At(rng.Intn(z.Len())))
	}

	for i := 0; i < 500; i++ {
		// errors are expected when a zone is empty or short; the invariant
		// must hold regardless
		switch rng.Intn(6) {
		case 0:
			_ = d.Draw(rng.Intn(3))
		case 1:
			_ = d.Mill(rng.Intn(3))
		case 2:
			_ = d.Play(pick(d.Hand()))
		case 3:
			_ = d.Discard(pick(d.Hand()))
		case 4:
			_ = d.KillCard(pick(d.Battlefield()))
		case 5:
			from := game.GameplayZones[rng.Intn(len(game.GameplayZones))]
			z, err := d.Zone(from)
			require.NoError(t, err)
			_ = d.ExileCard(pick(z), from)
		}
		requireConserved(t, d)
	}
}

func TestDeck_CheckConservationDetectsTampering(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())

	// adding a card directly to a zone bypasses the deck transitions
	require.NoError(t, d.Hand().AddCard(game.ByValue(newCard("Stray", "Creature"))))
	assert.ErrorIs(t, d.CheckConservation(), game.ErrConservation)

	d.Reset(bearsAndBolt())
	require.NoError(t, d.Library().RemoveCard(game.ByName("Bolt")))
	assert.ErrorIs(t, d.CheckConservation(), game.ErrConservation)
}
