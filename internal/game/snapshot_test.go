package game_test

import (
	"testing"

	"github.com/magefree/mage-deck/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func tenCards() []*game.Card {
	cards := make([]*game.Card, 0, 10)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		cards = append(cards, newCard(name, "Creature"))
	}
	return cards
}

func TestSnapshot_Zones(t *testing.T) {
	d := newTestDeck(t, bearsAndBolt())
	require.NoError(t, d.Draw(3))
	require.NoError(t, d.Play(game.ByName("Bolt")))

	s := d.Snapshot()
	assert.Equal(t, []string{"Bear", "Bear", "Bolt"}, s.Zones[game.ZoneDeckList])
	assert.Empty(t, s.Zones[game.ZoneLibrary])
	assert.Equal(t, []string{"Bolt"}, s.Zones[game.ZoneGraveyard])
	assert.Len(t, s.Zones[game.ZoneHand], 2)
}

func TestSnapshot_ChecksumDeterministic(t *testing.T) {
	first := game.NewDeck(tenCards(), game.WithSeed(42), game.WithLogger(zaptest.NewLogger(t)))
	second := game.NewDeck(tenCards(), game.WithSeed(42), game.WithLogger(zaptest.NewLogger(t)))
	assert.Equal(t, first.Snapshot().Checksum(), second.Snapshot().Checksum())

	require.NoError(t, first.Draw(2))
	assert.NotEqual(t, first.Snapshot().Checksum(), second.Snapshot().Checksum())
	require.NoError(t, second.Draw(2))
	assert.Equal(t, first.Snapshot().Checksum(), second.Snapshot().Checksum())
}

func TestSnapshot_ChecksumOrderSensitive(t *testing.T) {
	a := &game.Snapshot{Zones: map[game.ZoneID][]string{game.ZoneLibrary: {"A", "B"}}}
	b := &game.Snapshot{Zones: map[game.ZoneID][]string{game.ZoneLibrary: {"B", "A"}}}
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	c := &game.Snapshot{Zones: map[game.ZoneID][]string{game.ZoneHand: {"A", "B"}}}
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}

func TestSnapshot_BinaryRoundTrip(t *testing.T) {
	d := newTestDeck(t, tenCards())
	require.NoError(t, d.Draw(4))
	require.NoError(t, d.Mill(2))

	original := d.Snapshot()
	data, err := original.MarshalBinary()
	require.NoError(t, err)

	var decoded game.Snapshot
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, original.Checksum(), decoded.Checksum())

	assert.Error(t, decoded.UnmarshalBinary([]byte("not gob")))
}
