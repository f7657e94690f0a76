package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/magefree/mage-deck/internal/config"
	"github.com/magefree/mage-deck/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const cliDeck = "Name\tNumber\tType\tCost\tPower\tToughness\tRules\n" +
	"Grizzly Bears\t4\tCreature\t1 G\t2\t2\t\n" +
	"Lightning Bolt\t4\tInstant\tR\t\t\tLightning Bolt deals 3 damage to any target.\n" +
	"Forest\t2\tBasic Land\t\t\t\t\n"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.tsv")
	require.NoError(t, os.WriteFile(path, []byte(cliDeck), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Deck.Path = path
	cfg.Deck.Seed = 11
	return cfg
}

func TestRun_PrintsZones(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &out))

	s := out.String()
	assert.Contains(t, s, "Deck (10 cards)")
	assert.Contains(t, s, "library:      3")
	assert.Contains(t, s, "hand:         7")
	assert.Contains(t, s, "Checksum: ")
	assert.Contains(t, s, "Mana curve:")
	assert.Contains(t, s, "GREEN=4")
	assert.Contains(t, s, "RED=4")
	assert.Contains(t, s, "COLORLESS=4")
}

func TestRun_SameSeedSameHand(t *testing.T) {
	cfg := testConfig(t)

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &first))
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &second))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_HandLargerThanLibrary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Deck.OpeningHand = 40

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &out))
	assert.Contains(t, out.String(), "hand:        10")
}

func TestRun_WritesReplay(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	*replayDir = dir
	t.Cleanup(func() { *replayDir = "" })

	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &bytes.Buffer{}))

	replay, err := game.LoadReplayFromFile(dir, "deck")
	require.NoError(t, err)
	require.Equal(t, 2, replay.Len(), "built deck plus opening draw")
	first, ok := replay.Frame(0)
	require.True(t, ok)
	assert.Len(t, first.Zones[game.ZoneDeckList], 10)
	assert.Len(t, first.Zones[game.ZoneLibrary], 10)
	last, _ := replay.Frame(1)
	assert.Len(t, last.Zones[game.ZoneHand], 7)
}

func TestReplayName(t *testing.T) {
	assert.Equal(t, "burn", replayName("/decks/burn.tsv"))
	assert.Equal(t, "mono red", replayName("database:mono red"))
	assert.Equal(t, "deck", replayName(""))
}

func TestRun_Errors(t *testing.T) {
	t.Run("no deck path", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Deck.Path = ""
		err := run(context.Background(), cfg, zaptest.NewLogger(t), &bytes.Buffer{})
		assert.ErrorContains(t, err, "no deck list")
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Deck.Path = filepath.Join(t.TempDir(), "absent.tsv")
		err := run(context.Background(), cfg, zaptest.NewLogger(t), &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		for _, level := range []string{"debug", "info", "warn", "error", "other"} {
			logger, err := initLogger(config.LoggingConfig{Level: level, Format: format})
			require.NoError(t, err, "%s/%s", format, level)
			assert.NotNil(t, logger)
		}
	}
}
