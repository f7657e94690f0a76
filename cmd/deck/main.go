package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/magefree/mage-deck/internal/cardfile"
	"github.com/magefree/mage-deck/internal/config"
	"github.com/magefree/mage-deck/internal/game"
	"github.com/magefree/mage-deck/internal/game/mana"
	"github.com/magefree/mage-deck/internal/repository"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	deckFile   = flag.String("file", "", "deck list to import (overrides deck.path)")
	deckName   = flag.String("deck", "", "load the named deck list from the database instead of a file")
	seed       = flag.Int64("seed", 0, "shuffle seed (overrides deck.seed; 0 keeps the configured value)")
	handSize   = flag.Int("hand", -1, "opening hand size (overrides deck.opening_hand)")
	saveAs     = flag.String("save", "", "store the imported deck list in the database under this name")
	replayDir  = flag.String("replay", "", "write a replay of the session's zone states to this directory")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting deck tool",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("deck tool failed", zap.Error(err))
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *deckFile != "" {
		cfg.Deck.Path = *deckFile
	}
	if *seed != 0 {
		cfg.Deck.Seed = *seed
	}
	if *handSize >= 0 {
		cfg.Deck.OpeningHand = *handSize
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	var repo *repository.DeckRepository
	if cfg.Database.Enabled {
		db, err := repository.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer db.Close()
		repo = repository.NewDeckRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	records, source, err := loadRecords(ctx, cfg, repo)
	if err != nil {
		return err
	}
	logger.Info("deck list loaded",
		zap.String("source", source),
		zap.Int("distinct_cards", records.Len()),
	)

	if *saveAs != "" {
		if repo == nil {
			return fmt.Errorf("-save requires database.enabled")
		}
		if err := repo.SaveDeckList(ctx, *saveAs, records); err != nil {
			return err
		}
		logger.Info("deck list saved", zap.String("deck", *saveAs))
	}

	opts := []game.Option{game.WithLogger(logger)}
	if cfg.Deck.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Deck.Seed))
	}
	var replay *game.Replay
	if *replayDir != "" {
		replay = game.NewReplay(replayName(source))
		opts = append(opts, game.WithReplay(replay))
	}
	cards, err := game.CardsFromRecords(records)
	if err != nil {
		return err
	}
	deck := game.NewDeck(cards, opts...)
	logger.Info("deck imported",
		zap.Int("distinct_cards", records.Len()),
		zap.Int("total_cards", len(cards)),
	)

	hand := min(cfg.Deck.OpeningHand, deck.Library().Len())
	if err := deck.Draw(hand); err != nil {
		return err
	}
	if err := deck.CheckConservation(); err != nil {
		return err
	}

	printSummary(out, deck)

	if replay != nil {
		if err := replay.SaveToFile(*replayDir); err != nil {
			return err
		}
		logger.Info("replay saved",
			zap.String("dir", *replayDir),
			zap.String("name", replay.Name()),
			zap.Int("frames", replay.Len()),
		)
	}
	return nil
}

// replayName derives a file-safe replay name from a deck source.
func replayName(source string) string {
	name := strings.TrimPrefix(source, "database:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" || name == "." {
		return "deck"
	}
	return name
}

func loadRecords(ctx context.Context, cfg *config.Config, repo *repository.DeckRepository) (cardfile.Records, string, error) {
	if *deckName != "" {
		if repo == nil {
			return cardfile.Records{}, "", fmt.Errorf("-deck requires database.enabled")
		}
		records, err := repo.LoadDeckList(ctx, *deckName)
		return records, "database:" + *deckName, err
	}
	if cfg.Deck.Path == "" {
		return cardfile.Records{}, "", fmt.Errorf("no deck list: set deck.path, -file or -deck")
	}
	path, err := filepath.Abs(cfg.Deck.Path)
	if err != nil {
		return cardfile.Records{}, "", fmt.Errorf("resolve deck path: %w", err)
	}
	records, err := cardfile.ParseFile(path)
	return records, path, err
}

func printSummary(out io.Writer, deck *game.Deck) {
	fmt.Fprintf(out, "Deck (%d cards): %s\n", deck.Len(), deck)
	for _, id := range game.GameplayZones {
		z, _ := deck.Zone(id)
		fmt.Fprintf(out, "%-12s %2d %s\n", id.String()+":", z.Len(), z)
	}
	fmt.Fprintf(out, "Checksum: %s\n", deck.Snapshot().Checksum())

	curve := make(map[int]int)
	colors := make(map[mana.ManaType]int)
	maxValue := 0
	for _, c := range deck.List().All() {
		value := c.Cost().Total()
		curve[value]++
		maxValue = max(maxValue, value)
		for _, part := range c.Cost().Parts() {
			for _, mt := range part.Color.Symbols() {
				colors[mt] += part.Amount
			}
		}
	}

	fmt.Fprintln(out, "Mana curve:")
	for v := 0; v <= maxValue; v++ {
		if curve[v] == 0 {
			continue
		}
		fmt.Fprintf(out, "  %2d: %s\n", v, strings.Repeat("#", curve[v]))
	}

	fmt.Fprint(out, "Mana symbols:")
	for _, mt := range []mana.ManaType{mana.ManaWhite, mana.ManaBlue, mana.ManaBlack, mana.ManaRed, mana.ManaGreen, mana.ManaColorless} {
		if colors[mt] > 0 {
			fmt.Fprintf(out, " %s=%d", mt, colors[mt])
		}
	}
	fmt.Fprintln(out)
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
