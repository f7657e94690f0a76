package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/magefree/mage-deck/internal/cardfile"
)

// ErrDeckNotFound is returned when no deck list is stored under a name.
var ErrDeckNotFound = errors.New("deck not found")

const schema = `
CREATE TABLE IF NOT EXISTS decks (
	name       TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS deck_cards (
	id        UUID PRIMARY KEY,
	deck_name TEXT NOT NULL REFERENCES decks(name) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	number    TEXT NOT NULL,
	card_type TEXT NOT NULL,
	cost      TEXT NOT NULL,
	power     TEXT NOT NULL,
	toughness TEXT NOT NULL,
	rules     TEXT NOT NULL,
	UNIQUE (deck_name, position)
);
`

// DeckRepository persists deck lists as rows of card records.
type DeckRepository struct {
	db DBTX
}

// NewDeckRepository creates a repository over db.
func NewDeckRepository(db DBTX) *DeckRepository {
	return &DeckRepository{db: db}
}

// EnsureSchema creates the tables if they do not exist.
func (r *DeckRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create deck schema: %w", err)
	}
	return nil
}

// SaveDeckList stores records under name, replacing any previous list with
// that name. The write happens in one transaction.
func (r *DeckRepository) SaveDeckList(ctx context.Context, name string, records cardfile.Records) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM decks WHERE name = $1`, name); err != nil {
		return fmt.Errorf("delete deck %q: %w", name, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO decks (name) VALUES ($1)`, name); err != nil {
		return fmt.Errorf("insert deck %q: %w", name, err)
	}

	batch := &pgx.Batch{}
	position := 0
	for rec := range records.All() {
		cost := rec.CostText
		if cost == "" {
			cost = cardfile.FormatCost(rec.Cost)
		}
		batch.Queue(`
			INSERT INTO deck_cards (
				id, deck_name, position, name, number, card_type,
				cost, power, toughness, rules
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(),
			name,
			position,
			rec.Name,
			rec.Number.Raw,
			rec.Type,
			cost,
			rec.Power.Raw,
			rec.Toughness.Raw,
			rec.Rules,
		)
		position++
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert cards for deck %q: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit deck %q: %w", name, err)
	}
	return nil
}

// LoadDeckList returns the records stored under name in their saved order.
func (r *DeckRepository) LoadDeckList(ctx context.Context, name string) (cardfile.Records, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM decks WHERE name = $1)`, name).Scan(&exists); err != nil {
		return cardfile.Records{}, fmt.Errorf("look up deck %q: %w", name, err)
	}
	if !exists {
		return cardfile.Records{}, fmt.Errorf("%w: %q", ErrDeckNotFound, name)
	}

	rows, err := r.db.Query(ctx, `
		SELECT name, number, card_type, cost, power, toughness, rules
		FROM deck_cards
		WHERE deck_name = $1
		ORDER BY position`, name)
	if err != nil {
		return cardfile.Records{}, fmt.Errorf("query cards for deck %q: %w", name, err)
	}
	defer rows.Close()

	records := cardfile.NewRecords()
	for rows.Next() {
		var cardName, number, cardType, cost, power, toughness, rules string
		if err := rows.Scan(&cardName, &number, &cardType, &cost, &power, &toughness, &rules); err != nil {
			return cardfile.Records{}, fmt.Errorf("scan card: %w", err)
		}
		counts, err := cardfile.ParseCost(cost)
		if err != nil {
			return cardfile.Records{}, fmt.Errorf("stored card %q: %w", cardName, err)
		}
		records.Set(cardfile.CardRecord{
			Name:      cardName,
			Number:    cardfile.ParseField(number),
			Type:      cardType,
			Cost:      counts,
			CostText:  cost,
			Power:     cardfile.ParseField(power),
			Toughness: cardfile.ParseField(toughness),
			Rules:     rules,
		})
	}
	if err := rows.Err(); err != nil {
		return cardfile.Records{}, fmt.Errorf("read cards for deck %q: %w", name, err)
	}
	return records, nil
}

// ListDecks returns the stored deck names in alphabetical order.
func (r *DeckRepository) ListDecks(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM decks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return names, nil
}

// DeleteDeck removes the deck list stored under name.
func (r *DeckRepository) DeleteDeck(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM decks WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete deck %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", ErrDeckNotFound, name)
	}
	return nil
}
