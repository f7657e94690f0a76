package mana

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColorNotFound is returned by GetAmount when the cost has no entry for the
// requested color.
var ErrColorNotFound = errors.New("color not in cost")

// ColorAmount is one (color, amount) entry of a cost.
type ColorAmount struct {
	Color  Color
	Amount int
}

// Cost represents the price of a card as an ordered list of color amounts.
// Entries are kept exactly as given; the same color may appear more than once.
type Cost struct {
	parts []ColorAmount
}

// NewCost creates a cost from the given entries, preserving their order.
func NewCost(parts ...ColorAmount) Cost {
	return Cost{parts: append([]ColorAmount(nil), parts...)}
}

// GetAmount returns the amount of the first entry whose color equals color.
func (c Cost) GetAmount(color Color) (int, error) {
	for _, p := range c.parts {
		if p.Color == color {
			return p.Amount, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrColorNotFound, color)
}

// Parts returns a copy of the entries in construction order.
func (c Cost) Parts() []ColorAmount {
	return append([]ColorAmount(nil), c.parts...)
}

// Len returns the number of entries.
func (c Cost) Len() int {
	return len(c.parts)
}

// Total returns the sum of every amount (the card's mana value).
func (c Cost) Total() int {
	total := 0
	for _, p := range c.parts {
		total += p.Amount
	}
	return total
}

// String renders the cost as "amount color" pairs joined by ", ".
func (c Cost) String() string {
	parts := make([]string, 0, len(c.parts))
	for _, p := range c.parts {
		parts = append(parts, fmt.Sprintf("%d %s", p.Amount, p.Color))
	}
	return strings.Join(parts, ", ")
}
