package mana

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor is returned when a color string contains anything other
// than the five color letters, or is not one of the colorless spellings.
var ErrInvalidColor = errors.New("invalid color")

// ManaType represents a single type of mana.
type ManaType string

const (
	ManaWhite     ManaType = "WHITE"
	ManaBlue      ManaType = "BLUE"
	ManaBlack     ManaType = "BLACK"
	ManaRed       ManaType = "RED"
	ManaGreen     ManaType = "GREEN"
	ManaColorless ManaType = "COLORLESS"
)

// validSymbols maps each color letter to its mana type. U is blue.
var validSymbols = map[rune]ManaType{
	'B': ManaBlack,
	'W': ManaWhite,
	'G': ManaGreen,
	'R': ManaRed,
	'U': ManaBlue,
}

// Color is a validated color identity: "colorless", or any combination of the
// letters B, W, G, R and U kept exactly as written.
type Color string

// Colorless is the normalized colorless value.
const Colorless Color = "colorless"

// ParseColor validates s and returns the corresponding Color.
// "colorless" and "X" both normalize to Colorless. Any other string must be
// made only of color letters; the empty string is accepted.
func ParseColor(s string) (Color, error) {
	if s == "colorless" || s == "X" {
		return Colorless, nil
	}
	for _, r := range s {
		if _, ok := validSymbols[r]; !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return Color(s), nil
}

// MustParseColor is like ParseColor but panics on invalid input.
// Intended for constants and tests.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string {
	return string(c)
}

// IsColorless reports whether c is the colorless value.
func (c Color) IsColorless() bool {
	return c == Colorless
}

// Symbols returns the mana types of the letters in c, in written order.
// Colorless yields ManaColorless.
func (c Color) Symbols() []ManaType {
	if c.IsColorless() {
		return []ManaType{ManaColorless}
	}
	types := make([]ManaType, 0, len(c))
	for _, r := range strings.ToUpper(string(c)) {
		if mt, ok := validSymbols[r]; ok {
			types = append(types, mt)
		}
	}
	return types
}
