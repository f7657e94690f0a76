package cardfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCost is returned for a cost token that is neither a run of
// color letters nor a number.
var ErrInvalidCost = errors.New("invalid cost token")

// ColorlessKey is the cost key set by numeric tokens.
const ColorlessKey = "colorless"

const costLetters = "BWGRUX"

// ParseCost parses a space-separated cost column such as "U U 2 G".
//
// A token made only of the letters B, W, G, R, U and X increments the count
// for that exact token; repeated tokens accumulate. A numeric token sets the
// colorless count, and the last one wins. Empty tokens are skipped.
func ParseCost(s string) (CostCounts, error) {
	var counts CostCounts
	for _, token := range strings.Fields(s) {
		switch {
		case isCostLetters(token):
			counts.Add(token, 1)
		case isNumeric(token):
			n, err := strconv.Atoi(token)
			if err != nil {
				return CostCounts{}, fmt.Errorf("%w: %q", ErrInvalidCost, token)
			}
			counts.Set(ColorlessKey, n)
		default:
			return CostCounts{}, fmt.Errorf("%w: %q", ErrInvalidCost, token)
		}
	}
	return counts, nil
}

// FormatCost renders counts back into cost-column tokens.
func FormatCost(counts CostCounts) string {
	var tokens []string
	for color, n := range counts.All() {
		if color == ColorlessKey {
			tokens = append(tokens, strconv.Itoa(n))
			continue
		}
		for range n {
			tokens = append(tokens, color)
		}
	}
	return strings.Join(tokens, " ")
}

func isCostLetters(token string) bool {
	for _, r := range token {
		if !strings.ContainsRune(costLetters, r) {
			return false
		}
	}
	return true
}

func isNumeric(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return token != ""
}
