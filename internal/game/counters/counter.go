package counters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBoost is returned when a counter name is not a power/toughness
// boost such as "+1/+1" or "-1/-1".
var ErrInvalidBoost = errors.New("invalid boost counter")

// Boost is a power/toughness delta carried by a single counter
// (e.g., +1/+1, -1/-1, +1/+0).
type Boost struct {
	Power     int
	Toughness int
}

// Name renders the boost in counter notation (e.g., "+1/+1", "-1/-1").
func (b Boost) Name() string {
	return formatBoost(b.Power) + "/" + formatBoost(b.Toughness)
}

func (b Boost) String() string {
	return b.Name()
}

// Times returns the boost scaled by n counters.
func (b Boost) Times(n int) Boost {
	return Boost{Power: b.Power * n, Toughness: b.Toughness * n}
}

func formatBoost(value int) string {
	if value >= 0 {
		return "+" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// ParseBoost parses a boost counter name (e.g., "+1/+1") into its deltas.
func ParseBoost(name string) (Boost, error) {
	power, toughness, ok := strings.Cut(name, "/")
	if !ok {
		return Boost{}, fmt.Errorf("%w: %q", ErrInvalidBoost, name)
	}
	p, ok := parseBoostValue(power)
	if !ok {
		return Boost{}, fmt.Errorf("%w: %q", ErrInvalidBoost, name)
	}
	t, ok := parseBoostValue(toughness)
	if !ok {
		return Boost{}, fmt.Errorf("%w: %q", ErrInvalidBoost, name)
	}
	return Boost{Power: p, Toughness: t}, nil
}

// parseBoostValue accepts an optionally signed decimal integer.
func parseBoostValue(s string) (int, bool) {
	if s == "" || s == "+" || s == "-" {
		return 0, false
	}
	for i, r := range s {
		if i == 0 && (r == '+' || r == '-') {
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}
