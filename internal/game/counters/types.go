package counters

// CounterType names a kind of power/toughness counter.
type CounterType string

const (
	CounterTypeP1P1 CounterType = "+1/+1"
	CounterTypeM1M1 CounterType = "-1/-1"
	CounterTypeP2P2 CounterType = "+2/+2"
	CounterTypeM2M2 CounterType = "-2/-2"
	CounterTypeP1P0 CounterType = "+1/+0"
	CounterTypeP0P1 CounterType = "+0/+1"
	CounterTypeM1M0 CounterType = "-1/+0"
	CounterTypeM0M1 CounterType = "+0/-1"
)

// String returns the string representation of the counter type.
func (ct CounterType) String() string {
	return string(ct)
}

// Boost returns the power/toughness delta of a single counter of this type.
func (ct CounterType) Boost() (Boost, error) {
	return ParseBoost(string(ct))
}
