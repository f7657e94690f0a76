package counters

import "fmt"

// CombatAbility holds a creature's power and toughness.
//
// Base values change through ModifyCombatAbility; counters accumulate
// separately through AddCounter. The effective values are always base plus
// counters and are computed on demand.
type CombatAbility struct {
	power            int
	toughness        int
	powerCounter     int
	toughnessCounter int
}

// NewCombatAbility creates a combat ability with the given base values and no
// counters.
func NewCombatAbility(power, toughness int) *CombatAbility {
	return &CombatAbility{power: power, toughness: toughness}
}

// Power returns the base power.
func (ca *CombatAbility) Power() int {
	return ca.power
}

// Toughness returns the base toughness.
func (ca *CombatAbility) Toughness() int {
	return ca.toughness
}

// AddCounter adds power and toughness counters. Deltas may be negative and
// the totals have no floor.
func (ca *CombatAbility) AddCounter(power, toughness int) {
	ca.powerCounter += power
	ca.toughnessCounter += toughness
}

// AddBoostCounters adds n counters of the given boost.
func (ca *CombatAbility) AddBoostCounters(boost Boost, n int) {
	total := boost.Times(n)
	ca.AddCounter(total.Power, total.Toughness)
}

// Counters returns the accumulated counter deltas.
func (ca *CombatAbility) Counters() Boost {
	return Boost{Power: ca.powerCounter, Toughness: ca.toughnessCounter}
}

// ModifyCombatAbility changes the base power and toughness.
func (ca *CombatAbility) ModifyCombatAbility(power, toughness int) {
	ca.power += power
	ca.toughness += toughness
}

// EffectiveCombatAbility returns base plus counters.
func (ca *CombatAbility) EffectiveCombatAbility() (power, toughness int) {
	return ca.power + ca.powerCounter, ca.toughness + ca.toughnessCounter
}

// String renders the base (printed) values as "power/toughness", or "" when
// either is zero. Counters are not included.
func (ca *CombatAbility) String() string {
	if ca == nil || ca.power == 0 || ca.toughness == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", ca.power, ca.toughness)
}
