package engine

import (
	"fmt"
	"strings"
)

const (
	RulesetFC26       = "fc26"
	RulesetFC26Legacy = "fc26-legacy"
)

// Ruleset bundles the tables that drive pricing and budgets. Sessions take a
// Ruleset by value so tables can be swapped without touching the engine.
type Ruleset struct {
	Name     string
	Schedule CostSchedule
	Stars    StarScale
	Awards   AwardTable
	MaxLevel int
}

func FC26Ruleset() Ruleset {
	return Ruleset{
		Name:     RulesetFC26,
		Schedule: FC26Schedule,
		Stars:    DefaultStarScale,
		Awards:   FC26Awards,
		MaxLevel: 50,
	}
}

func LegacyRuleset() Ruleset {
	return Ruleset{
		Name:     RulesetFC26Legacy,
		Schedule: LegacySchedule,
		Stars:    DefaultStarScale,
		Awards:   FC26Awards[:40],
		MaxLevel: 40,
	}
}

// RulesetByName resolves a preset name (case-insensitive).
func RulesetByName(name string) (Ruleset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RulesetFC26:
		return FC26Ruleset(), nil
	case RulesetFC26Legacy, "legacy":
		return LegacyRuleset(), nil
	default:
		return Ruleset{}, fmt.Errorf("unknown ruleset: %q", name)
	}
}

func (r Ruleset) Validate() error {
	if r.MaxLevel < 1 {
		return fmt.Errorf("ruleset %s: max level must be >= 1 (got %d)", r.Name, r.MaxLevel)
	}
	if err := r.Schedule.Validate(); err != nil {
		return fmt.Errorf("ruleset %s: %w", r.Name, err)
	}
	if err := r.Stars.Validate(); err != nil {
		return fmt.Errorf("ruleset %s: %w", r.Name, err)
	}
	if err := r.Awards.Validate(); err != nil {
		return fmt.Errorf("ruleset %s: %w", r.Name, err)
	}
	return nil
}

// ClampLevel forces level into [1, MaxLevel].
func (r Ruleset) ClampLevel(level int) int {
	return ClampLevel(level, r.MaxLevel)
}

// Granted returns the AP granted at level after clamping.
func (r Ruleset) Granted(level int) int {
	return r.Awards.Granted(r.ClampLevel(level))
}

// StepCost is the price of moving attr one step up from its current state.
// It reports false when attr is already at its ceiling.
func (r Ruleset) StepCost(attr Attribute) (int, bool) {
	if attr.IsStarBased() {
		if attr.Stars >= MaxStars {
			return 0, false
		}
		return r.Stars.StepCost(r.Schedule, attr.Stars+1), true
	}
	if attr.Value >= MaxAttributeValue {
		return 0, false
	}
	return r.Schedule.Cost(attr.Value + 1), true
}

// RefundCost is what moving attr one step down returns: the price that was
// paid to reach its current state. It reports false at the floor.
func (r Ruleset) RefundCost(attr Attribute) (int, bool) {
	if attr.IsStarBased() {
		if attr.Stars <= MinStars {
			return 0, false
		}
		return r.Schedule.Cost(r.Stars.Value(attr.Stars)), true
	}
	if attr.Value <= MinAttributeValue {
		return 0, false
	}
	return r.Schedule.Cost(attr.Value), true
}

// SpendAbove prices the distance from base up to cur. Attributes at or below
// baseline cost nothing. Star attributes are priced over the range of their
// representative values.
func (r Ruleset) SpendAbove(base, cur Attribute) int {
	if cur.IsStarBased() {
		return r.Schedule.RangeCost(r.Stars.Value(base.Stars), r.Stars.Value(cur.Stars))
	}
	return r.Schedule.RangeCost(base.Value, cur.Value)
}
