package engine

import "fmt"

// Mutation is the outcome of a single increment or decrement. APDelta is
// positive for spending and negative for refunds; it is 0 when nothing was
// applied.
type Mutation struct {
	Attribute string
	Applied   bool
	APDelta   int
	Value     int
	Stars     int
}

// AttributeStore holds the current attribute set. It prices and commits
// single-step changes but keeps no budget of its own.
type AttributeStore struct {
	rules Ruleset
	set   AttributeSet
}

func NewAttributeStore(rules Ruleset, baseline AttributeSet) *AttributeStore {
	s := &AttributeStore{rules: rules}
	s.Reset(baseline)
	return s
}

// Reset replaces the whole set with a normalized copy of baseline.
func (s *AttributeStore) Reset(baseline AttributeSet) {
	s.set = normalizeSet(s.rules, baseline)
}

// Set returns a copy of the current attribute set.
func (s *AttributeStore) Set() AttributeSet {
	return s.set.Clone()
}

func (s *AttributeStore) Get(name string) (Attribute, bool) {
	return s.set.Get(name)
}

// NextCost is the price of the next increment of name. ok is false at the
// ceiling.
func (s *AttributeStore) NextCost(name string) (cost int, ok bool, err error) {
	a, found := s.set.Get(name)
	if !found {
		return 0, false, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	cost, ok = s.rules.StepCost(a)
	return cost, ok, nil
}

// Increment raises name by one step if its price fits in available.
// On rejection nothing changes and the error wraps ErrBudgetExceeded or
// ErrBoundaryReached.
func (s *AttributeStore) Increment(name string, available int) (Mutation, error) {
	a, found := s.set.Get(name)
	if !found {
		return Mutation{Attribute: name}, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	rejected := Mutation{Attribute: name, Value: a.Value, Stars: a.Stars}

	cost, ok := s.rules.StepCost(a)
	if !ok {
		return rejected, ceilingError(a)
	}
	if cost > available {
		return rejected, BudgetError{Attribute: name, Cost: cost, Available: available}
	}

	if a.IsStarBased() {
		a.Stars++
		a.Value = s.rules.Stars.Value(a.Stars)
	} else {
		a.Value++
	}
	s.set.set(a)
	return Mutation{Attribute: name, Applied: true, APDelta: cost, Value: a.Value, Stars: a.Stars}, nil
}

// Decrement lowers name by one step and refunds the price paid to reach the
// current state. Star attributes floor at one star, numeric ones at 1.
func (s *AttributeStore) Decrement(name string) (Mutation, error) {
	a, found := s.set.Get(name)
	if !found {
		return Mutation{Attribute: name}, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}

	refund, ok := s.rules.RefundCost(a)
	if !ok {
		return Mutation{Attribute: name, Value: a.Value, Stars: a.Stars}, floorError(a)
	}

	if a.IsStarBased() {
		a.Stars--
		a.Value = s.rules.Stars.Value(a.Stars)
	} else {
		a.Value--
	}
	s.set.set(a)
	return Mutation{Attribute: name, Applied: true, APDelta: -refund, Value: a.Value, Stars: a.Stars}, nil
}

func ceilingError(a Attribute) error {
	if a.IsStarBased() {
		return BoundaryError{Attribute: a.Name, Limit: MaxStars, Stars: true}
	}
	return BoundaryError{Attribute: a.Name, Limit: MaxAttributeValue}
}

func floorError(a Attribute) error {
	if a.IsStarBased() {
		return BoundaryError{Attribute: a.Name, Limit: MinStars, Stars: true}
	}
	return BoundaryError{Attribute: a.Name, Limit: MinAttributeValue}
}

// normalizeSet clones set and restores the attribute invariants: numeric
// values in range, star ratings in range with Value mirroring the scale.
func normalizeSet(rules Ruleset, set AttributeSet) AttributeSet {
	out := set.Clone()
	for ci := range out.Categories {
		attrs := out.Categories[ci].Attributes
		for ai := range attrs {
			attrs[ai] = normalizeAttribute(rules, attrs[ai])
		}
	}
	return out
}

func normalizeAttribute(rules Ruleset, a Attribute) Attribute {
	if a.Stars < 0 {
		a.Stars = 0
	}
	if a.IsStarBased() {
		a.Stars = clampStars(a.Stars)
		a.Value = rules.Stars.Value(a.Stars)
		return a
	}
	if a.Value < MinAttributeValue {
		a.Value = MinAttributeValue
	}
	if a.Value > MaxAttributeValue {
		a.Value = MaxAttributeValue
	}
	return a
}
