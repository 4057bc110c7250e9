package engine

import "fmt"

const (
	// MinAttributeValue and MaxAttributeValue bound every numeric attribute.
	MinAttributeValue = 1
	MaxAttributeValue = 99
)

// CostBucket prices every value up to and including UpTo at PerPoint AP.
type CostBucket struct {
	UpTo     int
	PerPoint int
}

// CostSchedule is an ordered list of buckets. Values past the last bucket pay
// the last bucket's price.
type CostSchedule []CostBucket

// FC26Schedule is the fine-grained nonlinear schedule.
var FC26Schedule = CostSchedule{
	{UpTo: 59, PerPoint: 1},
	{UpTo: 64, PerPoint: 2},
	{UpTo: 69, PerPoint: 4},
	{UpTo: 74, PerPoint: 6},
	{UpTo: 79, PerPoint: 8},
	{UpTo: 84, PerPoint: 10},
	{UpTo: 89, PerPoint: 15},
	{UpTo: 94, PerPoint: 20},
	{UpTo: 99, PerPoint: 25},
}

// LegacySchedule is the coarse schedule of the first sandbox revision.
var LegacySchedule = CostSchedule{
	{UpTo: 29, PerPoint: 0},
	{UpTo: 39, PerPoint: 1},
	{UpTo: 49, PerPoint: 2},
	{UpTo: 59, PerPoint: 3},
	{UpTo: 69, PerPoint: 4},
	{UpTo: 79, PerPoint: 5},
	{UpTo: 89, PerPoint: 6},
	{UpTo: 99, PerPoint: 7},
}

// Cost returns the AP paid to move into target from target-1.
// Values below the first bucket fall into it; values above the last one are
// clamped to the last bucket's price.
func (s CostSchedule) Cost(target int) int {
	if len(s) == 0 {
		return 0
	}
	for _, b := range s {
		if target <= b.UpTo {
			return b.PerPoint
		}
	}
	return s[len(s)-1].PerPoint
}

// RangeCost sums Cost(v) for v in (from, to]. It is 0 when to <= from.
func (s CostSchedule) RangeCost(from, to int) int {
	if to <= from {
		return 0
	}
	total := 0
	for v := from + 1; v <= to; v++ {
		total += s.Cost(v)
	}
	return total
}

// Validate checks thresholds are strictly increasing and prices never drop.
func (s CostSchedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("cost schedule is empty")
	}
	for i, b := range s {
		if b.PerPoint < 0 {
			return fmt.Errorf("cost bucket %d: negative price %d", i, b.PerPoint)
		}
		if i == 0 {
			continue
		}
		prev := s[i-1]
		if b.UpTo <= prev.UpTo {
			return fmt.Errorf("cost bucket %d: threshold %d not above %d", i, b.UpTo, prev.UpTo)
		}
		if b.PerPoint < prev.PerPoint {
			return fmt.Errorf("cost bucket %d: price %d below previous %d", i, b.PerPoint, prev.PerPoint)
		}
	}
	return nil
}
