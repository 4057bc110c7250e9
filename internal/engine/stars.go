package engine

import "fmt"

const (
	MinStars = 1
	MaxStars = 5
)

// StarScale maps a star rating to the numeric value used for pricing.
// Index 0 is a sentinel for attributes that are not star based.
type StarScale [MaxStars + 1]int

var DefaultStarScale = StarScale{0, 40, 60, 75, 85, 95}

// Value returns the representative value for stars, clamped into [1,5].
func (s StarScale) Value(stars int) int {
	return s[clampStars(stars)]
}

// StepCost is the AP to go from stars-1 to stars: the flat price of the
// target representative value, not a range over the skipped gap.
func (s StarScale) StepCost(schedule CostSchedule, stars int) int {
	return schedule.Cost(s.Value(stars))
}

func (s StarScale) Validate() error {
	for i := MinStars + 1; i <= MaxStars; i++ {
		if s[i] <= s[i-1] {
			return fmt.Errorf("star %d value %d not above star %d value %d", i, s[i], i-1, s[i-1])
		}
	}
	if s[MinStars] < MinAttributeValue || s[MaxStars] > MaxAttributeValue {
		return fmt.Errorf("star values must lie in [%d,%d]", MinAttributeValue, MaxAttributeValue)
	}
	return nil
}

func clampStars(stars int) int {
	if stars < MinStars {
		return MinStars
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}
