package engine

import "fmt"

// AwardTable holds the AP granted on reaching each level; index 0 is level 1.
type AwardTable []int

// FC26Awards is the 50-level award table.
var FC26Awards = AwardTable{
	40, 7, 7, 7, 15, 8, 8, 8, 8, 20,
	10, 10, 10, 10, 20, 10, 10, 10, 10, 35,
	15, 15, 15, 15, 30, 20, 20, 20, 20, 50,
	20, 20, 20, 20, 30, 20, 20, 20, 20, 40,
	20, 20, 20, 20, 35, 20, 20, 20, 20, 50,
}

// Granted returns the cumulative AP for level. Levels past the end of the
// table receive nothing more; callers clamp level first.
func (t AwardTable) Granted(level int) int {
	if level > len(t) {
		level = len(t)
	}
	total := 0
	for i := 0; i < level; i++ {
		total += t[i]
	}
	return total
}

// Award returns the AP granted on reaching level alone.
func (t AwardTable) Award(level int) int {
	if level < 1 || level > len(t) {
		return 0
	}
	return t[level-1]
}

func (t AwardTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("award table is empty")
	}
	for i, a := range t {
		if a < 0 {
			return fmt.Errorf("award for level %d is negative (%d)", i+1, a)
		}
	}
	return nil
}

// ClampLevel forces level into [1, maxLevel].
func ClampLevel(level, maxLevel int) int {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if level < 1 {
		return 1
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
