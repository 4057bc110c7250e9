package engine

// PlaystyleSlot is a playstyle slot that opens at MinLevel.
type PlaystyleSlot struct {
	ID       string
	MinLevel int
}

// PlaystyleSlots are the level-gated playstyle slots, in display order.
var PlaystyleSlots = []PlaystyleSlot{
	{ID: "slot-1", MinLevel: 1},
	{ID: "slot-2", MinLevel: 10},
	{ID: "slot-3", MinLevel: 20},
	{ID: "slot-4", MinLevel: 40},
}

// UnlockedSlots reports, per PlaystyleSlots entry, whether it is open at level.
func UnlockedSlots(level int) []bool {
	out := make([]bool, len(PlaystyleSlots))
	for i, s := range PlaystyleSlots {
		out[i] = level >= s.MinLevel
	}
	return out
}

// CountUnlockedSlots returns how many slots are open at level.
func CountUnlockedSlots(level int) int {
	n := 0
	for _, ok := range UnlockedSlots(level) {
		if ok {
			n++
		}
	}
	return n
}

// NextSlotLevel returns the level of the next locked slot, or 0 when all are open.
func NextSlotLevel(level int) int {
	for _, s := range PlaystyleSlots {
		if level < s.MinLevel {
			return s.MinLevel
		}
	}
	return 0
}

// Specializations are the specialization playstyles a build may pick one of.
var Specializations = []string{"Finesse Shot", "Power Shot", "Technical"}

// IsSpecialization reports whether name is one of Specializations.
func IsSpecialization(name string) bool {
	for _, s := range Specializations {
		if s == name {
			return true
		}
	}
	return false
}
