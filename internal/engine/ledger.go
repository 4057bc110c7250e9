package engine

// BudgetLedger tracks AP granted by level against AP spent. Spent never goes
// negative; Available is clamped at zero when a level drop leaves the build
// overspent. Overspend is never rolled back automatically.
type BudgetLedger struct {
	rules   Ruleset
	level   int
	granted int
	spent   int
}

func NewBudgetLedger(rules Ruleset, level int) *BudgetLedger {
	l := &BudgetLedger{rules: rules}
	l.SetLevel(level)
	return l
}

// SetLevel clamps level, recomputes the grant and returns the level used.
// Spent is left as is.
func (l *BudgetLedger) SetLevel(level int) int {
	l.level = l.rules.ClampLevel(level)
	l.granted = l.rules.Granted(l.level)
	return l.level
}

func (l *BudgetLedger) Level() int   { return l.level }
func (l *BudgetLedger) Granted() int { return l.granted }
func (l *BudgetLedger) Spent() int   { return l.spent }

// Available is max(0, granted - spent).
func (l *BudgetLedger) Available() int {
	if l.spent >= l.granted {
		return 0
	}
	return l.granted - l.spent
}

// Overspent is how far spent exceeds the grant, 0 when within budget.
func (l *BudgetLedger) Overspent() int {
	if l.spent <= l.granted {
		return 0
	}
	return l.spent - l.granted
}

// Apply adds delta to spent, clamping at zero.
func (l *BudgetLedger) Apply(delta int) {
	l.spent += delta
	if l.spent < 0 {
		l.spent = 0
	}
}

// Clear zeroes spent.
func (l *BudgetLedger) Clear() {
	l.spent = 0
}

// RecomputeFromAttributeSet sets spent to the price of every attribute's rise
// above baseline. Attributes missing from baseline are ignored.
func (l *BudgetLedger) RecomputeFromAttributeSet(current, baseline AttributeSet) int {
	l.spent = SpentAbove(l.rules, current, baseline)
	return l.spent
}

// SpentAbove prices current against baseline without touching any ledger.
func SpentAbove(rules Ruleset, current, baseline AttributeSet) int {
	total := 0
	for _, cur := range current.All() {
		base, ok := baseline.Get(cur.Name)
		if !ok || cur.IsStarBased() != base.IsStarBased() {
			continue
		}
		total += rules.SpendAbove(base, cur)
	}
	return total
}
