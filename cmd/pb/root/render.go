package root

import (
	"fmt"
	"io"
	"strings"

	"pitchbuild/internal/catalog"
	"pitchbuild/internal/engine"
	"pitchbuild/internal/ui"
)

func printBuild(w io.Writer, sess *engine.Session, cat *catalog.Catalog) {
	title := "Build"
	if n := sess.BuildName(); n != "" {
		title += " " + n
	}
	fmt.Fprintln(w, ui.Heading(ui.IconBall, title))
	if p, ok := sess.Archetype(); ok {
		fmt.Fprintln(w, ui.LabelValue("Archetype", ui.Accent(cat.Accent(p.Role), p.Role+" · "+p.Name)))
	}
	fmt.Fprintln(w, ui.LabelValue("Level", sess.Level()))
	fmt.Fprintln(w, ui.LabelValue("AP", fmt.Sprintf("%s (spent %d)", ui.Budget(sess.Available(), sess.Granted()), sess.Spent())))
	if over := sess.Overspent(); over > 0 {
		fmt.Fprintf(w, "%s %s\n", ui.BadgeOverspent, ui.Muted.Render(fmt.Sprintf("by %d AP", over)))
	}
	if spec := sess.Specialization(); spec != "" {
		fmt.Fprintln(w, ui.LabelValue("Specialization", spec))
	}

	open := sess.UnlockedSlots()
	slots := make([]string, len(engine.PlaystyleSlots))
	for i, s := range engine.PlaystyleSlots {
		slots[i] = ui.SlotText(open[i], s.MinLevel)
	}
	fmt.Fprintln(w, ui.LabelValue("Slots", strings.Join(slots, "  ")))
	fmt.Fprintln(w, "")

	base := sess.Baseline()
	for _, c := range sess.Attributes().Categories {
		fmt.Fprintln(w, ui.H2.Render(c.Title))
		for _, a := range c.Attributes {
			fmt.Fprintln(w, attrLine(sess, base, a))
		}
	}
}

func attrLine(sess *engine.Session, base engine.AttributeSet, a engine.Attribute) string {
	key := "  "
	if a.Key {
		key = ui.IconKey
	}
	var level string
	if a.IsStarBased() {
		level = ui.Stars(a.Stars, engine.MaxStars)
	} else {
		level = ui.Value(a.Value) + " " + ui.ValueBar(a.Value, 20)
	}

	delta := ""
	if b, ok := base.Get(a.Name); ok {
		d := a.Value - b.Value
		if a.IsStarBased() {
			d = a.Stars - b.Stars
		}
		switch {
		case d > 0:
			delta = ui.Good.Render(fmt.Sprintf("+%d", d))
		case d < 0:
			delta = ui.Warn.Render(fmt.Sprintf("%d", d))
		}
	}

	next := ui.Muted.Render("max")
	if cost, ok, err := sess.NextCost(a.Name); err == nil && ok {
		next = ui.Muted.Render(fmt.Sprintf("next %d AP", cost))
	}
	return fmt.Sprintf("  %s %-14s %s %-4s %s", key, a.Name, level, delta, next)
}
