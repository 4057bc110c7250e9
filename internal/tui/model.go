package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pitchbuild/internal/engine"
	"pitchbuild/internal/ui"
)

type editorModel struct {
	ctx    context.Context
	sess   *engine.Session
	accent string

	width  int
	height int

	names    []string
	selected int

	naming bool
	input  string
	saving bool

	lastLog string
}

type savedMsg struct {
	name string
	err  error
}

func newEditorModel(ctx context.Context, sess *engine.Session, accent string) editorModel {
	return editorModel{
		ctx:     ctx,
		sess:    sess,
		accent:  accent,
		names:   sess.Attributes().Names(),
		lastLog: "Ready.",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

// saveCmd persists a snapshot taken on the program goroutine. The session
// itself is only updated once savedMsg comes back to Update.
func (m editorModel) saveCmd(snap engine.BuildSnapshot) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{name: snap.Name, err: m.sess.Persist(m.ctx, snap)}
	}
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.lastLog = ui.Bad.Render("Save failed: " + msg.err.Error())
			return m, nil
		}
		m.sess.MarkSaved(msg.name)
		m.lastLog = ui.Good.Render(fmt.Sprintf("%s Saved %q.", ui.IconSave, m.sess.BuildName()))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.saving {
			return m, nil
		}
		if m.naming {
			return m.updateNaming(msg)
		}
		return m.updateEditing(msg)
	}
	return m, nil
}

func (m editorModel) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.naming = false
		m.lastLog = "Save cancelled."
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input)
		if name == "" {
			m.lastLog = ui.Warn.Render("Enter a build name.")
			return m, nil
		}
		m.naming = false
		m.saving = true
		m.lastLog = "Saving…"
		return m, m.saveCmd(m.sess.Snapshot(name))
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(msg.Runes)
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.input += " "
		}
		return m, nil
	}
	return m, nil
}

func (m editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.names)-1 {
			m.selected++
		}
	case "right", "l", "+", "=":
		m.step(true)
	case "left", "h", "-":
		m.step(false)
	case "]":
		m.changeLevel(1)
	case "[":
		m.changeLevel(-1)
	case "}":
		m.changeLevel(10)
	case "{":
		m.changeLevel(-10)
	case "r":
		m.sess.Reset()
		m.lastLog = "Reset to baseline."
	case "tab":
		m.cycleSpecialization()
	case "s":
		m.naming = true
		m.input = m.sess.BuildName()
		m.lastLog = ""
	}
	return m, nil
}

func (m *editorModel) step(up bool) {
	if len(m.names) == 0 {
		return
	}
	name := m.names[m.selected]
	var (
		mut engine.Mutation
		err error
	)
	if up {
		mut, err = m.sess.Increment(name)
	} else {
		mut, err = m.sess.Decrement(name)
	}
	switch {
	case errors.Is(err, engine.ErrBudgetExceeded):
		m.lastLog = ui.Warn.Render(err.Error())
	case errors.Is(err, engine.ErrBoundaryReached):
		m.lastLog = ui.Muted.Render(err.Error())
	case err != nil:
		m.lastLog = ui.Bad.Render(err.Error())
	case mut.APDelta >= 0:
		m.lastLog = fmt.Sprintf("%s %s → %s (-%d AP)", ui.IconPlus, name, describe(mut), mut.APDelta)
	default:
		m.lastLog = fmt.Sprintf("%s %s → %s (+%d AP)", ui.IconMinus, name, describe(mut), -mut.APDelta)
	}
}

func (m *editorModel) changeLevel(delta int) {
	before := m.sess.Level()
	after := m.sess.SetLevel(before + delta)
	if after == before {
		return
	}
	m.lastLog = fmt.Sprintf("Level %d → %d.", before, after)
	if over := m.sess.Overspent(); over > 0 {
		m.lastLog += " " + ui.BadgeOverspent + fmt.Sprintf(" by %d AP", over)
	}
}

func (m *editorModel) cycleSpecialization() {
	specs := append([]string{""}, engine.Specializations...)
	cur := 0
	for i, s := range specs {
		if s == m.sess.Specialization() {
			cur = i
		}
	}
	next := specs[(cur+1)%len(specs)]
	if err := m.sess.SetSpecialization(next); err != nil {
		m.lastLog = ui.Bad.Render(err.Error())
		return
	}
	if next == "" {
		next = "none"
	}
	m.lastLog = "Specialization: " + next
}

func describe(mut engine.Mutation) string {
	if mut.Stars > 0 {
		return fmt.Sprintf("%d★", mut.Stars)
	}
	return fmt.Sprintf("%d", mut.Value)
}

func (m editorModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()

	leftW := 28
	if m.width > 0 && m.width/3 < leftW {
		leftW = max(m.width/3, 20)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(sidebar),
		"  ",
		main,
	)
	return header + "\n\n" + body + "\n" + m.renderFooter()
}

func (m editorModel) renderHeader() string {
	title := "Pitchbuild"
	if p, ok := m.sess.Archetype(); ok {
		title += " | " + ui.Accent(m.accent, p.Role+" · "+p.Name)
	}
	if n := m.sess.BuildName(); n != "" {
		title += " | " + ui.Muted.Render(n)
	}
	parts := []string{
		ui.Heading(ui.IconBall, title),
		ui.LabelValue("Level", m.sess.Level()),
		ui.LabelValue("AP", ui.Budget(m.sess.Available(), m.sess.Granted())),
		ui.LabelValue("Spent", m.sess.Spent()),
	}
	if over := m.sess.Overspent(); over > 0 {
		parts = append(parts, ui.BadgeOverspent+fmt.Sprintf(" +%d", over))
	}
	return strings.Join(parts, "  ")
}

func (m editorModel) renderSidebar() string {
	lines := []string{ui.H2.Render("Playstyle slots")}
	open := m.sess.UnlockedSlots()
	for i, slot := range engine.PlaystyleSlots {
		lines = append(lines, fmt.Sprintf("- %d %s", i+1, ui.SlotText(open[i], slot.MinLevel)))
	}
	spec := m.sess.Specialization()
	if spec == "" {
		spec = ui.Muted.Render("none")
	}
	lines = append(lines, "", ui.LabelValue("Specialization", spec))
	lines = append(lines, "", ui.H2.Render("Keys"),
		"- ↑/↓ j/k: move",
		"- →/+ ←/-: raise/lower",
		"- [ ] { }: level ±1/±10",
		"- tab: specialization",
		"- r: reset",
		"- s: save",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m editorModel) renderMain() string {
	set := m.sess.Attributes()
	var out []string
	idx := 0
	for _, c := range set.Categories {
		out = append(out, ui.H2.Render(c.Title))
		for _, a := range c.Attributes {
			out = append(out, m.renderRow(a, idx == m.selected))
			idx++
		}
	}
	return strings.Join(out, "\n")
}

func (m editorModel) renderRow(a engine.Attribute, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	name := fmt.Sprintf("%-14s", a.Name)
	if selected {
		name = ui.SelectedRow.Render(name)
	}
	var level string
	if a.IsStarBased() {
		level = ui.Stars(a.Stars, engine.MaxStars)
	} else {
		level = ui.Value(a.Value) + " " + ui.ValueBar(a.Value, 12)
	}
	key := "  "
	if a.Key {
		key = ui.IconKey
	}

	next := ui.Muted.Render("max")
	if cost, ok, err := m.sess.NextCost(a.Name); err == nil && ok {
		label := fmt.Sprintf("+%d AP", cost)
		if m.sess.CanAfford(a.Name) {
			next = label
		} else {
			next = ui.Bad.Render(label)
		}
	}
	return fmt.Sprintf("%s%s %s %s %s", cursor, key, name, level, next)
}

func (m editorModel) renderFooter() string {
	if m.naming {
		return "\n" + ui.Key.Render("Build name: ") + m.input + "▌" + ui.Muted.Render("  (enter to save, esc to cancel)")
	}
	return "\n" + m.lastLog
}
