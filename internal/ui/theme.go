package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pitchbuild theme (CLI + TUI).

const (
	IconBall   = "⚽"
	IconBoot   = "👟"
	IconPlus   = "➕"
	IconMinus  = "➖"
	IconSave   = "💾"
	IconLock   = "🔒"
	IconUnlock = "🔓"
	IconBolt   = "⚡"
	IconInfo   = "ℹ️"
	IconWarn   = "⚠️"
	IconError  = "🧨"
	IconKey    = "🔑"

	StarFull  = "★"
	StarEmpty = "☆"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold

	// value bands
	cBandLow   = lipgloss.Color("#EF4444")
	cBandFair  = lipgloss.Color("#F97316")
	cBandGood  = lipgloss.Color("#EAB308")
	cBandGreat = lipgloss.Color("#22C55E")
	cBandElite = lipgloss.Color("#10B981")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeOverspent = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("OVERSPENT")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Accent renders s in a role accent color such as "#22C55E".
func Accent(color, s string) string {
	if color == "" {
		return H2.Render(s)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(s)
}

// ValueBand picks the display color for an attribute value.
func ValueBand(value int) lipgloss.Color {
	switch {
	case value <= 39:
		return cBandLow
	case value <= 59:
		return cBandFair
	case value <= 79:
		return cBandGood
	case value <= 89:
		return cBandGreat
	default:
		return cBandElite
	}
}

// Value renders value in its band color.
func Value(value int) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ValueBand(value)).Render(fmt.Sprintf("%2d", value))
}

// ValueBar is a width-cell bar for value out of 99.
func ValueBar(value, width int) string {
	if width < 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > 99 {
		value = 99
	}
	filled := value * width / 99
	bar := strings.Repeat("█", filled)
	rest := strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(ValueBand(value)).Render(bar) + Muted.Render(rest)
}

// Stars renders a 1..max star rating.
func Stars(n, max int) string {
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return Gold.Render(strings.Repeat(StarFull, n)) + Muted.Render(strings.Repeat(StarEmpty, max-n))
}

// Budget renders available/granted, red when nothing is left.
func Budget(available, granted int) string {
	s := fmt.Sprintf("%d/%d AP", available, granted)
	if available == 0 {
		return Bad.Render(s)
	}
	return Good.Render(s)
}

func SlotText(open bool, minLevel int) string {
	if open {
		return Good.Render(IconUnlock + " open")
	}
	return Muted.Render(fmt.Sprintf("%s Lv %d", IconLock, minLevel))
}
