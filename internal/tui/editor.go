package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pitchbuild/internal/engine"
)

// RunEditor opens the interactive build editor on sess. accent is the role
// color used for the header.
func RunEditor(ctx context.Context, sess *engine.Session, accent string, out io.Writer) error {
	m := newEditorModel(ctx, sess, accent)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
