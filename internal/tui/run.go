package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the playground. A rails value of zero opens with the saved
// preference. The final rail count and label setting are saved on exit.
func Run(text string, rails int, noColor bool) error {
	prefs := LoadPrefs()
	if rails == 0 {
		rails = prefs.Rails
	}
	m := NewModel(text, rails, prefs, noColor)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if fm, ok := final.(Model); ok {
		//nolint:errcheck // preferences are best effort
		_ = SavePrefs(Prefs{Rails: fm.Rails(), Labels: fm.Labels()})
	}
	return nil
}
