package tui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/railfence/railfence/internal/report"
)

// defaultExportFile is written in the working directory by ctrl+s.
const defaultExportFile = "railfence-play.json"

// writeClipboard is swapped in tests; the system clipboard is not available
// on headless machines.
var writeClipboard = clipboard.WriteAll

// copyCiphertext copies the current ciphertext to the clipboard
func (m Model) copyCiphertext() tea.Cmd {
	ct := m.Ciphertext()
	if ct == "" {
		return func() tea.Msg { return statusMsg("Nothing to copy") }
	}
	if err := writeClipboard(ct); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied %d characters", len([]rune(ct)))) }
}

// record appends the current encoding to the session list.
func (m *Model) record() tea.Cmd {
	if m.input.Value() == "" {
		return func() tea.Msg { return statusMsg("Nothing to record") }
	}
	res, err := m.result()
	if err != nil {
		return func() tea.Msg { return statusMsg(err.Error()) }
	}
	m.recorded = append(m.recorded, res)
	n := len(m.recorded)
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Recorded #%d (%d rails)", n, res.Rails)) }
}

// saveRecorded writes the recorded encodings as JSON to path.
func (m Model) saveRecorded(path string) tea.Cmd {
	if len(m.recorded) == 0 {
		return func() tea.Msg { return statusMsg("Nothing recorded yet, press enter first") }
	}
	f, err := os.Create(path)
	if err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Save error: %v", err)) }
	}
	defer f.Close()
	if err := report.WriteJSON(f, m.recorded); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Save error: %v", err)) }
	}
	n := len(m.recorded)
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Saved %d encodings to %s", n, path)) }
}
