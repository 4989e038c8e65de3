package tui

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/railfence/railfence/internal/types"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		// typed runes return cursor blink commands that block on a timer
		if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyRunes {
			continue
		}
		if cmd != nil {
			if sm, ok := cmd().(statusMsg); ok {
				next, _ = m.Update(sm)
				m = next.(Model)
			}
		}
	}
	return m
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestNewModel_ClampsRails(t *testing.T) {
	if got := NewModel("", 0, DefaultPrefs(), true).Rails(); got != 1 {
		t.Errorf("rails = %d, want 1", got)
	}
	if got := NewModel("", 500, DefaultPrefs(), true).Rails(); got != MaxRails {
		t.Errorf("rails = %d, want %d", got, MaxRails)
	}
}

func TestUpdate_TypingEncodes(t *testing.T) {
	m := NewModel("", 3, DefaultPrefs(), true)
	m = press(t, m, keyRunes("Hello,World!"))
	if m.Text() != "Hello,World!" {
		t.Fatalf("text = %q", m.Text())
	}
	if got := m.Ciphertext(); got != "HOREL,OL!LWD" {
		t.Errorf("ciphertext = %q", got)
	}
}

func TestUpdate_RailKeys(t *testing.T) {
	m := NewModel("abcdefg", 3, DefaultPrefs(), true)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Rails() != 2 || m.Ciphertext() != "ACEGBDF" {
		t.Errorf("after down: rails=%d ct=%q", m.Rails(), m.Ciphertext())
	}
	if !strings.Contains(m.statusMessage, "period 2") {
		t.Errorf("status = %q", m.statusMessage)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Rails() != 1 {
		t.Errorf("rails must not drop below 1, got %d", m.Rails())
	}
	if m.Ciphertext() != "ABCDEFG" {
		t.Errorf("one rail is the identity, got %q", m.Ciphertext())
	}

	for i := 0; i < 20; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if m.Rails() != MaxRails {
		t.Errorf("rails = %d, want %d", m.Rails(), MaxRails)
	}
	if m.Text() != "abcdefg" {
		t.Errorf("rail keys must not edit text, got %q", m.Text())
	}
}

func TestUpdate_ToggleLabels(t *testing.T) {
	m := NewModel("abc", 2, DefaultPrefs(), true)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if !m.Labels() {
		t.Fatal("expected labels on")
	}
	if !strings.Contains(m.View(), "0 │") {
		t.Errorf("expected rail labels in view:\n%s", m.View())
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := NewModel("abc", 2, DefaultPrefs(), true)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestCopyCiphertext(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	var got string
	writeClipboard = func(s string) error { got = s; return nil }

	m := NewModel("Hello,World!", 3, DefaultPrefs(), true)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got != "HOREL,OL!LWD" {
		t.Errorf("clipboard = %q", got)
	}
	if m.statusMessage != "Copied 12 characters" {
		t.Errorf("status = %q", m.statusMessage)
	}

	writeClipboard = func(string) error { return errors.New("boom") }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.statusMessage, "Clipboard error: boom") {
		t.Errorf("status = %q", m.statusMessage)
	}

	empty := press(t, NewModel("", 3, DefaultPrefs(), true), tea.KeyMsg{Type: tea.KeyCtrlY})
	if empty.statusMessage != "Nothing to copy" {
		t.Errorf("status = %q", empty.statusMessage)
	}
}

func TestRecordAndSave(t *testing.T) {
	dir := t.TempDir()
	m := NewModel("abcdefg", 2, DefaultPrefs(), true)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.recorded) != 2 {
		t.Fatalf("recorded = %d", len(m.recorded))
	}
	if m.recorded[0].Ciphertext != "ACEGBDF" || m.recorded[1].Rails != 3 {
		t.Errorf("unexpected records: %+v", m.recorded)
	}

	out := filepath.Join(dir, "play.json")
	if msg := m.saveRecorded(out)(); !strings.Contains(string(msg.(statusMsg)), "Saved 2 encodings") {
		t.Errorf("status = %q", msg)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var rs []types.Result
	if err := json.Unmarshal(b, &rs); err != nil {
		t.Fatal(err)
	}
	if len(rs) != 2 || rs[0].Input != "abcdefg" {
		t.Errorf("unexpected saved results: %+v", rs)
	}
}

func TestSave_NothingRecorded(t *testing.T) {
	m := NewModel("abc", 2, DefaultPrefs(), true)
	msg := m.saveRecorded(filepath.Join(t.TempDir(), "x.json"))()
	if !strings.HasPrefix(string(msg.(statusMsg)), "Nothing recorded") {
		t.Errorf("status = %q", msg)
	}
}
