package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/railfence/railfence/internal/railfence"
	"github.com/railfence/railfence/internal/report"
	"github.com/railfence/railfence/internal/types"
	"github.com/railfence/railfence/pkg/core"
)

// MaxRails bounds the rail count reachable from the keyboard.
const MaxRails = 64

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	cipherStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	gridBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

const defaultStatus = "↑/↓: rails | ctrl+l: labels | ctrl+y: copy | enter: record | ctrl+s: save | f1: help | esc: quit"

type statusMsg string

func clampRails(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxRails {
		return MaxRails
	}
	return n
}

// Model is the interactive encoder: a text input whose ciphertext and rail
// layout are recomputed on every change.
type Model struct {
	input         textinput.Model
	rails         int
	labels        bool
	noColor       bool
	width         int
	height        int
	quitting      bool
	showHelp      bool
	statusMessage string
	// recorded holds results captured with enter, saved by ctrl+s.
	recorded []types.Result
}

// NewModel starts the playground on text with the given rail count, clamped
// to [1, MaxRails].
func NewModel(text string, rails int, prefs Prefs, noColor bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Type something to put on the fence..."
	ti.CharLimit = 512
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	ti.SetValue(text)
	ti.Focus()

	return Model{
		input:         ti,
		rails:         clampRails(rails),
		labels:        prefs.Labels,
		noColor:       noColor,
		statusMessage: defaultStatus,
	}
}

// Rails returns the current rail count.
func (m Model) Rails() int { return m.rails }

// Labels reports whether rail numbers are shown.
func (m Model) Labels() bool { return m.labels }

// Text returns the current plaintext.
func (m Model) Text() string { return m.input.Value() }

// Ciphertext encodes the current text. The rail count is always valid here.
func (m Model) Ciphertext() string {
	ct, _ := railfence.Encode(m.input.Value(), m.rails)
	return ct
}

func (m Model) result() (types.Result, error) {
	return core.Describe(m.input.Value(), m.rails)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setRails(n int) {
	m.rails = clampRails(n)
	m.statusMessage = fmt.Sprintf("Rails: %d (period %d)", m.rails, railfence.Period(m.rails))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if w := msg.Width - 4; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case statusMsg:
		m.statusMessage = string(msg)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		case "up":
			m.setRails(m.rails + 1)
			return m, nil
		case "down":
			m.setRails(m.rails - 1)
			return m, nil
		case "pgup":
			m.setRails(m.rails + 5)
			return m, nil
		case "pgdown":
			m.setRails(m.rails - 5)
			return m, nil
		case "ctrl+l":
			m.labels = !m.labels
			return m, nil
		case "ctrl+y":
			return m, m.copyCiphertext()
		case "enter":
			cmd := m.record()
			return m, cmd
		case "ctrl+s":
			return m, m.saveRecorded(defaultExportFile)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("railfence playground"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %d   %s %d   %s %d\n",
		keyStyle.Render("Rails:"), m.rails,
		keyStyle.Render("Period:"), railfence.Period(m.rails),
		keyStyle.Render("Recorded:"), len(m.recorded)))

	text := m.input.Value()
	if text == "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Nothing to encode yet."))
		b.WriteString("\n")
	} else {
		g, err := railfence.Layout(text, m.rails)
		if err != nil {
			b.WriteString(err.Error())
		} else {
			grid := report.RenderGrid(g, report.GridOptions{NoColor: m.noColor, Labels: m.labels})
			b.WriteString(gridBoxStyle.Render(strings.TrimSuffix(grid, "\n")))
			b.WriteString("\n")
			b.WriteString(keyStyle.Render("Ciphertext: "))
			b.WriteString(cipherStyle.Render(g.Ciphertext()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusMessage))
	return b.String()
}

func (m Model) helpView() string {
	keys := [][2]string{
		{"↑ / ↓", "add or remove a rail"},
		{"pgup / pgdown", "five rails at a time"},
		{"ctrl+l", "toggle rail numbers"},
		{"ctrl+y", "copy ciphertext"},
		{"enter", "record the current encoding"},
		{"ctrl+s", "save recorded encodings to " + defaultExportFile},
		{"esc / ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", keyStyle.Render(k[0]), k[1]))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to return"))
	return b.String()
}
