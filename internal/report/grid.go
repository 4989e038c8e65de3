package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/railfence/railfence/internal/railfence"
)

var (
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	railStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// GridOptions controls RenderGrid.
type GridOptions struct {
	NoColor bool
	// Labels prefixes each rail with its index.
	Labels bool
}

// RenderGrid draws the zig-zag one rail per line, columns separated by a
// space. Empty cells show as "." and spaces in the text as "␣". Rails past
// the text length can never hold a rune; they are summarized in a footer
// instead of drawn.
func RenderGrid(g *railfence.Grid, opts GridOptions) string {
	if g.Columns() == 0 {
		return ""
	}
	shown := g.Rails()
	if shown > g.Columns() {
		shown = g.Columns()
	}
	width := len(fmt.Sprint(shown - 1))

	style := func(s lipgloss.Style, text string) string {
		if opts.NoColor {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder
	for row := 0; row < shown; row++ {
		if opts.Labels {
			sb.WriteString(style(railStyle, fmt.Sprintf("%*d │ ", width, row)))
		}
		cells := g.Row(row)
		next := 0
		for col := 0; col < g.Columns(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if next < len(cells) && cells[next].Col == col {
				ch := string(cells[next].Char)
				if cells[next].Char == ' ' {
					ch = "␣"
				}
				sb.WriteString(style(cellStyle, ch))
				next++
				continue
			}
			sb.WriteString(style(emptyStyle, "."))
		}
		sb.WriteByte('\n')
	}
	if omitted := g.Rails() - shown; omitted > 0 {
		fmt.Fprintf(&sb, "(%d empty rails not shown)\n", omitted)
	}
	return sb.String()
}
