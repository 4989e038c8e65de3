package railfence

import "strings"

// Cell is one placed rune and the column (plaintext position) it came from.
type Cell struct {
	Col  int
	Char rune
}

// Grid is the zig-zag layout of one text. Rows hold their cells in column
// order; a column is occupied on exactly one row.
type Grid struct {
	rails   int
	columns int
	rows    [][]Cell
}

// Layout normalizes text and places each rune on the rail given by Pattern.
func Layout(text string, rails int) (*Grid, error) {
	if err := ValidateRails(rails); err != nil {
		return nil, err
	}
	runes := []rune(Normalize(text))
	pattern, err := Pattern(len(runes), rails)
	if err != nil {
		return nil, err
	}

	// Only the first len(runes) rails can be reached; deeper rows stay nil.
	used := rails
	if used > len(runes) {
		used = len(runes)
	}
	g := &Grid{rails: rails, columns: len(runes), rows: make([][]Cell, used)}
	for i, r := range runes {
		g.rows[pattern[i]] = append(g.rows[pattern[i]], Cell{Col: i, Char: r})
	}
	return g, nil
}

// Rails returns the number of rails the grid was built with.
func (g *Grid) Rails() int { return g.rails }

// Columns returns the number of placed runes.
func (g *Grid) Columns() int { return g.columns }

// Row returns the cells of rail i in column order. Rails that received no
// rune, including any index past the last rail, return nil.
func (g *Grid) Row(i int) []Cell {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// At reports the rune at (row, col) and whether the cell is occupied.
func (g *Grid) At(row, col int) (rune, bool) {
	for _, c := range g.Row(row) {
		if c.Col == col {
			return c.Char, true
		}
		if c.Col > col {
			break
		}
	}
	return 0, false
}

// Ciphertext joins the rails from top to bottom.
func (g *Grid) Ciphertext() string {
	var sb strings.Builder
	sb.Grow(g.columns)
	for _, row := range g.rows {
		for _, c := range row {
			sb.WriteRune(c.Char)
		}
	}
	return sb.String()
}
