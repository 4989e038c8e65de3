package railfence

import (
	"fmt"

	"github.com/railfence/railfence/internal/config"
	"github.com/railfence/railfence/internal/report"
	"github.com/railfence/railfence/pkg/core"
	"github.com/spf13/cobra"
)

var (
	gridRails  int
	gridFile   string
	gridLabels bool
)

// gridDoc is the JSON shape of a layout: the runes on each rail, top first.
type gridDoc struct {
	Rails      int      `json:"rails"`
	Columns    int      `json:"columns"`
	Rows       []string `json:"rows"`
	Ciphertext string   `json:"ciphertext"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "grid [text...]",
		Short: "Draw the zig-zag layout of text on the rails",
		RunE:  runGrid,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&gridRails, "rails", "r", defaultRails, "number of rails")
	cmd.Flags().StringVarP(&gridFile, "file", "f", "", "read plaintext from this file ('-' for stdin)")
	cmd.Flags().BoolVar(&gridLabels, "labels", false, "number each rail")
}

func runGrid(cmd *cobra.Command, args []string) error {
	gcfg, lcfg, err := config.Load(".")
	if err != nil {
		return err
	}
	rails := pickRails(cmd, gridRails, lcfg.Rails, gcfg.Rails)
	text, err := readInput(cmd, args, gridFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	g, err := core.Layout(text, rails)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		doc := gridDoc{Rails: g.Rails(), Columns: g.Columns(), Rows: []string{}, Ciphertext: g.Ciphertext()}
		for r := 0; r < g.Rails() && r < g.Columns(); r++ {
			var row []rune
			for _, c := range g.Row(r) {
				row = append(row, c.Char)
			}
			doc.Rows = append(doc.Rows, string(row))
		}
		return report.WriteJSON(out, doc)
	}
	color := colorEnabled(out, lcfg.NoColor, gcfg.NoColor)
	if s := report.RenderGrid(g, report.GridOptions{NoColor: !color, Labels: gridLabels}); s != "" {
		fmt.Fprint(out, s)
	}
	return nil
}
