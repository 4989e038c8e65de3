package railfence

import (
	"fmt"
	"unicode/utf8"

	"github.com/railfence/railfence/internal/config"
	"github.com/railfence/railfence/internal/report"
	"github.com/railfence/railfence/internal/types"
	"github.com/railfence/railfence/pkg/core"
	"github.com/spf13/cobra"
)

var (
	encRails int
	encFile  string
	encCopy  bool
	encGrid  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text given as arguments, a file or stdin",
		Example: `  railfence encode --rails 3 "Hello,World!"
  echo "attack at dawn" | railfence encode -r 4
  railfence encode --file message.txt --copy`,
		RunE: runEncode,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&encRails, "rails", "r", defaultRails, "number of rails")
	cmd.Flags().StringVarP(&encFile, "file", "f", "", "read plaintext from this file ('-' for stdin)")
	cmd.Flags().BoolVar(&encCopy, "copy", false, "copy the ciphertext to the clipboard")
	cmd.Flags().BoolVar(&encGrid, "grid", false, "print the rail layout above the ciphertext")
}

func runEncode(cmd *cobra.Command, args []string) error {
	gcfg, lcfg, err := config.Load(".")
	if err != nil {
		return err
	}
	log := newLogger(cmd, lcfg.NoColor, gcfg.NoColor)
	rails := pickRails(cmd, encRails, lcfg.Rails, gcfg.Rails)

	text, err := readInput(cmd, args, encFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Debug("encoding", "rails", rails, "runes", utf8.RuneCountInString(text))

	res, err := core.Describe(text, rails)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := colorEnabled(out, lcfg.NoColor, gcfg.NoColor)
	if encGrid && !flagJSON {
		g, err := core.Layout(text, rails)
		if err != nil {
			return err
		}
		if s := report.RenderGrid(g, report.GridOptions{NoColor: !color}); s != "" {
			fmt.Fprint(out, s)
		}
	}
	if encCopy {
		if err := writeClipboard(res.Ciphertext); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		log.Info("copied ciphertext to clipboard", "runes", res.Runes)
	}
	return printResults(out, []types.Result{res}, !color)
}
