package railfence

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagTable   bool
	flagNoColor bool
	flagVerbose int

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the railfence CLI.
var rootCmd = &cobra.Command{
	Use:           "railfence",
	Short:         "Encode text with the rail-fence cipher",
	Long:          "railfence writes text in a zig-zag across a number of rails and reads the rails back out, one after another, to produce the ciphertext.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the railfence CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output in table format with borders")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log more (-v info, -vv debug)")
}
