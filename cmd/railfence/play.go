package railfence

import (
	"strings"

	"github.com/railfence/railfence/internal/config"
	"github.com/railfence/railfence/internal/tui"
	"github.com/railfence/railfence/pkg/core"
	"github.com/spf13/cobra"
)

var playRails int

func init() {
	cmd := &cobra.Command{
		Use:   "play [text...]",
		Short: "Open the interactive playground",
		Long:  "Type text and watch it zig-zag across the rails. Up and down change the rail count; f1 lists the other keys.",
		RunE: func(cmd *cobra.Command, args []string) error {
			gcfg, lcfg, err := config.Load(".")
			if err != nil {
				return err
			}
			rails := 0 // playground preference
			if cmd.Flags().Changed("rails") || lcfg.Rails != nil || gcfg.Rails != nil {
				rails = pickRails(cmd, playRails, lcfg.Rails, gcfg.Rails)
				if err := core.ValidateRails(rails); err != nil {
					return err
				}
			}
			noColor := !colorEnabled(cmd.OutOrStdout(), lcfg.NoColor, gcfg.NoColor)
			return tui.Run(strings.Join(args, " "), rails, noColor)
		},
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().IntVarP(&playRails, "rails", "r", defaultRails, "starting number of rails")
}
