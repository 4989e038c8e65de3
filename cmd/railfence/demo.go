package railfence

import (
	"github.com/railfence/railfence/internal/types"
	"github.com/railfence/railfence/pkg/core"
	"github.com/spf13/cobra"
)

type sample struct {
	text  string
	rails int
}

var demoSamples = []sample{
	{"Hello,World!", 3},
	{"Moby-Dick; or, The Whale is an 1851 novel by American writer Herman Melville. The book is the sailor Ishmael's narrative of the obsessive quest of Ahab, captain of the whaling ship Pequod, for revenge on Moby Dick, the giant white sperm whale that on the ship's previous voyage bit off Ahab's leg at the knee. Wikipedia", 10},
}

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Encode two sample texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := make([]types.Result, 0, len(demoSamples))
			for _, s := range demoSamples {
				r, err := core.Describe(s.text, s.rails)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			return printResults(cmd.OutOrStdout(), results, !colorEnabled(cmd.OutOrStdout(), nil, nil))
		},
	}
	rootCmd.AddCommand(cmd)
}
