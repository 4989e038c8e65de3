package railfence

import (
	"io"

	"github.com/railfence/railfence/internal/report"
	"github.com/railfence/railfence/internal/types"
	"github.com/railfence/railfence/pkg/core"
)

// printResults writes results as JSON, a table, or bare ciphertext lines.
func printResults(w io.Writer, results []types.Result, noColor bool) error {
	switch {
	case flagJSON:
		if results == nil {
			// no `null` in JSON
			results = []types.Result{}
		}
		return core.MarshalResults(w, results)
	case flagTable:
		return report.PrintTable(w, results, report.PrintOptions{NoColor: noColor})
	default:
		return report.PrintText(w, results, report.PrintOptions{NoColor: noColor})
	}
}
