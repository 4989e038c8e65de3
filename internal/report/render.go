package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/railfence/railfence/internal/types"
)

// PrintOptions controls the human-readable renderers.
type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
	// Preview caps the ciphertext shown per row in runes; 0 shows it whole.
	Preview int
}

// PrintText writes one ciphertext per line.
func PrintText(w io.Writer, results []types.Result, opts PrintOptions) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, preview(r.Ciphertext, opts.Preview)); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable writes results as a bordered table.
func PrintTable(w io.Writer, results []types.Result, opts PrintOptions) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.Rails),
			strconv.Itoa(r.Runes),
			r.Fingerprint,
			preview(r.Ciphertext, opts.Preview),
		})
	}
	table := tablewriter.NewWriter(w)
	table.Header("RAILS", "RUNES", "FINGERPRINT", "CIPHERTEXT")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// PrintFileTable writes a batch run as a table sorted by path, followed by a
// summary footer.
func PrintFileTable(w io.Writer, results []types.FileResult, opts PrintOptions) error {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	if len(results) == 0 {
		fmt.Fprintln(w, "No files matched")
	} else {
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			status := "encoded"
			if r.Cached {
				status = "cached"
			}
			rows = append(rows, []string{
				r.Path,
				strconv.Itoa(r.Rails),
				strconv.Itoa(r.Runes),
				r.Fingerprint,
				status,
			})
		}
		table := tablewriter.NewWriter(w)
		table.Header("PATH", "RAILS", "RUNES", "FINGERPRINT", "STATUS")
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	cached := 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files: %d (encoded: %d, cached: %d)\n", len(results), len(results)-cached, cached)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
	return nil
}

func preview(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
