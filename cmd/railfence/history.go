package railfence

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/railfence/railfence/internal/audit"
	"github.com/railfence/railfence/internal/report"
	"github.com/spf13/cobra"
)

var (
	historyPath   string
	historyDelete int
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous batch runs, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&historyPath, "path", "p", ".", "batch root")
	cmd.Flags().IntVar(&historyDelete, "delete", -1, "delete the record at this index")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	abs, err := filepath.Abs(historyPath)
	if err != nil {
		return err
	}
	log := audit.NewAuditLog(abs)
	out := cmd.OutOrStdout()

	if historyDelete >= 0 {
		if err := log.DeleteRecord(historyDelete); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted record %d\n", historyDelete)
		return nil
	}

	records, err := log.LoadHistory()
	if err != nil {
		return fmt.Errorf("no batch history in %s: %w", abs, err)
	}
	if flagJSON {
		return report.WriteJSON(out, records)
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		commit := r.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			r.Timestamp.Format("Jan 2 15:04"),
			strconv.Itoa(r.Rails),
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Encoded),
			strconv.Itoa(r.Cached),
			strconv.FormatBool(r.Written),
			commit,
		})
	}
	table := tablewriter.NewWriter(out)
	table.Header("#", "WHEN", "RAILS", "FILES", "ENCODED", "CACHED", "WRITTEN", "COMMIT")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
