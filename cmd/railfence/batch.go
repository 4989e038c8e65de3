package railfence

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/railfence/railfence/internal/audit"
	"github.com/railfence/railfence/internal/cache"
	"github.com/railfence/railfence/internal/config"
	"github.com/railfence/railfence/internal/engine"
	"github.com/railfence/railfence/internal/files"
	"github.com/railfence/railfence/internal/git"
	"github.com/railfence/railfence/internal/ignore"
	"github.com/railfence/railfence/internal/report"
	"github.com/railfence/railfence/internal/types"
	"github.com/railfence/railfence/pkg/core"
	"github.com/spf13/cobra"
)

var (
	batchPath            string
	batchRails           int
	batchInclude         string
	batchExclude         string
	batchThreads         int
	batchMaxBytes        int64
	batchWrite           bool
	batchOutExt          string
	batchNoCache         bool
	batchDefaultExcludes bool
	batchAddIgnore       string
	batchGitignore       bool
	batchLast            bool
	batchStaged          bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encode every text file under a directory",
		Example: `  railfence batch -p docs --rails 5 --include "**/*.md"
  railfence batch --write --gitignore
  railfence batch --last`,
		Args: cobra.NoArgs,
		RunE: runBatch,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&batchPath, "path", "p", ".", "directory to encode")
	cmd.Flags().IntVarP(&batchRails, "rails", "r", defaultRails, "number of rails")
	cmd.Flags().StringVar(&batchInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&batchExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().IntVar(&batchThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&batchMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	cmd.Flags().BoolVar(&batchWrite, "write", false, "write each ciphertext next to its input")
	cmd.Flags().StringVar(&batchOutExt, "out-ext", "", "extension appended to written files (default \".rail\")")
	cmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "re-encode unchanged files when writing")
	cmd.Flags().BoolVar(&batchDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
	cmd.Flags().StringVar(&batchAddIgnore, "add-ignore", "", "append a pattern to "+ignore.FileName+" before running")
	cmd.Flags().BoolVar(&batchGitignore, "gitignore", false, "add the output pattern to .gitignore when writing")
	cmd.Flags().BoolVar(&batchLast, "last", false, "show the previous batch run instead of encoding")
	cmd.Flags().BoolVar(&batchStaged, "staged", false, "only encode files staged in git")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	abs, err := filepath.Abs(batchPath)
	if err != nil {
		return err
	}
	// Load configs: CLI > local > global
	gcfg, lcfg, err := config.Load(abs)
	if err != nil {
		return err
	}
	out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()
	noColor := !colorEnabled(out, lcfg.NoColor, gcfg.NoColor)
	log := newLogger(cmd, lcfg.NoColor, gcfg.NoColor)

	if batchLast {
		br, err := cache.LoadResults(abs)
		if err != nil {
			return fmt.Errorf("no previous batch in %s: %w", abs, err)
		}
		if flagJSON {
			return report.WriteJSON(out, br)
		}
		fmt.Fprintf(out, "Last batch: %s, %d rails\n", br.Timestamp.Format(time.RFC3339), br.Rails)
		return report.PrintFileTable(out, br.Results, report.PrintOptions{NoColor: noColor})
	}

	defaultExcludes := batchDefaultExcludes
	if !cmd.Flags().Changed("default-excludes") {
		if lcfg.DefaultExcludes != nil {
			defaultExcludes = *lcfg.DefaultExcludes
		} else if gcfg.DefaultExcludes != nil {
			defaultExcludes = *gcfg.DefaultExcludes
		}
	}
	cfg := engine.Config{
		Root:            abs,
		IncludeGlobs:    pickString(batchInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(batchExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(batchMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:         pickInt(batchThreads, lcfg.Threads, gcfg.Threads),
		Rails:           pickRails(cmd, batchRails, lcfg.Rails, gcfg.Rails),
		DefaultExcludes: defaultExcludes,
		Write:           batchWrite,
		OutExt:          pickString(batchOutExt, lcfg.OutExt, gcfg.OutExt),
		NoCache:         batchNoCache,
		Logger:          log,
	}
	if cfg.OutExt == "" {
		cfg.OutExt = engine.DefaultOutExt
	}
	if err := core.ValidateRails(cfg.Rails); err != nil {
		return err
	}

	if batchStaged {
		staged, err := git.StagedFiles(abs)
		if err != nil {
			return fmt.Errorf("list staged files: %w", err)
		}
		if len(staged) == 0 {
			if flagJSON {
				return report.WriteJSON(out, []types.FileResult{})
			}
			fmt.Fprintln(out, "No staged files")
			return nil
		}
		cfg.Only = staged
	}

	if batchAddIgnore != "" {
		if err := files.AppendLine(filepath.Join(abs, ignore.FileName), batchAddIgnore); err != nil {
			return fmt.Errorf("update %s: %w", ignore.FileName, err)
		}
		log.Info("added ignore pattern", "pattern", batchAddIgnore)
	}

	// Optional progress bar: simple textual bar
	total := 0
	if !flagJSON {
		total, _ = engine.CountTargets(cfg)
	}
	progressed := 0
	if total > 0 {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(errw, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}
	res, err := engine.Run(cmd.Context(), cfg)
	if total > 0 {
		_, _ = fmt.Fprintln(errw)
	}
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	if batchWrite && batchGitignore {
		if err := files.AppendIgnore(abs, files.OutputPattern(cfg.OutExt)); err != nil {
			log.Warn("could not update .gitignore", "err", err)
		}
	}
	if err := cache.SaveResults(abs, cfg.Rails, res.Files); err != nil {
		log.Warn("could not save batch results", "err", err)
	}
	rec := audit.CreateRunRecord(abs, cfg.Rails, res.Files, cfg.Write, res.Duration)
	_, rec.Commit, rec.Branch = git.RepoMetadata(abs)
	if err := audit.NewAuditLog(abs).LogRun(rec); err != nil {
		log.Warn("could not write audit log", "err", err)
	}

	if flagJSON {
		results := res.Files
		if results == nil {
			// no `null` in JSON
			results = []types.FileResult{}
		}
		return report.WriteJSON(out, results)
	}
	return report.PrintFileTable(out, res.Files, report.PrintOptions{NoColor: noColor, Duration: res.Duration})
}
