package railfence

import (
	"fmt"
	"os"
	"strings"

	"github.com/railfence/railfence/internal/config"
	"github.com/railfence/railfence/internal/engine"
	"github.com/railfence/railfence/internal/report"
	"github.com/railfence/railfence/pkg/core"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput          string
	cfgRails           int
	cfgThreads         int
	cfgMaxBytes        int64
	cfgInclude         string
	cfgExclude         string
	cfgOutExt          string
	cfgNoColor         bool
	cfgDefaultExcludes bool
	cfgForce           bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .railfence.yml with the selected options",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".railfence.yml", "output file path")
	initCmd.Flags().IntVar(&cfgRails, "rails", defaultRails, "number of rails")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads (0=GOMAXPROCS)")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", engine.DefaultMaxBytes, "skip files larger than this")
	initCmd.Flags().StringVar(&cfgInclude, "include", "", "comma-separated include globs for batch runs")
	initCmd.Flags().StringVar(&cfgExclude, "exclude", "", "comma-separated exclude globs for batch runs")
	initCmd.Flags().StringVar(&cfgOutExt, "out-ext", engine.DefaultOutExt, "extension for written ciphertext files")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default ignore patterns")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect for the current directory",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cfgCmd.AddCommand(showCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if err := core.ValidateRails(cfgRails); err != nil {
		return err
	}
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
	}

	fc := config.FileConfig{
		Rails:           intPtr(cfgRails),
		Threads:         intPtr(cfgThreads),
		Include:         optStrPtr(cfgInclude),
		Exclude:         optStrPtr(cfgExclude),
		MaxBytes:        int64Ptr(cfgMaxBytes),
		OutExt:          optStrPtr(cfgOutExt),
		NoColor:         boolPtr(cfgNoColor),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

// effectiveConfig is the merged view printed by config show.
type effectiveConfig struct {
	Rails           int    `yaml:"rails" json:"rails"`
	Threads         int    `yaml:"threads" json:"threads"`
	Include         string `yaml:"include" json:"include"`
	Exclude         string `yaml:"exclude" json:"exclude"`
	MaxBytes        int64  `yaml:"max_bytes" json:"max_bytes"`
	OutExt          string `yaml:"out_ext" json:"out_ext"`
	NoColor         bool   `yaml:"no_color" json:"no_color"`
	DefaultExcludes bool   `yaml:"default_excludes" json:"default_excludes"`
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	gcfg, lcfg, err := config.Load(".")
	if err != nil {
		return err
	}
	ec := effectiveConfig{
		Rails:           defaultRails,
		Threads:         pickInt(0, lcfg.Threads, gcfg.Threads),
		Include:         pickString("", lcfg.Include, gcfg.Include),
		Exclude:         pickString("", lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(0, lcfg.MaxBytes, gcfg.MaxBytes),
		OutExt:          pickString("", lcfg.OutExt, gcfg.OutExt),
		NoColor:         pickBool(false, lcfg.NoColor, gcfg.NoColor),
		DefaultExcludes: true,
	}
	if lcfg.Rails != nil {
		ec.Rails = *lcfg.Rails
	} else if gcfg.Rails != nil {
		ec.Rails = *gcfg.Rails
	}
	if lcfg.DefaultExcludes != nil {
		ec.DefaultExcludes = *lcfg.DefaultExcludes
	} else if gcfg.DefaultExcludes != nil {
		ec.DefaultExcludes = *gcfg.DefaultExcludes
	}
	if ec.MaxBytes == 0 {
		ec.MaxBytes = engine.DefaultMaxBytes
	}
	if ec.OutExt == "" {
		ec.OutExt = engine.DefaultOutExt
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(out, ec)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(ec); err != nil {
		return err
	}
	return enc.Close()
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
