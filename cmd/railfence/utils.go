package railfence

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/railfence/railfence/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultRails is used when neither the flag nor a config file sets one.
const defaultRails = 3

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickRails resolves the rail count: an explicit --rails wins even when it is
// not positive, so the encoder can reject it; then local, global, default.
func pickRails(cmd *cobra.Command, cli int, local, global *int) int {
	if f := cmd.Flags().Lookup("rails"); f != nil && f.Changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return defaultRails
}

// colorEnabled reports whether output to w may carry ANSI styling.
func colorEnabled(w io.Writer, local, global *bool) bool {
	if flagNoColor || pickBool(false, local, global) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger writes diagnostics to the command's stderr at the -v level.
func newLogger(cmd *cobra.Command, local, global *bool) *slog.Logger {
	w := cmd.ErrOrStderr()
	return logging.New(w, flagVerbose, !colorEnabled(w, local, global))
}

// readInput returns the plaintext: args joined by spaces, else the named
// file, else stdin. One trailing line break is dropped from file and stdin
// input.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var (
		b   []byte
		err error
	)
	if file != "" && file != "-" {
		b, err = os.ReadFile(file)
	} else {
		b, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
