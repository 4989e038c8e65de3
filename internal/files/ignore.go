package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// AppendIgnore ensures the given pattern is present in .gitignore at root.
// It creates the file if missing. Idempotent.
func AppendIgnore(root, pattern string) error {
	return AppendLine(filepath.Join(root, ".gitignore"), pattern)
}

// AppendLine adds pattern as its own line to the file at path unless a line
// with the same trimmed text is already there. A file that does not end in a
// newline gets one first.
func AppendLine(path, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	existing := map[string]bool{}
	var last byte = '\n'
	if f, err := os.Open(path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		_ = f.Close()
		if b, err := os.ReadFile(path); err == nil && len(b) > 0 {
			last = b[len(b)-1]
		}
	}
	if existing[pattern] {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if last != '\n' {
		pattern = "\n" + pattern
	}
	_, err = f.WriteString(pattern + "\n")
	return err
}

// OutputPattern is the .gitignore pattern covering files written with ext.
func OutputPattern(ext string) string {
	return "*" + ext
}
