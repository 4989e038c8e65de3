package engine

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/railfence/railfence/internal/ignore"
)

// Walk traverses cfg.Root and invokes handle for each eligible text file with
// its slash-separated path relative to the root.
func Walk(ctx context.Context, cfg Config, ign ignore.Matcher, handle func(rel string, data []byte)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var only map[string]bool
	if len(cfg.Only) > 0 {
		only = make(map[string]bool, len(cfg.Only))
		for _, p := range cfg.Only {
			only[strings.TrimPrefix(filepath.ToSlash(p), "./")] = true
		}
	}
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if p == cfg.Root {
				return err
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			if ign.Match(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if only != nil && !only[rel] {
			return nil
		}
		if isOwnFile(rel, cfg.OutExt) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) || ign.Match(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			cfg.logger().Debug("skip oversized file", "path", rel, "size", info.Size())
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			cfg.logger().Debug("skip unreadable file", "path", rel, "err", err)
			return nil
		}
		if looksBinary(b) || looksNonTextMIME(rel, b) || !utf8.Valid(b) {
			cfg.logger().Debug("skip non-text file", "path", rel)
			return nil
		}
		handle(rel, b)
		return nil
	})
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// looksNonTextMIME uses the file extension and a tiny content sniff to skip
// clearly non-text content in addition to NUL-byte detection.
func looksNonTextMIME(path string, b []byte) bool {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
			return true
		}
		if strings.Contains(ct, "zip") || strings.Contains(ct, "tar") || strings.Contains(ct, "gzip") {
			return true
		}
	}
	if len(b) >= 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n" {
		return true
	}
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

// CountTargets returns the number of files Run would encode for cfg.
func CountTargets(cfg Config) (int, error) {
	cfg = cfg.withDefaults()
	ign, err := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	if err != nil {
		return 0, err
	}
	n := 0
	err = Walk(context.Background(), cfg, ign, func(string, []byte) { n++ })
	return n, err
}
