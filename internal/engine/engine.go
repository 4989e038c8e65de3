package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/railfence/railfence/internal/cache"
	"github.com/railfence/railfence/internal/ignore"
	"github.com/railfence/railfence/internal/logging"
	"github.com/railfence/railfence/internal/railfence"
	"github.com/railfence/railfence/internal/types"
)

// DefaultOutExt is appended to an input path to name its ciphertext file.
const DefaultOutExt = ".rail"

// DefaultMaxBytes is the size limit applied when Config.MaxBytes is zero.
const DefaultMaxBytes = 1 << 20

// Config controls batch selection, concurrency and outputs.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	Threads         int
	Rails           int
	DefaultExcludes bool
	// Write stores each ciphertext at <path><OutExt>.
	Write  bool
	OutExt string
	// NoCache re-encodes and rewrites every file even when unchanged.
	NoCache bool
	// Only restricts the run to these slash-separated paths relative to
	// Root when non-empty. The other filters still apply.
	Only     []string
	Progress func()
	Logger   *slog.Logger
}

// Result is the outcome of Run.
type Result struct {
	Files    []types.FileResult
	Duration time.Duration
}

func (c Config) withDefaults() Config {
	if c.OutExt == "" {
		c.OutExt = DefaultOutExt
	}
	if c.MaxBytes == 0 {
		c.MaxBytes = DefaultMaxBytes
	}
	return c
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func workerCount(threads int) int {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > 32 {
		threads = 32
	}
	return threads
}

type job struct {
	rel  string
	data []byte
}

// Run encodes every selected file under cfg.Root. An invalid rail count fails
// before the tree is walked.
func Run(ctx context.Context, cfg Config) (Result, error) {
	start := time.Now()
	if err := railfence.ValidateRails(cfg.Rails); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg = cfg.withDefaults()
	log := cfg.logger()

	ign, err := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	if err != nil {
		return Result{}, fmt.Errorf("load ignore file: %w", err)
	}

	// prev is read concurrently by workers and never written; next collects
	// the entries of this run under mu.
	useCache := cfg.Write && !cfg.NoCache
	prev := map[string]cache.Entry{}
	next := map[string]cache.Entry{}
	if useCache {
		if db, err := cache.Load(cfg.Root); err == nil {
			prev = db.Entries
		} else {
			log.Debug("starting with empty cache", "err", err)
		}
	}

	var (
		mu       sync.Mutex
		results  []types.FileResult
		firstErr error
		wg       sync.WaitGroup
	)
	jobs := make(chan job)
	for i := 0; i < workerCount(cfg.Threads); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				fr, entry, err := encodeFile(cfg, prev, useCache, j)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results = append(results, fr)
					if useCache {
						next[j.rel] = entry
					}
				}
				if cfg.Progress != nil {
					cfg.Progress()
				}
				mu.Unlock()
			}
		}()
	}

	walkErr := Walk(ctx, cfg, ign, func(rel string, data []byte) {
		log.Debug("queue file", "path", rel, "bytes", len(data))
		select {
		case jobs <- job{rel: rel, data: data}:
		case <-ctx.Done():
		}
	})
	close(jobs)
	wg.Wait()

	if walkErr != nil {
		return Result{}, walkErr
	}
	if firstErr != nil {
		return Result{}, firstErr
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	if useCache {
		if err := cache.Save(cfg.Root, cache.DB{Entries: next}); err != nil {
			log.Warn("could not save cache", "err", err)
		}
	}
	log.Info("batch complete", "files", len(results), "rails", cfg.Rails, "duration", time.Since(start))
	return Result{Files: results, Duration: time.Since(start)}, nil
}

func encodeFile(cfg Config, prev map[string]cache.Entry, useCache bool, j job) (types.FileResult, cache.Entry, error) {
	key := cache.Key(j.data, cfg.Rails)
	out := filepath.Join(cfg.Root, filepath.FromSlash(j.rel)) + cfg.OutExt
	fr := types.FileResult{Path: j.rel, Rails: cfg.Rails}

	if useCache {
		if e, ok := prev[j.rel]; ok && e.Key == key {
			if _, err := os.Stat(out); err == nil {
				fr.Runes, fr.Fingerprint, fr.Output, fr.Cached = e.Runes, e.Fingerprint, out, true
				return fr, e, nil
			}
		}
	}

	ct, err := railfence.Encode(string(j.data), cfg.Rails)
	if err != nil {
		return fr, cache.Entry{}, err
	}
	fr.Ciphertext = ct
	fr.Runes = utf8.RuneCountInString(ct)
	fr.Fingerprint = cache.FastHash([]byte(ct))
	if cfg.Write {
		if err := os.WriteFile(out, []byte(ct), 0644); err != nil {
			return fr, cache.Entry{}, fmt.Errorf("write %s: %w", out, err)
		}
		fr.Output = out
	}
	return fr, cache.Entry{Key: key, Fingerprint: fr.Fingerprint, Runes: fr.Runes}, nil
}
