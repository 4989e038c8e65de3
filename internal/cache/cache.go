package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
)

type DB struct {
	// Path relative to batch root -> last written encoding
	Entries map[string]Entry `json:"entries"`
}

// Entry records the input Key and the resulting ciphertext fingerprint.
type Entry struct {
	Key         string `json:"key"`
	Fingerprint string `json:"fingerprint"`
	Runes       int    `json:"runes"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "railfencecache.json")
	}
	return filepath.Join(root, ".railfencecache.json")
}

func Load(root string) (DB, error) {
	var db DB
	f, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}

// FastHash returns the xxhash64 of b as 16 lowercase hex digits.
func FastHash(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// Key identifies one encoding of content over a rail count. A changed rail
// count invalidates the entry even when the content did not change.
func Key(content []byte, rails int) string {
	return FastHash(content) + ":" + strconv.Itoa(rails)
}
