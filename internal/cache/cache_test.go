package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railfence/railfence/internal/types"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load should return empty DB and error
	db, _ := Load(dir)
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.Entries["a.txt"] = Entry{Key: "deadbeef:3", Fingerprint: "ff", Runes: 4}
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".railfencecache.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got := db2.Entries["a.txt"]; got.Key != "deadbeef:3" || got.Runes != 4 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestSave_PrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, DB{Entries: map[string]Entry{"x": {Key: "y"}}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "railfencecache.json")); err != nil {
		t.Fatalf("expected cache under .git: %v", err)
	}
}

func TestSave_NilEntries(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error for nil entries")
	}
}

func TestKey(t *testing.T) {
	a := Key([]byte("hello"), 3)
	if a != Key([]byte("hello"), 3) {
		t.Fatal("key not stable")
	}
	if a == Key([]byte("hello"), 4) {
		t.Fatal("rails must change the key")
	}
	if a == Key([]byte("hellp"), 3) {
		t.Fatal("content must change the key")
	}
	// xxhash64 of the empty input
	if got := FastHash(nil); got != "ef46db3751d8e999" {
		t.Fatalf("empty hash: %q", got)
	}
	if got := FastHash([]byte("x")); len(got) != 16 {
		t.Fatalf("expected 16 hex digits, got %q", got)
	}
}

func TestResultsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := []types.FileResult{{Path: "a.txt", Rails: 3, Runes: 5, Fingerprint: "abc"}}
	if err := SaveResults(dir, 3, in); err != nil {
		t.Fatalf("save results: %v", err)
	}
	got, err := LoadResults(dir)
	if err != nil {
		t.Fatalf("load results: %v", err)
	}
	if got.Count != 1 || got.Rails != 3 || got.Results[0].Path != "a.txt" {
		t.Fatalf("unexpected results: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatal("expected timestamp")
	}
}
