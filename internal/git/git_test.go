package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func initRepo(t *testing.T) (string, func(args ...string)) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, string(out))
		}
	}
	run("init", ".")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "tester")
	return dir, run
}

func TestStagedFiles(t *testing.T) {
	dir, run := initRepo(t)
	run("commit", "--allow-empty", "-m", "init")

	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.txt", "b.txt", "docs/c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	run("add", "a.txt", "docs/c.txt")

	got, err := StagedFiles(dir)
	if err != nil {
		t.Fatalf("StagedFiles: %v", err)
	}
	if want := []string{"a.txt", "docs/c.txt"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	sub, err := StagedFiles(filepath.Join(dir, "docs"))
	if err != nil {
		t.Fatalf("StagedFiles(docs): %v", err)
	}
	if want := []string{"c.txt"}; !reflect.DeepEqual(sub, want) {
		t.Fatalf("got %v want %v", sub, want)
	}
}

func TestStagedFiles_NotADirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := StagedFiles(f); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}
