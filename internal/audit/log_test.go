package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/railfence/railfence/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRunRecord(t *testing.T) {
	files := []types.FileResult{
		{Path: "a.txt", Runes: 5},
		{Path: "b.txt", Runes: 7, Cached: true},
	}
	rec := CreateRunRecord("/tmp/x", 3, files, true, 1500*time.Millisecond)
	assert.Equal(t, 2, rec.Files)
	assert.Equal(t, 1, rec.Encoded)
	assert.Equal(t, 1, rec.Cached)
	assert.Equal(t, 12, rec.Runes)
	assert.Equal(t, "1.5s", rec.Duration)
	assert.True(t, rec.Written)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestAuditLog_LogLoadDelete(t *testing.T) {
	dir := t.TempDir()
	log := NewAuditLog(dir)

	_, err := log.LoadHistory()
	require.Error(t, err, "missing log")

	for rails := 2; rails <= 4; rails++ {
		require.NoError(t, log.LogRun(RunRecord{Timestamp: time.Now(), Rails: rails}))
	}
	_, err = os.Stat(filepath.Join(dir, ".railfence_audit.jsonl"))
	require.NoError(t, err)

	got, err := log.LoadHistory()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 4, got[0].Rails, "newest first")
	assert.NotEmpty(t, got[0].RunID)

	require.NoError(t, log.DeleteRecord(0))
	got, err = log.LoadHistory()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Rails)
	assert.Equal(t, 2, got[1].Rails)

	assert.Error(t, log.DeleteRecord(5))
}

func TestNewAuditLog_PrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, NewAuditLog(dir).LogRun(RunRecord{Rails: 3}))
	_, err := os.Stat(filepath.Join(dir, ".git", "railfence_audit.jsonl"))
	assert.NoError(t, err)
}
