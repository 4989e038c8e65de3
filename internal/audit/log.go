package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/railfence/railfence/internal/types"
)

// RunRecord summarizes one batch run.
type RunRecord struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Root      string    `json:"root"`
	Rails     int       `json:"rails"`
	Files     int       `json:"files"`
	Encoded   int       `json:"encoded"`
	Cached    int       `json:"cached"`
	Runes     int       `json:"runes"`
	Written   bool      `json:"written"`
	Duration  string    `json:"duration"`
	Commit    string    `json:"commit,omitempty"`
	Branch    string    `json:"branch,omitempty"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".railfence_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "railfence_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

// LoadHistory returns the logged runs, newest first. Reading stops at the
// first record that does not decode.
func (a *AuditLog) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			break
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", record.Timestamp.UnixNano())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at index in LoadHistory order.
func (a *AuditLog) DeleteRecord(index int) error {
	records, err := a.LoadHistory()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}

	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(a.logPath)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

// CreateRunRecord builds the record for a finished run over files.
func CreateRunRecord(root string, rails int, files []types.FileResult, written bool, duration time.Duration) RunRecord {
	rec := RunRecord{
		Timestamp: time.Now(),
		Root:      root,
		Rails:     rails,
		Files:     len(files),
		Written:   written,
		Duration:  duration.String(),
	}
	for _, f := range files {
		if f.Cached {
			rec.Cached++
		} else {
			rec.Encoded++
		}
		rec.Runes += f.Runes
	}
	return rec
}
