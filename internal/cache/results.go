package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/railfence/railfence/internal/types"
)

// BatchResults stores the results and metadata of the last batch run
type BatchResults struct {
	Results   []types.FileResult `json:"results"`
	Timestamp time.Time          `json:"timestamp"`
	Root      string             `json:"root"`
	Rails     int                `json:"rails"`
	Count     int                `json:"count"`
}

func resultsPath(root string) string {
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "railfence_last_batch.json")
	}
	return filepath.Join(root, ".railfence_last_batch.json")
}

// SaveResults saves batch results to cache
func SaveResults(root string, rails int, results []types.FileResult) error {
	br := BatchResults{
		Results:   results,
		Timestamp: time.Now(),
		Root:      root,
		Rails:     rails,
		Count:     len(results),
	}
	b, err := json.MarshalIndent(br, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(resultsPath(root), b, 0644)
}

// LoadResults loads the last batch results from cache
func LoadResults(root string) (BatchResults, error) {
	var br BatchResults
	f, err := os.ReadFile(resultsPath(root))
	if err != nil {
		return br, err
	}
	if err := json.Unmarshal(f, &br); err != nil {
		return br, err
	}
	return br, nil
}
