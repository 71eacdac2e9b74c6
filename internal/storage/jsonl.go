package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONLStore writes records as newline-delimited JSON.
type JSONLStore struct {
	dir   string
	stamp string
}

// NewJSONLStore creates a JSONL store.
func NewJSONLStore(dir, stamp string) *JSONLStore {
	return &JSONLStore{dir: dir, stamp: stamp}
}

// Name identifies the format.
func (s *JSONLStore) Name() string { return "jsonl" }

// Write persists the records and returns the path written.
func (s *JSONLStore) Write(records []Record) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("results_%s.jsonl", s.stamp))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return "", err
		}
		if _, err := w.Write(line); err != nil {
			return "", err
		}
		if err := w.WriteByte('\n'); err != nil {
			return "", err
		}
	}

	return path, w.Flush()
}
