package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVStore writes records as a CSV file with a header row. An empty batch
// still produces the header, so downstream tooling sees a valid file.
type CSVStore struct {
	dir   string
	stamp string
}

// NewCSVStore creates a CSV store.
func NewCSVStore(dir, stamp string) *CSVStore {
	return &CSVStore{dir: dir, stamp: stamp}
}

// Name identifies the format.
func (s *CSVStore) Name() string { return "csv" }

// Write persists the records and returns the path written.
func (s *CSVStore) Write(records []Record) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("results_%s.csv", s.stamp))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, record := range records {
		if err := w.Write(record.row()); err != nil {
			return "", err
		}
	}
	w.Flush()

	return path, w.Error()
}
