package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLStore writes records as a YAML document.
type YAMLStore struct {
	dir   string
	stamp string
}

// NewYAMLStore creates a YAML store.
func NewYAMLStore(dir, stamp string) *YAMLStore {
	return &YAMLStore{dir: dir, stamp: stamp}
}

// Name identifies the format.
func (s *YAMLStore) Name() string { return "yaml" }

// Write persists the records and returns the path written.
func (s *YAMLStore) Write(records []Record) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("results_%s.yaml", s.stamp))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)

	if err := encoder.Encode(records); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}

	return path, nil
}
