// Package storage persists per-site processing records in durable formats.
package storage

import (
	"fmt"
	"os"
	"time"
)

// Status labels the outcome of processing one site.
type Status string

const (
	StatusSent         Status = "sent"
	StatusSendFailed   Status = "send_failed"
	StatusFoundNotSent Status = "found_not_sent"
	StatusNoEmail      Status = "no_email"
	StatusCrawlFailed  Status = "crawl_failed"
	StatusError        Status = "error"
)

// Record is one processed site. Fields are explicit and typed; optional
// fields are empty strings when absent.
type Record struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Company   string    `json:"company" yaml:"company"`
	URL       string    `json:"url" yaml:"url"`
	Email     string    `json:"email" yaml:"email"`
	Status    Status    `json:"status" yaml:"status"`
	MessageID string    `json:"message_id,omitempty" yaml:"message_id,omitempty"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`
	Sender    string    `json:"sender" yaml:"sender"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// columns is the header shared by the tabular formats.
var columns = []string{
	"company", "url", "email", "status",
	"message_id", "error", "sender", "timestamp",
}

// row renders the record for tabular formats.
func (r Record) row() []string {
	return []string{
		r.Company, r.URL, r.Email, string(r.Status),
		r.MessageID, r.Error, r.Sender,
		r.Timestamp.Format("2006-01-02 15:04:05"),
	}
}

// Store writes a batch of records to one output format.
type Store interface {
	// Name identifies the format ("csv", "xlsx", ...).
	Name() string

	// Write persists the records and returns the path written.
	Write(records []Record) (string, error)
}

// Format selects which store implementations to build.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
	FormatJSONL  Format = "jsonl"
	FormatYAML   Format = "yaml"
	FormatAll    Format = "all"
)

// New builds the stores for the requested format. Filenames share a
// timestamp fixed here, so one run's outputs sort together.
func New(dir string, format Format) ([]Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		return []Store{NewCSVStore(dir, stamp)}, nil
	case FormatXLSX:
		return []Store{NewXLSXStore(dir, stamp)}, nil
	case FormatSQLite:
		return []Store{NewSQLiteStore(dir, stamp)}, nil
	case FormatJSONL:
		return []Store{NewJSONLStore(dir, stamp)}, nil
	case FormatYAML:
		return []Store{NewYAMLStore(dir, stamp)}, nil
	case FormatAll:
		return []Store{
			NewCSVStore(dir, stamp),
			NewXLSXStore(dir, stamp),
			NewSQLiteStore(dir, stamp),
			NewJSONLStore(dir, stamp),
			NewYAMLStore(dir, stamp),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteAll writes the records through every store, collecting the paths by
// format name. The first error aborts.
func WriteAll(stores []Store, records []Record) (map[string]string, error) {
	paths := make(map[string]string, len(stores))
	for _, store := range stores {
		path, err := store.Write(records)
		if err != nil {
			return paths, fmt.Errorf("%s store: %w", store.Name(), err)
		}
		paths[store.Name()] = path
	}
	return paths, nil
}
