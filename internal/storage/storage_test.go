package storage

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleRecords() []Record {
	ts := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	return []Record{
		{
			RunID:     "run-1",
			Company:   "acme.io",
			URL:       "https://acme.io/contact",
			Email:     "info@acme.io",
			Status:    StatusSent,
			MessageID: "msg-123",
			Sender:    "me@probe.dev",
			Timestamp: ts,
		},
		{
			RunID:     "run-1",
			Company:   "empty.example.net",
			URL:       "https://empty.example.net",
			Status:    StatusNoEmail,
			Error:     "no email addresses found",
			Sender:    "me@probe.dev",
			Timestamp: ts,
		},
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	if _, err := New(t.TempDir(), Format("parquet")); err == nil {
		t.Error("New() with unsupported format: want error")
	}
}

func TestNew_All_BuildsEveryStore(t *testing.T) {
	stores, err := New(t.TempDir(), FormatAll)
	if err != nil {
		t.Fatalf("New(all) error: %v", err)
	}
	if len(stores) != 5 {
		t.Errorf("New(all) built %d stores, want 5", len(stores))
	}
}

func TestNew_CreatesOutputDir(t *testing.T) {
	dir := t.TempDir() + "/nested/results"

	if _, err := New(dir, FormatCSV); err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestCSVStore_Write(t *testing.T) {
	store := NewCSVStore(t.TempDir(), "20260823_103000")

	path, err := store.Write(sampleRecords())
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "company" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "info@acme.io" {
		t.Errorf("email cell = %q, want info@acme.io", rows[1][2])
	}
	if rows[2][3] != string(StatusNoEmail) {
		t.Errorf("status cell = %q, want %q", rows[2][3], StatusNoEmail)
	}
}

func TestCSVStore_Write_EmptyBatchKeepsHeader(t *testing.T) {
	store := NewCSVStore(t.TempDir(), "20260823_103000")

	path, err := store.Write(nil)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if !strings.HasPrefix(string(data), "company,") {
		t.Errorf("header missing from empty output: %q", string(data))
	}
}

func TestJSONLStore_Write(t *testing.T) {
	store := NewJSONLStore(t.TempDir(), "20260823_103000")

	path, err := store.Write(sampleRecords())
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first Record
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1 is not JSON: %v", err)
	}
	if first.Email != "info@acme.io" || first.Status != StatusSent {
		t.Errorf("decoded record = %+v", first)
	}
}

func TestYAMLStore_Write(t *testing.T) {
	store := NewYAMLStore(t.TempDir(), "20260823_103000")

	path, err := store.Write(sampleRecords())
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}

	var decoded []Record
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d records, want 2", len(decoded))
	}
	if decoded[1].Status != StatusNoEmail {
		t.Errorf("status = %q, want %q", decoded[1].Status, StatusNoEmail)
	}
}

func TestXLSXStore_Write(t *testing.T) {
	store := NewXLSXStore(t.TempDir(), "20260823_103000")

	path, err := store.Write(sampleRecords())
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Results", "A1")
	if err != nil || header != "company" {
		t.Errorf("A1 = %q (err %v), want company", header, err)
	}
	email, err := f.GetCellValue("Results", "C2")
	if err != nil || email != "info@acme.io" {
		t.Errorf("C2 = %q (err %v), want info@acme.io", email, err)
	}
}

func TestSQLiteStore_Write(t *testing.T) {
	store := NewSQLiteStore(t.TempDir(), "20260823_103000")

	path, err := store.Write(sampleRecords())
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM email_results").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 2 {
		t.Errorf("row count = %d, want 2", count)
	}

	var email, status string
	err = db.QueryRow(
		"SELECT email, status FROM email_results WHERE company = ?", "acme.io",
	).Scan(&email, &status)
	if err != nil {
		t.Fatalf("query record: %v", err)
	}
	if email != "info@acme.io" || status != string(StatusSent) {
		t.Errorf("got (%q, %q), want (info@acme.io, sent)", email, status)
	}
}

func TestWriteAll_CollectsPaths(t *testing.T) {
	dir := t.TempDir()
	stores := []Store{
		NewCSVStore(dir, "20260823_103000"),
		NewJSONLStore(dir, "20260823_103000"),
	}

	paths, err := WriteAll(stores, sampleRecords())
	if err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for name, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s path %q not written: %v", name, path, err)
		}
	}
}
