package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore writes records into an email_results table in a per-run
// database file.
type SQLiteStore struct {
	dir   string
	stamp string
}

// NewSQLiteStore creates a SQLite store.
func NewSQLiteStore(dir, stamp string) *SQLiteStore {
	return &SQLiteStore{dir: dir, stamp: stamp}
}

// Name identifies the format.
func (s *SQLiteStore) Name() string { return "sqlite" }

const createTableSQL = `
CREATE TABLE IF NOT EXISTS email_results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT,
	company TEXT,
	url TEXT,
	email TEXT,
	status TEXT,
	message_id TEXT,
	error TEXT,
	sender TEXT,
	timestamp TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const insertSQL = `
INSERT INTO email_results
	(run_id, company, url, email, status, message_id, error, sender, timestamp)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Write persists the records and returns the path written.
func (s *SQLiteStore) Write(records []Record) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("results_%s.db", s.stamp))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		return "", fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.RunID, r.Company, r.URL, r.Email, string(r.Status),
			r.MessageID, r.Error, r.Sender,
			r.Timestamp.Format("2006-01-02 15:04:05"),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return path, nil
}
