// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package history records completed deployments in a local SQLite database
// under the configured deployments directory.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one completed deploy or upgrade.
type Record struct {
	ID        int64     `json:"id"`
	Program   string    `json:"program"`
	Version   string    `json:"version"`
	Network   string    `json:"network"`
	Address   string    `json:"address"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// Kinds of recorded operations.
const (
	KindDeploy  = "deploy"
	KindUpgrade = "upgrade"
)

// Store handles database operations
type Store struct {
	db *sql.DB
}

// Open initializes the deployment database inside dir, creating the
// directory and schema as needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create deployments dir: %w", err)
	}
	dbPath := filepath.Join(dir, "captain.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS deployments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		program TEXT NOT NULL,
		version TEXT NOT NULL,
		network TEXT NOT NULL,
		address TEXT NOT NULL,
		kind TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_deployments_program ON deployments(program);
	CREATE INDEX IF NOT EXISTS idx_deployments_network ON deployments(network);
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

// Save persists a deployment record.
func (s *Store) Save(rec *Record) error {
	query := `
	INSERT INTO deployments (program, version, network, address, kind, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(query, rec.Program, rec.Version, rec.Network, rec.Address, rec.Kind, ts)
	if err != nil {
		return fmt.Errorf("failed to insert deployment: %w", err)
	}
	return nil
}

// SearchParams filters List results. Zero values match everything.
type SearchParams struct {
	Program string
	Network string
	Limit   int
}

// List returns recorded deployments, newest first.
func (s *Store) List(params SearchParams) ([]*Record, error) {
	query := "SELECT id, program, version, network, address, kind, timestamp FROM deployments WHERE 1=1"
	args := []any{}

	if params.Program != "" {
		query += " AND program = ?"
		args = append(args, params.Program)
	}
	if params.Network != "" {
		query += " AND network = ?"
		args = append(args, params.Network)
	}
	query += " ORDER BY timestamp DESC"
	if params.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, params.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deployments: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.Program, &rec.Version, &rec.Network, &rec.Address, &rec.Kind, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan deployment: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
