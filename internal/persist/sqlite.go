// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"fillmore-labs.com/behave/internal/behavior"
)

const schema = `CREATE TABLE IF NOT EXISTS summaries (
	signature TEXT PRIMARY KEY,
	summary   BLOB NOT NULL,
	saved_at  DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// SQLite persists behaviors in a SQLite table.
type SQLite struct {
	db *sql.DB
}

var _ Persister = (*SQLite)(nil)

// OpenSQLite opens or creates the database file at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite summary database: %w", err)
	}

	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000", schema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("initialize sqlite summary database: %w", err)
		}
	}

	return &SQLite{db: db}, nil
}

// Load implements [Persister].
func (s *SQLite) Load(ctx context.Context, sig string) (*behavior.MethodBehavior, error) {
	var data []byte

	err := s.db.QueryRowContext(ctx, "SELECT summary FROM summaries WHERE signature = ?", sig).Scan(&data)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %q", ErrNotFound, sig)

	case err != nil:
		return nil, fmt.Errorf("read behavior %q: %w", sig, err)
	}

	return decode(sig, data)
}

// Save implements [Persister].
func (s *SQLite) Save(ctx context.Context, mb *behavior.MethodBehavior) error {
	data, err := encode(mb)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (signature, summary) VALUES (?, ?)
		 ON CONFLICT(signature) DO UPDATE SET summary = excluded.summary, saved_at = CURRENT_TIMESTAMP`,
		mb.Signature(), data); err != nil {
		return fmt.Errorf("write behavior %q: %w", mb.Signature(), err)
	}

	return nil
}

// Close implements [Persister].
func (s *SQLite) Close() error {
	return s.db.Close()
}
