package db

import (
	"database/sql"

	"github.com/cockroachdb/errors"
)

// All contains the ordered list of migrations to apply.
var All = []string{
	`CREATE TABLE runs (
		id           INTEGER PRIMARY KEY,
		file_path    TEXT NOT NULL,
		token_count  INTEGER NOT NULL,
		accepted     BOOLEAN NOT NULL,
		diagnostic   TEXT NOT NULL DEFAULT '',
		table_source TEXT NOT NULL DEFAULT 'builtin',
		created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX runs_created_at ON runs (created_at)`,
}

// Migrate brings db up to the latest schema, one transaction per step.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return errors.Wrap(err, "creating schema_version table")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return errors.Wrap(err, "checking schema_version")
	}
	if count == 0 {
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return errors.Wrap(err, "initializing schema version")
		}
	}

	var current int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&current); err != nil {
		return errors.Wrap(err, "reading schema version")
	}

	for i := current; i < len(All); i++ {
		if err := apply(db, i); err != nil {
			return err
		}
	}
	return nil
}

func apply(db *sql.DB, i int) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrapf(err, "beginning migration %d", i+1)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(All[i]); err != nil {
		return errors.Wrapf(err, "migration %d failed", i+1)
	}
	if _, err := tx.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
		return errors.Wrapf(err, "updating schema version to %d", i+1)
	}
	return errors.Wrapf(tx.Commit(), "committing migration %d", i+1)
}
