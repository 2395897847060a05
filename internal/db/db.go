// Package db records parse runs in a SQLite file.
package db

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	// one writer; batch workers funnel through here
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "migrating %s", path)
	}
	return db, nil
}

// Run is one recorded parse of an input file.
type Run struct {
	ID          int64
	FilePath    string
	TokenCount  int
	Accepted    bool
	Diagnostic  string
	TableSource string
	CreatedAt   time.Time
}

// Record inserts r and returns its id. CreatedAt is set by the database.
func Record(db *sql.DB, r Run) (int64, error) {
	src := r.TableSource
	if src == "" {
		src = "builtin"
	}
	res, err := db.Exec(
		`INSERT INTO runs (file_path, token_count, accepted, diagnostic, table_source) VALUES (?, ?, ?, ?, ?)`,
		r.FilePath, r.TokenCount, r.Accepted, r.Diagnostic, src,
	)
	if err != nil {
		return 0, errors.Wrapf(err, "recording run for %s", r.FilePath)
	}
	return res.LastInsertId()
}

// ListOptions narrows List.
type ListOptions struct {
	Limit      int
	FailedOnly bool
}

// List returns recorded runs, newest first.
func List(db *sql.DB, opts ListOptions) ([]Run, error) {
	q := `SELECT id, file_path, token_count, accepted, diagnostic, table_source, CAST(strftime('%s', created_at) AS INTEGER) FROM runs`
	var args []any
	if opts.FailedOnly {
		q += ` WHERE accepted = 0`
	}
	q += ` ORDER BY created_at DESC, id DESC`
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.ID, &r.FilePath, &r.TokenCount, &r.Accepted, &r.Diagnostic, &r.TableSource, &created); err != nil {
			return nil, errors.Wrap(err, "scanning run")
		}
		r.CreatedAt = time.Unix(created, 0).UTC()
		runs = append(runs, r)
	}
	return runs, errors.Wrap(rows.Err(), "iterating runs")
}
