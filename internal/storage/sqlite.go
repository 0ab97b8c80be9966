package storage

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Open opens the database file, creating it if needed, and runs
// migrations.
func Open(dbfile string) (*sqlx.DB, error) {
	conn, err := sqlx.Open("sqlite", dbfile)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := RunMigrations(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// RunMigrations executes the key/value schema. Idempotent and safe to
// run multiple times on the same database.
func RunMigrations(conn *sqlx.DB) error {
	_, err := conn.Exec(`CREATE TABLE IF NOT EXISTS KeyValue (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return errors.Wrap(err, "run migrations")
}

// SQLiteKV stores key/value pairs in a single sqlite table. Writes
// are committed before Set returns, which gives the article store its
// persist-before-return guarantee.
type SQLiteKV struct {
	conn    *sqlx.DB
	getStmt *sqlx.Stmt
	setStmt *sqlx.Stmt
	delStmt *sqlx.Stmt
}

// NewSQLiteKV prepares statements over an existing migrated
// connection.
func NewSQLiteKV(conn *sqlx.DB) (*SQLiteKV, error) {
	kv := &SQLiteKV{conn: conn}
	var err error

	kv.getStmt, err = conn.Preparex(`SELECT value FROM KeyValue WHERE key = ?`)
	if err != nil {
		return nil, errors.Wrap(err, "prepare get")
	}

	kv.setStmt, err = conn.Preparex(`INSERT INTO KeyValue (key, value, updated)
		VALUES (?, ?, strftime("%Y-%m-%d %H:%M:%f", "now"))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated = excluded.updated`)
	if err != nil {
		return nil, errors.Wrap(err, "prepare set")
	}

	kv.delStmt, err = conn.Preparex(`DELETE FROM KeyValue WHERE key = ?`)
	if err != nil {
		return nil, errors.Wrap(err, "prepare delete")
	}

	return kv, nil
}

// Get returns the stored value and whether the key exists.
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var value string
	err := s.getStmt.Get(&value, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key.
func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.setStmt.Exec(key, value)
	return err
}

// Delete removes key.
func (s *SQLiteKV) Delete(key string) error {
	_, err := s.delStmt.Exec(key)
	return err
}
