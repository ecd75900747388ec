package storage

import (
	"database/sql"
	"fmt"
	"strings"

	// database/sql drivers: pgx for Postgres, modernc for sqlite.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// DB wraps a sql.DB connection together with the driver it was opened with,
// so the repository can adjust its placeholder style.
type DB struct {
	SQL    *sql.DB
	Driver string
}

// Open connects to the store named by dsn and ensures the schema exists.
// A postgres:// (or postgresql://) URL selects the pgx driver; anything else
// is treated as a sqlite path, ":memory:" included.
func Open(dsn string) (*DB, error) {
	driver := DriverSQLite
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = DriverPostgres
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// modernc gives every connection its own :memory: database.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SQL: conn, Driver: driver}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS expenses (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	amount_cents INTEGER NOT NULL CHECK (amount_cents >= 0),
	category TEXT NOT NULL CHECK (category IN ('travel', 'food', 'supplies', 'other')),
	expense_date TEXT NOT NULL,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS expenses (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
	category TEXT NOT NULL CHECK (category IN ('travel', 'food', 'supplies', 'other')),
	expense_date DATE NOT NULL,
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

func (db *DB) migrate() error {
	schema := sqliteSchema
	if db.Driver == DriverPostgres {
		schema = postgresSchema
	}
	_, err := db.SQL.Exec(schema)
	return err
}

func (db *DB) Close() error {
	return db.SQL.Close()
}
