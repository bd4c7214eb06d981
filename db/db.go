// Package db persists catalog items and saved quotes in SQLite.
// The pricing engine never touches this package; callers load inputs
// here, run the engine, and store the finished results.
package db

import (
	"database/sql"
	"embed"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	apperrors "contractor-quote/internal/errors"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Open opens the SQLite database, sets pragmas, validates connectivity,
// and applies pending migrations.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, apperrors.Storage("create database directory", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Storage("open sqlite database", err)
	}

	if _, err := conn.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		conn.Close()
		return nil, apperrors.Storage("set sqlite pragmas", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, apperrors.Storage("ping sqlite database", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func migrate(conn *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return apperrors.Storage("set goose dialect", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return apperrors.Storage("run migrations", err)
	}
	return nil
}
