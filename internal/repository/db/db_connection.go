package db

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Conservative pool settings for Postgres.
const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 5
)

// InitDB opens the store named by dsn and ensures tables exist.
func InitDB(dsn string) (*sqlx.DB, Dialect, error) {
	dialect := DialectFor(dsn)

	db, err := sqlx.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s store: %w", dialect, err)
	}

	if err := configure(db, dialect); err != nil {
		_ = db.Close()
		return nil, "", err
	}

	if err := ensureSchema(db, dialect); err != nil {
		_ = db.Close()
		return nil, "", err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s store: %w", dialect, err)
	}

	return db, dialect, nil
}

func configure(db *sqlx.DB, dialect Dialect) error {
	if dialect == Postgres {
		db.SetMaxOpenConns(postgresMaxOpenConns)
		db.SetMaxIdleConns(postgresMaxIdleConns)
		return nil
	}

	// SQLite is not great with many writers; one connection also keeps
	// :memory: databases alive across queries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("set %s: %w", pragma, err)
		}
	}
	return nil
}

func ensureSchema(db *sqlx.DB, dialect Dialect) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range schemaFor(dialect) {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
