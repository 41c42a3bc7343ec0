package db

import "strings"

// Dialect selects the SQL flavour spoken by the configured store.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

const (
	sqliteDriverName   = "sqlite"
	postgresDriverName = "pgx"
)

// DialectFor picks the dialect from a connection string: postgres URLs go to
// pgx, anything else is treated as a SQLite path.
func DialectFor(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return Postgres
	}
	return SQLite
}

// DriverName returns the database/sql driver registered for d.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return postgresDriverName
	}
	return sqliteDriverName
}
