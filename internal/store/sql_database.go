package store

import (
	"database/sql"

	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/migrations"
)

// Dialect identifies the SQL engine behind a [DB] connection. The backend
// uses it to pick placeholder formats and JSON field-extraction syntax.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps a database/sql connection with the dialect it speaks and the
// application logger. Both SQL connectors produce this type so the rest of
// the store layer is engine-agnostic.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the SQL engine of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}
