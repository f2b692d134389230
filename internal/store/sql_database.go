package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/migrations"
)

// dialect carries the per-engine differences the repositories care about.
type dialect struct {
	// migrationDialect is the goose dialect name.
	migrationDialect string
	placeholder      sq.PlaceholderFormat

	// typedParams makes bare parameters in a SELECT list carry a type, which
	// PostgreSQL needs in INSERT .. SELECT.
	typedParams bool
}

var (
	postgresDialect = dialect{migrationDialect: migrations.DialectPostgres, placeholder: sq.Dollar, typedParams: true}
	sqliteDialect   = dialect{migrationDialect: migrations.DialectSQLite, placeholder: sq.Question}
)

// param returns a placeholder for a value of SQL type typ.
func (d dialect) param(typ string) string {
	if d.typedParams {
		return "CAST(? AS " + typ + ")"
	}
	return "?"
}

// DB is a database handle shared by the SQL repositories.
type DB struct {
	*sql.DB
	dialect            dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, d dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            d,
		builder:            sq.StatementBuilder.PlaceholderFormat(d.placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.migrationDialect)
}
