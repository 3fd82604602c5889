package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the journal schema, applied in file name order
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings the attendance journal schema up to date
func Migrate(db *sql.DB) error {
	m := sqlmigrator.New(db, darwin.SqliteDialect{})

	return m.Migrate(SqlFiles, "sql")
}
