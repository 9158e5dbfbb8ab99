package archive

import (
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the archive schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing archive databases.
func SchemaDDL() string {
	return schemaDDL
}

// Open opens (creating if needed) an archive database and applies the
// schema. An empty path opens an in-memory database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema applies the schema DDL to the provided connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("archive: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
