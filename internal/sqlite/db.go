package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection to one library database file.
type DB struct {
	*sql.DB
}

// Open opens a library database. The file is a private snapshot copy, but
// the connection is still forced read-only so nothing here can ever write
// photo data.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Surface a missing or malformed snapshot immediately rather than on
	// the first query.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	return &DB{db}, nil
}
