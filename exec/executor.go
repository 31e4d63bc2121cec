// Package exec applies ordered DDL statements to a live database. The
// ordering engine itself never touches a connection; this is the executor
// collaborator sitting on the other side of the emission interface.
package exec

import (
	"context"
	"database/sql"
	"fmt"

	// Database drivers registered for the supported providers.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var driverNames = map[string]string{
	"postgres":   "postgres",
	"postgresql": "postgres",
	"mysql":      "mysql",
	"sqlite":     "sqlite3",
	"sqlite3":    "sqlite3",
}

// Open opens a database handle for the given provider and connection URL.
func Open(provider, url string) (*sql.DB, error) {
	driver, ok := driverNames[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", provider, err)
	}
	return db, nil
}

// Executor executes rendered DDL statements.
type Executor struct {
	db *sql.DB
}

// NewExecutor creates a new executor over an open database handle.
func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Apply executes the statements in order inside a single transaction. The
// first failing statement rolls everything back and is reported with its
// position in the sequence.
func (e *Executor) Apply(ctx context.Context, statements []string) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("statement %d failed: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
