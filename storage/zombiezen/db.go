package zombiezen

import (
	"context"
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS parses (
    text   TEXT PRIMARY KEY,
    tokens TEXT NOT NULL
);
`

// NewPool creates a new Zombiezen SQLite connection pool with reasonable
// defaults (e.g., WAL mode enabled) and the parse-cache schema applied.
func NewPool(ctx context.Context, dbPath string) (*sqlitex.Pool, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s", dbPath)

	// zombiezen/sqlitex.NewPool with default options uses flags:
	// sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}

	if err := createSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func createSchema(ctx context.Context, pool *sqlitex.Pool) error {
	conn, err := pool.Take(ctx)
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("failed to create parse cache schema: %w", err)
	}

	return nil
}
