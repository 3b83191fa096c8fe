package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/korpuslab/patmin/sentence"
	"github.com/korpuslab/patmin/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ParseStore persists dependency parses as token JSON keyed by sentence
// text, so repeated analysis runs skip the annotation service.
type ParseStore struct {
	pool *sqlitex.Pool
}

var _ storage.ParseCache = (*ParseStore)(nil)

func NewParseStore(pool *sqlitex.Pool) *ParseStore {
	return &ParseStore{pool: pool}
}

// Open creates (or opens) the cache database at dbPath.
func Open(ctx context.Context, dbPath string) (*ParseStore, error) {
	pool, err := NewPool(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	return NewParseStore(pool), nil
}

func (s *ParseStore) Get(ctx context.Context, text string) (sentence.Sentence, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return sentence.Sentence{}, false, err
	}
	defer s.pool.Put(conn)

	var tokens []sentence.Token
	found := false

	err = sqlitex.Execute(conn, "SELECT tokens FROM parses WHERE text = ?", &sqlitex.ExecOptions{
		Args: []interface{}{text},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &tokens)
		},
	})
	if err != nil {
		return sentence.Sentence{}, false, fmt.Errorf("failed to read cached parse: %w", err)
	}

	if !found {
		return sentence.Sentence{}, false, nil
	}

	return sentence.Sentence{Text: text, Tokens: tokens}, true, nil
}

func (s *ParseStore) Put(ctx context.Context, text string, parse sentence.Sentence) error {
	data, err := json.Marshal(parse.Tokens)
	if err != nil {
		return err
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO parses (text, tokens) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{text, string(data)},
	})
	if err != nil {
		return fmt.Errorf("failed to store parse: %w", err)
	}

	return nil
}

func (s *ParseStore) Close() error {
	return s.pool.Close()
}
