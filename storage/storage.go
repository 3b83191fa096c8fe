// Package storage defines the persistence boundary of the pipeline: a
// cache of dependency parses keyed by the exact sentence text.
package storage

import (
	"context"

	"github.com/korpuslab/patmin/sentence"
)

// ParseCache stores one parse per distinct sentence text. Implementations
// must treat stored parses as immutable: a cached parse is returned as
// written and is never updated in place.
type ParseCache interface {
	// Get returns the cached parse for text, reporting whether it exists.
	Get(ctx context.Context, text string) (sentence.Sentence, bool, error)

	// Put stores the parse for text. Overwriting an existing entry with
	// identical content is allowed.
	Put(ctx context.Context, text string, parse sentence.Sentence) error

	Close() error
}
