// Package provider gives the pipeline access to the external annotation
// service that tokenizes, lemmatizes, tags and dependency-parses Russian
// sentences. The core never analyzes text itself; everything linguistic
// comes through this boundary.
package provider

import (
	"context"
	"fmt"

	"github.com/korpuslab/patmin/sentence"
)

// Provider is the annotation capability set consumed by the miners.
type Provider interface {
	// Parse returns the dependency parse of one sentence.
	Parse(ctx context.Context, text string) (sentence.Sentence, error)

	// Render returns a dependency-tree rendering of one sentence as an
	// opaque HTML document. An empty string means the provider has no
	// visualization for the text; callers omit the rendering.
	Render(ctx context.Context, text string) (string, error)
}

// Pinger is implemented by providers whose availability can be checked at
// startup. A failed ping is fatal: the system refuses to run without its
// annotation service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UnavailableError reports that the annotation service cannot be reached.
type UnavailableError struct {
	Addr string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("annotation service unavailable at %s: %v", e.Addr, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
