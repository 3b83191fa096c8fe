package provider

import (
	"context"
	"sync"

	"github.com/korpuslab/patmin/sentence"
	"github.com/korpuslab/patmin/storage"
)

// Cached decorates a Provider with a parse cache. The miners re-parse the
// corpus independently of each other; memoizing by exact text removes the
// redundant work without changing observable behavior, since stripped and
// unstripped texts remain distinct keys and cached parses are never
// mutated.
type Cached struct {
	inner Provider
	store storage.ParseCache

	mu   sync.Mutex
	memo map[string]sentence.Sentence
}

var _ Provider = (*Cached)(nil)

// NewCached wraps inner. store may be nil, in which case only the
// in-memory memo is used.
func NewCached(inner Provider, store storage.ParseCache) *Cached {
	return &Cached{
		inner: inner,
		store: store,
		memo:  map[string]sentence.Sentence{},
	}
}

func (c *Cached) Parse(ctx context.Context, text string) (sentence.Sentence, error) {
	c.mu.Lock()
	p, ok := c.memo[text]
	c.mu.Unlock()
	if ok {
		return p, nil
	}

	if c.store != nil {
		p, ok, err := c.store.Get(ctx, text)
		if err != nil {
			return sentence.Sentence{}, err
		}
		if ok {
			c.remember(text, p)
			return p, nil
		}
	}

	p, err := c.inner.Parse(ctx, text)
	if err != nil {
		return sentence.Sentence{}, err
	}

	if c.store != nil {
		if err := c.store.Put(ctx, text, p); err != nil {
			return sentence.Sentence{}, err
		}
	}

	c.remember(text, p)
	return p, nil
}

// Render is not cached; renderings are requested once per report entry.
func (c *Cached) Render(ctx context.Context, text string) (string, error) {
	return c.inner.Render(ctx, text)
}

// Ping forwards to the inner provider when it supports availability
// checks.
func (c *Cached) Ping(ctx context.Context) error {
	if p, ok := c.inner.(Pinger); ok {
		return p.Ping(ctx)
	}

	return nil
}

func (c *Cached) remember(text string, p sentence.Sentence) {
	c.mu.Lock()
	c.memo[text] = p
	c.mu.Unlock()
}
