// Package freq provides an insertion-ordered frequency counter. General
// purpose top-k utilities do not guarantee a stable order for equal counts;
// pattern ranking requires ties to be broken by first observation, so the
// counter tracks an explicit sequence number per key.
package freq

import "sort"

// Entry is one ranked key with its count and the value stored at the key's
// first observation.
type Entry[V any] struct {
	Key   string
	Count int
	Value V
}

type slot[V any] struct {
	seq   int
	count int
	value V
}

// Counter counts string keys. The value passed with the first Add of a key
// is retained for the key's lifetime; later values are ignored.
type Counter[V any] struct {
	slots map[string]*slot[V]
	next  int
}

// NewCounter returns an empty counter.
func NewCounter[V any]() *Counter[V] {
	return &Counter[V]{slots: map[string]*slot[V]{}}
}

// Add increments the count for key and returns the new count. On the first
// observation of key, value is stored as the key's example value.
func (c *Counter[V]) Add(key string, value V) int {
	s, ok := c.slots[key]
	if !ok {
		s = &slot[V]{seq: c.next, value: value}
		c.next++
		c.slots[key] = s
	}

	s.count++
	return s.count
}

// Len returns the number of distinct keys.
func (c *Counter[V]) Len() int {
	return len(c.slots)
}

// Top returns at most k entries ordered by count descending; equal counts
// are ordered by first observation.
func (c *Counter[V]) Top(k int) []Entry[V] {
	keys := make([]string, 0, len(c.slots))
	for key := range c.slots {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		si, sj := c.slots[keys[i]], c.slots[keys[j]]
		if si.count != sj.count {
			return si.count > sj.count
		}

		return si.seq < sj.seq
	})

	if k >= 0 && len(keys) > k {
		keys = keys[:k]
	}

	entries := make([]Entry[V], len(keys))
	for i, key := range keys {
		s := c.slots[key]
		entries[i] = Entry[V]{Key: key, Count: s.count, Value: s.value}
	}

	return entries
}
