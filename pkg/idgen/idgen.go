// Package idgen allocates the human-readable sequence numbers printed on
// registration forms and receipts. Sequences are monotonic per key for the
// lifetime of the process, which is the lifetime of every record here.
package idgen

import "sync"

// Allocator hands out monotonically increasing sequence numbers keyed by
// series name (one series per document type).
type Allocator struct {
	mu   sync.Mutex
	seqs map[string]uint64
}

func New() *Allocator {
	return &Allocator{seqs: make(map[string]uint64)}
}

// Next returns the next sequence number for the series, starting at 1.
func (a *Allocator) Next(series string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seqs[series]++
	return a.seqs[series]
}

// Peek returns the last sequence handed out for the series, 0 if none.
func (a *Allocator) Peek(series string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seqs[series]
}
