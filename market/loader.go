package market

import (
	"context"
	"sync/atomic"
	"time"
)

// Fetcher is satisfied by *Client
type Fetcher interface {
	Fetch(ctx context.Context, r TimeRange) (*Result, error)
}

// Loader numbers each request so that only the latest response is applied
type Loader struct {
	fetcher Fetcher
	timeout time.Duration
	seq     atomic.Uint64
}

// NewLoader wraps a fetcher; each load is bounded by timeout
func NewLoader(f Fetcher, timeout time.Duration) *Loader {
	return &Loader{fetcher: f, timeout: timeout}
}

// Begin reserves the sequence number for a new request
func (l *Loader) Begin() uint64 {
	return l.seq.Add(1)
}

// Latest reports whether seq belongs to the most recent request
func (l *Loader) Latest(seq uint64) bool {
	return l.seq.Load() == seq
}

// Load runs one fetch. It is safe to call from a tea.Cmd goroutine.
func (l *Loader) Load(ctx context.Context, r TimeRange) (*Result, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.fetcher.Fetch(ctx, r)
}
