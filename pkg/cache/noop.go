package cache

import (
	"context"
	"time"
)

// Noop is the cache used when Redis is disabled or unreachable: every Get
// misses and every Set is discarded, so handlers always hit the in-memory
// engine directly.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, dest any) error {
	return ErrMiss
}

func (Noop) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
