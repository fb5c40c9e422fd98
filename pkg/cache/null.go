package cache

import (
	"context"
	"time"
)

// NullCache discards every write and always misses. It stands in for the
// file cache when caching is off (--no-cache or the config's cache.disabled),
// so render code paths never have to branch on whether a cache exists.
type NullCache struct{}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)       { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                    { return nil }
func (NullCache) Close() error                                            { return nil }

var _ Cache = NullCache{}
