// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about graph builds, rendering, and
// cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core library dependency-free from observability frameworks
// while allowing different backends (OpenTelemetry, Prometheus, ...).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Callers emit events around operations:
//
//	observability.Build().OnBuildStart(ctx, input)
//	// ... build graphs ...
//	observability.Build().OnBuildComplete(ctx, input, nodes, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from parsing and graph construction.
type BuildHooks interface {
	// OnBuildStart records the beginning of a parse-and-build run.
	OnBuildStart(ctx context.Context, input string)

	// OnBuildComplete records the outcome of a parse-and-build run.
	OnBuildComplete(ctx context.Context, input string, nodes, edges int, duration time.Duration, err error)

	// OnRenderStart records the beginning of a render.
	OnRenderStart(ctx context.Context, format string)

	// OnRenderComplete records the outcome of a render.
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string)                                   {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopBuildHooks) OnRenderStart(context.Context, string)                          {}
func (NoopBuildHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
	cacheHooks = NoopCacheHooks{}
}
