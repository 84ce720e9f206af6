// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about lockfile extraction and
// registry API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDiffHooks(&myDiffHooks{})
//	    observability.SetRegistryHooks(&myRegistryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Diff().OnExtractStart(ctx, format, path)
//	// ... extract ...
//	observability.Diff().OnExtractComplete(ctx, format, path, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// DiffHooks receives events from the lockfile extraction and diff driver.
type DiffHooks interface {
	// OnExtractStart fires before an extraction strategy runs against a file.
	OnExtractStart(ctx context.Context, format, path string)
	// OnExtractComplete fires after extraction with the emitted identity count.
	OnExtractComplete(ctx context.Context, format, path string, count int, duration time.Duration, err error)
	// OnDiffComplete fires after the set difference has been computed.
	OnDiffComplete(ctx context.Context, format string, added int, duration time.Duration)
}

// RegistryHooks receives events from registry and deps.dev API clients.
type RegistryHooks interface {
	// OnFetchStart fires before an HTTP fetch (cache misses only).
	OnFetchStart(ctx context.Context, registry, key string)
	// OnFetchComplete fires after the fetch completes or fails.
	OnFetchComplete(ctx context.Context, registry, key string, cached bool, duration time.Duration, err error)
}

// noopDiffHooks is the default DiffHooks implementation.
type noopDiffHooks struct{}

func (noopDiffHooks) OnExtractStart(context.Context, string, string) {}
func (noopDiffHooks) OnExtractComplete(context.Context, string, string, int, time.Duration, error) {
}
func (noopDiffHooks) OnDiffComplete(context.Context, string, int, time.Duration) {}

// noopRegistryHooks is the default RegistryHooks implementation.
type noopRegistryHooks struct{}

func (noopRegistryHooks) OnFetchStart(context.Context, string, string) {}
func (noopRegistryHooks) OnFetchComplete(context.Context, string, string, bool, time.Duration, error) {
}

var (
	mu            sync.RWMutex
	diffHooks     DiffHooks     = noopDiffHooks{}
	registryHooks RegistryHooks = noopRegistryHooks{}
)

// SetDiffHooks registers hooks for extraction and diff events.
// Passing nil restores the no-op implementation.
func SetDiffHooks(h DiffHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		diffHooks = noopDiffHooks{}
		return
	}
	diffHooks = h
}

// SetRegistryHooks registers hooks for registry fetch events.
// Passing nil restores the no-op implementation.
func SetRegistryHooks(h RegistryHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		registryHooks = noopRegistryHooks{}
		return
	}
	registryHooks = h
}

// Diff returns the registered DiffHooks (never nil).
func Diff() DiffHooks {
	mu.RLock()
	defer mu.RUnlock()
	return diffHooks
}

// Registry returns the registered RegistryHooks (never nil).
func Registry() RegistryHooks {
	mu.RLock()
	defer mu.RUnlock()
	return registryHooks
}
