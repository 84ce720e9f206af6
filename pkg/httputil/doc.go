// Package httputil provides HTTP utilities for package registry clients.
//
// # Overview
//
// This package provides infrastructure used by all registry API clients:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/depsentry/)
// with configurable TTL. This speeds up repeated health checks of the
// same package and reduces load on registries and deps.dev.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var data versionResponse
//	if ok, _ := cache.Get("depsdev:npm:react@18.2.0", &data); !ok {
//	    data = fetchFromAPI()
//	    cache.Set("depsdev:npm:react@18.2.0", data)
//	}
//
// Cache keys should be namespaced by registry to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a struggling endpoint:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.fetch(ctx, url, &out)
//	})
//
// The cache can be cleared via `depsentry cache clear` or by deleting
// the cache directory.
package httputil
