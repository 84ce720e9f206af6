// Package registry provides HTTP clients for package registries and
// metadata APIs.
//
// # Overview
//
// Health reports are assembled from several upstream sources:
//
//   - deps.dev ([depsdev]): version metadata, dependents, OpenSSF scorecard
//   - npm registry ([npm]): deprecation notices, lifecycle scripts, latest version
//   - PyPI ([pypi]): inactive classifier, latest version
//   - GitHub ([github]): repository stars/forks fallback
//
// # Architecture
//
// Each subpackage embeds [Client], which composes the shared concerns:
// response caching via [httputil.Cache], retry with exponential backoff
// via [httputil.RetryWithBackoff], and HTTP status mapping to the
// sentinel errors [ErrNotFound], [ErrNetwork], and [ErrRateLimited].
//
// A typical client call:
//
//	c := depsdev.NewClient(cache)
//	info, err := c.FetchVersion(ctx, "npm", "left-pad", "1.3.0", false)
//	if errors.Is(err, registry.ErrNotFound) {
//	    // package or version unknown upstream
//	}
//
// All fetch methods accept a refresh flag that bypasses the cache, and a
// nil cache disables caching entirely.
//
// [httputil.Cache]: https://pkg.go.dev/github.com/depsentry/depsentry/pkg/httputil#Cache
// [httputil.RetryWithBackoff]: https://pkg.go.dev/github.com/depsentry/depsentry/pkg/httputil#RetryWithBackoff
package registry
