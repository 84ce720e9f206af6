package lockfile

import (
	"github.com/depsentry/depsentry/pkg/errors"
)

// Extractor reads dependency identities from one lock file grammar.
//
// Implementations are pure: no shared mutable state, no network access,
// one file read per Extract call. Entries missing a name or version are
// skipped silently; only file-level failures (unreadable file, broken
// document syntax) produce an error.
type Extractor interface {
	// Extract parses the file at path and returns the deduplicated set of
	// dependency identities it declares.
	Extract(path string) (Set, error)
	// Supports reports whether this extractor handles the given file path,
	// matched against the path's trailing suffix.
	Supports(path string) bool
	// Type returns the lock file format identifier (e.g. "poetry.lock").
	Type() string
}

// Detect finds the single extraction strategy that supports the given
// path. Dispatch is pure and performs no I/O. Returns an
// UNSUPPORTED_FORMAT error when no strategy matches; the caller aborts
// rather than attempting best-effort parsing.
func Detect(path string, extractors ...Extractor) (Extractor, error) {
	for _, ex := range extractors {
		if ex.Supports(path) {
			return ex, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported lock file: %s", path)
}
