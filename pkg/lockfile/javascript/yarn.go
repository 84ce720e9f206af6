package javascript

import (
	"os"
	"strings"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/lockfile"
	"github.com/depsentry/depsentry/pkg/yarnlock"
)

// BlockParser turns raw yarn.lock text into a mapping from the lock
// file's raw selector key (possibly a comma-separated multi-alias group)
// to that block's fields. Any conformant implementation of the Yarn block
// grammar satisfies the contract; [yarnlock.Parser] is the default.
type BlockParser interface {
	Parse(data []byte) (map[string]map[string]string, error)
}

// Yarn extracts resolved dependencies from yarn.lock files.
//
// Lexical parsing of the block format is delegated to a [BlockParser];
// this extractor only derives the package name from each selector:
//
//   - the first comma-separated selector is taken, trimmed of whitespace
//     and enclosing quotes
//   - selectors carrying the "@npm:" alias marker name the package before
//     the marker ("alias@npm:real-name@^1.0.0")
//   - otherwise the name is everything before the last "@"; a last "@" at
//     position 0 would mean a scoped name with no version separator at
//     all, so such selectors are skipped as malformed
type Yarn struct {
	Parser BlockParser
}

// NewYarn creates the yarn.lock extraction strategy backed by the default
// block parser.
func NewYarn() *Yarn {
	return &Yarn{Parser: yarnlock.Parser{}}
}

func (y *Yarn) Type() string { return "yarn.lock" }

func (y *Yarn) Supports(path string) bool {
	return strings.HasSuffix(path, "yarn.lock")
}

func (y *Yarn) Extract(path string) (lockfile.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}

	blocks, err := y.Parser.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "parse %s", path)
	}

	set := lockfile.NewSet()
	for key, fields := range blocks {
		if len(fields) == 0 {
			continue
		}
		version := fields["version"]
		if version == "" {
			continue
		}
		if name := selectorName(key); name != "" {
			set.Add(lockfile.Identity{Name: name, Version: version})
		}
	}
	return set, nil
}

// selectorName derives the package name from a raw selector key.
// Returns "" when no name can be derived; the caller skips the entry.
func selectorName(key string) string {
	selector, _, _ := strings.Cut(key, ",")
	selector = strings.Trim(strings.TrimSpace(selector), `"`)

	const npmMarker = "@npm:"
	if name, _, found := strings.Cut(selector, npmMarker); found {
		return name
	}

	at := strings.LastIndex(selector, "@")
	if at <= 0 {
		return ""
	}
	return selector[:at]
}
