// Package javascript provides extractors for JavaScript lock file formats:
// package-lock.json (npm v2/v3) and yarn.lock.
package javascript

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/lockfile"
)

// PackageLock extracts installed dependencies from package-lock.json
// files using the v2/v3 "packages" map.
//
// Map keys are installation paths ("", "node_modules/foo",
// "node_modules/a/node_modules/b"). The empty key is the root project
// placeholder and is skipped. Only the first "node_modules/" segment is
// stripped from the key: the first segment is always the resolvable
// package name, while nested remainders identify where a conflicting
// version was installed.
type PackageLock struct{}

// NewPackageLock creates the package-lock.json extraction strategy.
func NewPackageLock() *PackageLock { return &PackageLock{} }

func (p *PackageLock) Type() string { return "package-lock.json" }

func (p *PackageLock) Supports(path string) bool {
	return strings.HasSuffix(path, "package-lock.json")
}

type packageLockFile struct {
	Packages map[string]packageLockEntry `json:"packages"`
}

type packageLockEntry struct {
	Version string `json:"version"`
}

func (p *PackageLock) Extract(path string) (lockfile.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}

	var lock packageLockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "parse %s", path)
	}

	set := lockfile.NewSet()
	for pkgPath, entry := range lock.Packages {
		if pkgPath == "" || entry.Version == "" {
			continue
		}
		name := strings.TrimPrefix(pkgPath, "node_modules/")
		set.Add(lockfile.Identity{Name: name, Version: entry.Version})
	}
	return set, nil
}
