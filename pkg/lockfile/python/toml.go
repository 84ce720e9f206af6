package python

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/lockfile"
)

// tomlLock models the shape shared by poetry.lock and uv.lock: an array of
// tables under the top-level "package" key. An absent key decodes to an
// empty slice.
type tomlLock struct {
	Packages []tomlPackage `toml:"package"`
}

type tomlPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// extractTOML reads a TOML lock file and emits one identity per package
// table carrying both a non-empty name and version. Tables missing either
// field are skipped; a malformed individual entry must not abort an
// otherwise-valid file.
func extractTOML(path string) (lockfile.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}

	var lock tomlLock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "parse %s", path)
	}

	set := lockfile.NewSet()
	for _, pkg := range lock.Packages {
		set.Add(lockfile.Identity{Name: pkg.Name, Version: pkg.Version})
	}
	return set, nil
}
