package python

import (
	"strings"

	"github.com/depsentry/depsentry/pkg/lockfile"
)

// UV extracts resolved dependencies from uv.lock files. uv serializes its
// resolution the same way poetry does, as an array of package tables, so
// the two formats share one TOML reader.
type UV struct{}

// NewUV creates the uv.lock extraction strategy.
func NewUV() *UV { return &UV{} }

func (u *UV) Type() string { return "uv.lock" }

func (u *UV) Supports(path string) bool {
	return strings.HasSuffix(path, "uv.lock")
}

func (u *UV) Extract(path string) (lockfile.Set, error) {
	return extractTOML(path)
}
