// Package python provides extractors for Python lock file formats:
// poetry.lock, uv.lock, and pinned requirements.txt files.
package python

import (
	"strings"

	"github.com/depsentry/depsentry/pkg/lockfile"
)

// Poetry extracts resolved dependencies from poetry.lock files. The lock
// file carries the full resolved set, so every package table becomes one
// identity.
type Poetry struct{}

// NewPoetry creates the poetry.lock extraction strategy.
func NewPoetry() *Poetry { return &Poetry{} }

func (p *Poetry) Type() string { return "poetry.lock" }

func (p *Poetry) Supports(path string) bool {
	return strings.HasSuffix(path, "poetry.lock")
}

func (p *Poetry) Extract(path string) (lockfile.Set, error) {
	return extractTOML(path)
}
