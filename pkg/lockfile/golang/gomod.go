// Package golang provides the go.mod extraction strategy.
package golang

import (
	"bufio"
	"os"
	"strings"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/lockfile"
)

// GoMod extracts required modules from go.mod files.
//
// The grammar is line oriented with one stateful feature, the multi-line
// "require ( ... )" block. Replace and exclude directives do not declare a
// dependency version to diff and are skipped. A require line emits only if
// its version token starts with "v" (case-insensitive), which filters out
// stray comments and malformed continuation lines.
//
// The single-line form ("require example.com/foo v1.2.3") is parsed
// leniently: only the first two tokens are read and any trailing tokens
// are ignored.
type GoMod struct{}

// NewGoMod creates the go.mod extraction strategy.
func NewGoMod() *GoMod { return &GoMod{} }

func (g *GoMod) Type() string { return "go.mod" }

func (g *GoMod) Supports(path string) bool {
	return strings.HasSuffix(path, "go.mod")
}

func (g *GoMod) Extract(path string) (lockfile.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}
	defer f.Close()

	set := lockfile.NewSet()
	inRequireBlock := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "replace ") || strings.HasPrefix(line, "exclude ") {
			continue
		}

		if line == "require (" {
			inRequireBlock = true
			continue
		}
		if inRequireBlock && line == ")" {
			inRequireBlock = false
			continue
		}

		if inRequireBlock {
			addRequire(set, line)
			continue
		}

		if rest, found := strings.CutPrefix(line, "require "); found {
			addRequire(set, rest)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}
	return set, nil
}

// addRequire parses "module version ..." and emits an identity when the
// version token carries the semantic-version prefix.
func addRequire(set lockfile.Set, line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	module, version := fields[0], fields[1]
	if version[0] != 'v' && version[0] != 'V' {
		return
	}
	set.Add(lockfile.Identity{Name: module, Version: version})
}
