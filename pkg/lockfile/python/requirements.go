package python

import (
	"bufio"
	"os"
	"strings"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/lockfile"
)

// Requirements extracts exact pins from requirements.txt files.
//
// Only lines containing "==" are captured: range specifiers, editable
// installs, and URL requirements are ignored because only exact pins are
// diffable as discrete versions.
type Requirements struct{}

// NewRequirements creates the requirements.txt extraction strategy.
func NewRequirements() *Requirements { return &Requirements{} }

func (r *Requirements) Type() string { return "requirements.txt" }

func (r *Requirements) Supports(path string) bool {
	return strings.HasSuffix(path, "requirements.txt")
}

func (r *Requirements) Extract(path string) (lockfile.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}
	defer f.Close()

	set := lockfile.NewSet()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, version, found := strings.Cut(line, "==")
		if !found {
			continue
		}
		set.Add(lockfile.Identity{
			Name:    strings.TrimSpace(name),
			Version: strings.TrimSpace(version),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}
	return set, nil
}
