package lockfile

import (
	"sort"
	"strings"
)

// Separator is the canonical delimiter between name and version in a
// serialized identity. A package name containing the separator cannot be
// round-tripped losslessly; no recognized ecosystem allows "==" in names,
// so this is documented rather than enforced.
const Separator = "=="

// Identity is a normalized (name, version) pair for one declared dependency.
type Identity struct {
	Name    string
	Version string
}

// String returns the canonical "name==version" serialization.
func (id Identity) String() string {
	return id.Name + Separator + id.Version
}

// ParseIdentity splits a serialized identity back into its (name, version)
// pair. It splits on the first separator, so the round trip is exact for
// any name that contains no "==" substring. Returns ok=false for strings
// with no separator or an empty name or version half.
func ParseIdentity(s string) (Identity, bool) {
	name, version, found := strings.Cut(s, Separator)
	if !found || name == "" || version == "" {
		return Identity{}, false
	}
	return Identity{Name: name, Version: version}, true
}

// Set is a collection of identities, deduplicated by their serialized
// string. A name may appear with multiple versions (e.g. one per
// workspace); exact name+version pairs appear once.
type Set map[string]Identity

// NewSet creates an empty identity set.
func NewSet() Set {
	return make(Set)
}

// Add inserts an identity into the set. Identities with an empty name or
// version are ignored: extractors treat such entries as unparseable and
// skip them rather than aborting the file.
func (s Set) Add(id Identity) {
	if id.Name == "" || id.Version == "" {
		return
	}
	s[id.String()] = id
}

// Contains reports whether the exact identity is in the set.
func (s Set) Contains(id Identity) bool {
	_, ok := s[id.String()]
	return ok
}

// Len returns the number of distinct identities.
func (s Set) Len() int { return len(s) }

// Sorted returns the identities ordered lexicographically by their
// serialized "name==version" string.
func (s Set) Sorted() []Identity {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Identity, len(keys))
	for i, k := range keys {
		out[i] = s[k]
	}
	return out
}

// Diff returns the identities present in candidate but absent from base,
// ordered lexicographically by serialized string. An identity present in
// both sets never appears; a version change appears once, as the new
// version only.
func Diff(base, candidate Set) []Identity {
	added := NewSet()
	for k, id := range candidate {
		if _, ok := base[k]; !ok {
			added.Add(id)
		}
	}
	return added.Sorted()
}
