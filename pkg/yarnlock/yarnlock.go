// Package yarnlock parses the yarn.lock block grammar.
//
// The format groups one resolution per block: an unindented selector line
// ending in a colon (possibly a quoted, comma-separated multi-alias
// group), followed by indented field lines. Both the classic v1 layout
// (`version "1.2.3"`) and the YAML-flavored berry layout
// (`version: 1.2.3`) are handled.
//
// The parser is deliberately shallow: it exposes each block's raw
// selector key and its top-level scalar fields, leaving selector
// interpretation to the caller. Nested sub-blocks (dependencies,
// optionalDependencies, ...) are not needed for version extraction and
// are skipped.
package yarnlock

import (
	"bufio"
	"bytes"
	"strings"
)

// Parser parses yarn.lock content into selector → field maps.
type Parser struct{}

// Parse scans data block by block. The returned map is keyed by each
// block's raw selector (colon stripped, quotes preserved); values hold
// the block's top-level fields with surrounding quotes removed.
func (Parser) Parse(data []byte) (map[string]map[string]string, error) {
	blocks := make(map[string]map[string]string)
	var current map[string]string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := strings.TrimRight(scanner.Text(), " \r")
		if raw == "" {
			continue
		}

		line := strings.TrimLeft(raw, " ")
		indent := len(raw) - len(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		if indent == 0 {
			// Selector line opening a new block.
			if !strings.HasSuffix(line, ":") {
				continue
			}
			current = make(map[string]string)
			blocks[strings.TrimSuffix(line, ":")] = current
			continue
		}

		if current == nil || indent != 2 {
			continue
		}
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			// Sub-block header such as "dependencies:".
			continue
		}
		if name, value, ok := splitField(line); ok {
			current[name] = value
		}
	}
	return blocks, scanner.Err()
}

// splitField parses one field line in either layout:
//
//	version "1.2.3"      (classic)
//	version: 1.2.3       (berry)
func splitField(line string) (name, value string, ok bool) {
	if n, v, found := strings.Cut(line, ": "); found && !strings.Contains(n, " ") {
		return unquote(n), unquote(v), true
	}
	n, v, found := strings.Cut(line, " ")
	if !found {
		return "", "", false
	}
	return unquote(n), unquote(v), true
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
