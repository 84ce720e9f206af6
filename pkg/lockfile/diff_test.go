package lockfile

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/depsentry/depsentry/pkg/errors"
)

// fixtureExtractor parses "name version" lines, enough to drive the diff
// driver without a real grammar.
type fixtureExtractor struct{}

func (fixtureExtractor) Type() string           { return "fixture" }
func (fixtureExtractor) Supports(p string) bool { return true }
func (fixtureExtractor) Extract(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set := NewSet()
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			set.Add(Identity{Name: fields[0], Version: fields[1]})
		}
	}
	return set, nil
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "deps.txt", "a 1.0.0\nb 2.0.0\n")
	writeFixture(t, dir, "deps.txt.base", "a 1.0.0\n")

	result, err := Run(context.Background(), path, fixtureExtractor{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []Identity{{"b", "2.0.0"}}
	if !reflect.DeepEqual(result.Added, want) {
		t.Errorf("Added = %v, want %v", result.Added, want)
	}
	if result.Format != "fixture" {
		t.Errorf("Format = %q, want fixture", result.Format)
	}
}

func TestRun_NoChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "deps.txt", "a 1.0.0\n")
	writeFixture(t, dir, "deps.txt.base", "a 1.0.0\n")

	result, err := Run(context.Background(), path, fixtureExtractor{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Added) != 0 {
		t.Errorf("Added = %v, want empty", result.Added)
	}
}

func TestRun_MissingCandidate(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), filepath.Join(dir, "absent.txt"), fixtureExtractor{})
	if !errors.Is(err, errors.ErrCodeMissingCandidate) {
		t.Errorf("error code = %v, want MISSING_CANDIDATE", errors.GetCode(err))
	}
}

func TestRun_MissingBase(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "deps.txt", "a 1.0.0\n")

	_, err := Run(context.Background(), path, fixtureExtractor{})
	if !errors.Is(err, errors.ErrCodeMissingBase) {
		t.Errorf("error code = %v, want MISSING_BASE", errors.GetCode(err))
	}
}

func TestResult_Write(t *testing.T) {
	r := &Result{Added: []Identity{
		{"@babel/core", "7.20.0"},
		{"lodash", "4.17.21"},
	}}

	var b strings.Builder
	if err := r.Write(&b); err != nil {
		t.Fatal(err)
	}
	want := "@babel/core 7.20.0\nlodash 4.17.21\n"
	if b.String() != want {
		t.Errorf("Write() = %q, want %q", b.String(), want)
	}
}

func TestResult_WriteFile_SortOrder(t *testing.T) {
	dir := t.TempDir()
	candidate := writeFixture(t, dir, "deps.txt", "zeta 1.0.0\nalpha 2.0.0\nmid 3.0.0\n")
	writeFixture(t, dir, "deps.txt.base", "")

	result, err := Run(context.Background(), candidate, fixtureExtractor{})
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, ReportFilename)
	if err := result.WriteFile(out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			t.Errorf("output lines not sorted: %q before %q", lines[i-1], lines[i])
		}
	}
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3", len(lines))
	}
}

func TestReadReport(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, ReportFilename, "lodash 4.17.21\n\nbroken-line\n@babel/core 7.20.0\n")

	ids, err := ReadReport(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []Identity{
		{"lodash", "4.17.21"},
		{"@babel/core", "7.20.0"},
	}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ReadReport() = %v, want %v", ids, want)
	}
}

func TestBasePath(t *testing.T) {
	if got := BasePath("frontend/yarn.lock"); got != "frontend/yarn.lock.base" {
		t.Errorf("BasePath() = %q", got)
	}
}
