package golang

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go.mod")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGoMod_Supports(t *testing.T) {
	parser := NewGoMod()

	tests := []struct {
		path string
		want bool
	}{
		{"go.mod", true},
		{"services/api/go.mod", true},
		{"go.sum", false},
		{"go.work", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := parser.Supports(tt.path); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestGoMod_Extract_Block(t *testing.T) {
	content := `module example.com/demo

go 1.22

require (
	example.com/foo v1.2.3
	example.com/bar v0.5.0 // indirect
	example.com/bad badversion
)
`
	path := writeFixture(t, content)

	set, err := NewGoMod().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2; set: %v", set.Len(), set.Sorted())
	}
	for _, want := range []string{"example.com/foo==v1.2.3", "example.com/bar==v0.5.0"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing identity %s", want)
		}
	}
	// A version token without the leading v emits nothing.
	if _, ok := set["example.com/bad==badversion"]; ok {
		t.Error("non-v version token was emitted")
	}
}

func TestGoMod_Extract_SingleLineRequire(t *testing.T) {
	content := `module example.com/demo

require example.com/foo v1.0.0
require example.com/extra V2.0.0 trailing tokens ignored
require example.com/nope 1.0.0
`
	path := writeFixture(t, content)

	set, err := NewGoMod().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2; set: %v", set.Len(), set.Sorted())
	}
	if _, ok := set["example.com/foo==v1.0.0"]; !ok {
		t.Error("missing identity example.com/foo==v1.0.0")
	}
	// Version prefix check is case-insensitive; trailing tokens are ignored.
	if _, ok := set["example.com/extra==V2.0.0"]; !ok {
		t.Error("missing identity example.com/extra==V2.0.0")
	}
}

func TestGoMod_Extract_SkipsDirectives(t *testing.T) {
	content := `module example.com/demo

// a comment about requires
replace example.com/foo => ../local/foo
exclude example.com/bar v1.0.0

require (
	// block comment line
	example.com/keep v1.1.1
)
`
	path := writeFixture(t, content)

	set, err := NewGoMod().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1; set: %v", set.Len(), set.Sorted())
	}
	if _, ok := set["example.com/keep==v1.1.1"]; !ok {
		t.Error("missing identity example.com/keep==v1.1.1")
	}
}

func TestGoMod_Extract_BlockStateResets(t *testing.T) {
	content := `module example.com/demo

require (
	example.com/in-block v1.0.0
)

go 1.22
toolchain go1.22.1
`
	path := writeFixture(t, content)

	set, err := NewGoMod().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	// Lines after the closing paren must not be parsed as requires.
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1; set: %v", set.Len(), set.Sorted())
	}
}

func TestGoMod_Extract_Empty(t *testing.T) {
	path := writeFixture(t, "")

	set, err := NewGoMod().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}
