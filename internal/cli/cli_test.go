package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", "depsentry")
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", "depsentry"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	if cache := newCache(true); cache != nil {
		t.Error("newCache(true) should return nil")
	}
}

func TestNewCacheEnabled(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache := newCache(false)
	if cache == nil {
		t.Fatal("newCache(false) returned nil")
	}
	if cache.TTL() != defaultCacheTTL {
		t.Errorf("TTL = %v, want %v", cache.TTL(), defaultCacheTTL)
	}
}

func TestExtractorsDispatch(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"poetry.lock", "poetry.lock"},
		{"sub/dir/uv.lock", "uv.lock"},
		{"requirements.txt", "requirements.txt"},
		{"frontend/package-lock.json", "package-lock.json"},
		{"yarn.lock", "yarn.lock"},
		{"go.mod", "go.mod"},
	}

	exs := extractors()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got string
			for _, ex := range exs {
				if ex.Supports(tt.path) {
					got = ex.Type()
					break
				}
			}
			if got != tt.want {
				t.Errorf("dispatch(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "depsentry" {
		t.Errorf("Use = %q, want %q", root.Use, "depsentry")
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be true")
	}

	want := []string{"diff", "check", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if strings.HasPrefix(sub.Use, name) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
