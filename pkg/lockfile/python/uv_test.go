package python

import "testing"

func TestUV_Supports(t *testing.T) {
	parser := NewUV()

	tests := []struct {
		path string
		want bool
	}{
		{"uv.lock", true},
		{"api/uv.lock", true},
		{"poetry.lock", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := parser.Supports(tt.path); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestUV_Extract(t *testing.T) {
	content := `version = 1
requires-python = ">=3.12"

[[package]]
name = "anyio"
version = "4.3.0"
source = { registry = "https://pypi.org/simple" }

[[package]]
name = "idna"
version = "3.6"
source = { registry = "https://pypi.org/simple" }
`
	path := writeFixture(t, "uv.lock", content)

	set, err := NewUV().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if _, ok := set["anyio==4.3.0"]; !ok {
		t.Error("missing identity anyio==4.3.0")
	}
}

func TestUV_Extract_NoPackages(t *testing.T) {
	path := writeFixture(t, "uv.lock", "version = 1\n")

	set, err := NewUV().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}
