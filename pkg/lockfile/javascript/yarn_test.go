package javascript

import "testing"

func TestYarn_Supports(t *testing.T) {
	parser := NewYarn()

	tests := []struct {
		path string
		want bool
	}{
		{"yarn.lock", true},
		{"frontend/yarn.lock", true},
		{"package-lock.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := parser.Supports(tt.path); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestYarn_Extract(t *testing.T) {
	content := `# yarn lockfile v1


lodash@^4.17.20, lodash@^4.17.21:
  version "4.17.21"
  resolved "https://registry.yarnpkg.com/lodash/-/lodash-4.17.21.tgz"

"@babel/core@^7.0.0":
  version "7.20.0"
`
	path := writeFixture(t, "yarn.lock", content)

	set, err := NewYarn().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2; set: %v", set.Len(), set.Sorted())
	}
	// Scoped names use the last "@" as the separator, not the leading one.
	for _, want := range []string{"lodash==4.17.21", "@babel/core==7.20.0"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing identity %s", want)
		}
	}
}

func TestYarn_Extract_NpmAlias(t *testing.T) {
	content := `"my-alias@npm:real-name@^1.0.0":
  version "1.4.0"
`
	path := writeFixture(t, "yarn.lock", content)

	set, err := NewYarn().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if _, ok := set["my-alias==1.4.0"]; !ok {
		t.Errorf("alias name not taken from before @npm: marker; set: %v", set.Sorted())
	}
}

func TestSelectorName(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     string
	}{
		{"plain", "lodash@^4.17.21", "lodash"},
		{"multi alias takes first", "pkg@^1.0.0, pkg@^1.2.0", "pkg"},
		{"quoted scoped", `"@babel/core@^7.0.0"`, "@babel/core"},
		{"npm alias", `"alias@npm:real-name@^1.0.0"`, "alias"},
		{"exact pin", "left-pad@1.3.0", "left-pad"},
		{"no separator", "malformed", ""},
		{"bare scoped name", "@scope/pkg", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectorName(tt.selector); got != tt.want {
				t.Errorf("selectorName(%q) = %q, want %q", tt.selector, got, tt.want)
			}
		})
	}
}

// staticParser substitutes the block-parsing collaborator in tests.
type staticParser struct {
	blocks map[string]map[string]string
}

func (p staticParser) Parse([]byte) (map[string]map[string]string, error) {
	return p.blocks, nil
}

func TestYarn_Extract_SkipsEntriesWithoutVersion(t *testing.T) {
	parser := &Yarn{Parser: staticParser{blocks: map[string]map[string]string{
		"good@^1.0.0":    {"version": "1.0.0"},
		"no-version@^2":  {"resolved": "https://example.com"},
		"empty-details@": nil,
	}}}
	path := writeFixture(t, "yarn.lock", "ignored")

	set, err := parser.Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1; set: %v", set.Len(), set.Sorted())
	}
	if _, ok := set["good==1.0.0"]; !ok {
		t.Error("missing identity good==1.0.0")
	}
}
