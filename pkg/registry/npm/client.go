package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/depsentry/depsentry/pkg/httputil"
	"github.com/depsentry/depsentry/pkg/registry"
)

// lifecycleScripts are the npm install hooks that run arbitrary commands
// on the consumer's machine, in execution order.
var lifecycleScripts = []string{"preinstall", "install", "postinstall", "prepare"}

// VersionInfo holds the install-safety metadata for one published npm version.
type VersionInfo struct {
	Deprecated     string   // Deprecation message, empty when not deprecated
	Lifecycle      []string // Lifecycle script names present in "scripts"
	PostinstallCmd string   // Command behind the postinstall hook, if any
}

// HasPostinstall reports whether the version declares a postinstall script.
func (v *VersionInfo) HasPostinstall() bool {
	return v.PostinstallCmd != ""
}

// Client provides access to the npm registry API.
// It handles caching and automatic retries.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates an npm registry client backed by the given cache.
// Pass nil to disable caching.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		Client:  registry.NewClient("npm", cache, nil),
		baseURL: "https://registry.npmjs.org",
	}
}

// FetchVersion retrieves deprecation and lifecycle-script metadata for an
// exact published version. Scoped names (@scope/pkg) are supported.
func (c *Client) FetchVersion(ctx context.Context, pkg, version string, refresh bool) (*VersionInfo, error) {
	key := fmt.Sprintf("npm:version:%s:%s", pkg, version)

	var info VersionInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetchVersion(ctx, pkg, version, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetchVersion(ctx context.Context, pkg, version string, info *VersionInfo) error {
	var data versionResponse
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, registry.URLEncode(pkg), registry.URLEncode(version))
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: npm package %s@%s", err, pkg, version)
		}
		return err
	}

	*info = VersionInfo{
		Deprecated:     extractDeprecated(data.Deprecated),
		PostinstallCmd: data.Scripts["postinstall"],
	}
	for _, name := range lifecycleScripts {
		if _, ok := data.Scripts[name]; ok {
			info.Lifecycle = append(info.Lifecycle, name)
		}
	}
	return nil
}

// FetchLatest retrieves the version tagged "latest" from the packument.
func (c *Client) FetchLatest(ctx context.Context, pkg string, refresh bool) (string, error) {
	key := "npm:latest:" + pkg

	var data packumentResponse
	err := c.Cached(ctx, key, refresh, &data, func() error {
		return c.Get(ctx, c.baseURL+"/"+registry.URLEncode(pkg), &data)
	})
	if err != nil {
		return "", err
	}
	return data.DistTags.Latest, nil
}

// extractDeprecated normalizes the "deprecated" field, which the registry
// serves as either a message string or a bare boolean.
func extractDeprecated(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case bool:
		if val {
			return "deprecated"
		}
	}
	return ""
}

type versionResponse struct {
	Deprecated any               `json:"deprecated"`
	Scripts    map[string]string `json:"scripts"`
}

type packumentResponse struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
}
