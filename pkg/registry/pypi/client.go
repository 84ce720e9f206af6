package pypi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/depsentry/depsentry/pkg/httputil"
	"github.com/depsentry/depsentry/pkg/registry"
)

// inactiveClassifier marks a project its maintainers have declared dead.
const inactiveClassifier = "development status :: 7 - inactive"

// VersionInfo holds deprecation metadata for one published PyPI release.
type VersionInfo struct {
	Deprecated string // Human-readable deprecation note, empty when active
}

// Client provides access to the PyPI JSON API.
// It handles caching and automatic retries.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a PyPI client backed by the given cache.
// Pass nil to disable caching.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		Client:  registry.NewClient("pypi", cache, nil),
		baseURL: "https://pypi.org/pypi",
	}
}

// FetchVersion retrieves trove classifiers for an exact release and reports
// the project as deprecated when it carries the
// "Development Status :: 7 - Inactive" classifier.
func (c *Client) FetchVersion(ctx context.Context, pkg, version string, refresh bool) (*VersionInfo, error) {
	pkg = registry.NormalizePkgName(pkg)
	key := fmt.Sprintf("pypi:version:%s:%s", pkg, version)

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
	var data apiResponse
	url := fmt.Sprintf("%s/%s/%s/json", c.baseURL, pkg, registry.URLEncode(version))
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: pypi package %s==%s", err, pkg, version)
		}
		return err
	}

	*info = VersionInfo{}
	for _, classifier := range data.Info.Classifiers {
		if strings.ToLower(strings.TrimSpace(classifier)) == inactiveClassifier {
			info.Deprecated = "Inactive/Deprecated (Development Status :: 7 - Inactive)"
			break
		}
	}
	return nil
}

// FetchLatest retrieves the current release version of a project.
func (c *Client) FetchLatest(ctx context.Context, pkg string, refresh bool) (string, error) {
	pkg = registry.NormalizePkgName(pkg)
	key := "pypi:latest:" + pkg

	var data apiResponse
	err := c.Cached(ctx, key, refresh, &data, func() error {
		return c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data)
	})
	if err != nil {
		return "", err
	}
	return data.Info.Version, nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Version     string   `json:"version"`
	Classifiers []string `json:"classifiers"`
}
