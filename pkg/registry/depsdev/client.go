package depsdev

import (
	"context"
	"errors"
	"fmt"

	"github.com/depsentry/depsentry/pkg/httputil"
	"github.com/depsentry/depsentry/pkg/registry"
)

// VersionInfo holds the subset of deps.dev version metadata used for
// health reports.
type VersionInfo struct {
	ProjectID   string   // Related source project id (e.g., "github.com/expressjs/express"), may be empty
	AdvisoryIDs []string // Security advisory identifiers (e.g., "GHSA-...")
	PublishedAt string   // RFC 3339 publication timestamp, may be empty
}

// ProjectInfo holds project-level metadata from deps.dev, including the
// OpenSSF scorecard results. Score fields are nil when the scorecard does
// not include the corresponding check.
type ProjectInfo struct {
	Description     string
	Stars           int
	Forks           int
	OverallScore    *float64 // OpenSSF scorecard aggregate (0-10)
	Maintained      *float64 // "Maintained" check score (0-10)
	Vulnerabilities *float64 // "Vulnerabilities" check score (0-10)
}

// Client provides access to the deps.dev API (v3 plain endpoints plus the
// v3alpha dependents endpoint). It handles caching and automatic retries.
type Client struct {
	*registry.Client
	baseURL  string
	alphaURL string
}

// NewClient creates a deps.dev client backed by the given cache.
// Pass nil to disable caching.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		Client:   registry.NewClient("depsdev", cache, nil),
		baseURL:  "https://api.deps.dev/v3",
		alphaURL: "https://api.deps.dev/v3alpha",
	}
}

// FetchVersion retrieves version metadata for a package in the given system
// (npm, pypi, go). Returns [registry.ErrNotFound] when deps.dev does not
// know the package or version.
func (c *Client) FetchVersion(ctx context.Context, system, pkg, version string, refresh bool) (*VersionInfo, error) {
	key := fmt.Sprintf("depsdev:version:%s:%s:%s", system, pkg, version)

	var info VersionInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetchVersion(ctx, system, pkg, version, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetchVersion(ctx context.Context, system, pkg, version string, info *VersionInfo) error {
	var data versionResponse
	url := fmt.Sprintf("%s/systems/%s/packages/%s/versions/%s",
		c.baseURL, system, registry.URLEncode(pkg), registry.URLEncode(version))
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: %s package %s@%s", err, system, pkg, version)
		}
		return err
	}

	*info = VersionInfo{PublishedAt: data.PublishedAt}
	if len(data.RelatedProjects) > 0 {
		info.ProjectID = data.RelatedProjects[0].ProjectKey.ID
	}
	for _, adv := range data.AdvisoryKeys {
		if adv.ID != "" {
			info.AdvisoryIDs = append(info.AdvisoryIDs, adv.ID)
		}
	}
	return nil
}

// FetchDependents retrieves the dependent package count for a version from
// the v3alpha endpoint. The count is best-effort data; callers typically
// treat errors as "unknown" rather than failing the report.
func (c *Client) FetchDependents(ctx context.Context, system, pkg, version string, refresh bool) (int, error) {
	key := fmt.Sprintf("depsdev:dependents:%s:%s:%s", system, pkg, version)

	var data dependentsResponse
	err := c.Cached(ctx, key, refresh, &data, func() error {
		url := fmt.Sprintf("%s/systems/%s/packages/%s/versions/%s:dependents",
			c.alphaURL, system, registry.URLEncode(pkg), registry.URLEncode(version))
		return c.Get(ctx, url, &data)
	})
	if err != nil {
		return 0, err
	}
	return data.DependentCount, nil
}

// FetchProject retrieves project metadata (description, popularity, OpenSSF
// scorecard) for a deps.dev project id such as "github.com/pallets/flask".
func (c *Client) FetchProject(ctx context.Context, projectID string, refresh bool) (*ProjectInfo, error) {
	key := "depsdev:project:" + projectID

	var info ProjectInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetchProject(ctx, projectID, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetchProject(ctx context.Context, projectID string, info *ProjectInfo) error {
	var data projectResponse
	url := fmt.Sprintf("%s/projects/%s", c.baseURL, registry.URLEncode(projectID))
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: project %s", err, projectID)
		}
		return err
	}

	*info = ProjectInfo{
		Description:  data.Description,
		Stars:        data.StarsCount,
		Forks:        data.ForksCount,
		OverallScore: data.Scorecard.OverallScore,
	}
	for _, check := range data.Scorecard.Checks {
		score := check.Score
		switch check.Name {
		case "Maintained":
			info.Maintained = &score
		case "Vulnerabilities":
			info.Vulnerabilities = &score
		}
	}
	return nil
}

type versionResponse struct {
	PublishedAt     string           `json:"publishedAt"`
	AdvisoryKeys    []advisoryKey    `json:"advisoryKeys"`
	RelatedProjects []relatedProject `json:"relatedProjects"`
}

type advisoryKey struct {
	ID string `json:"id"`
}

type relatedProject struct {
	ProjectKey struct {
		ID string `json:"id"`
	} `json:"projectKey"`
}

type dependentsResponse struct {
	DependentCount int `json:"dependentCount"`
}

type projectResponse struct {
	Description string `json:"description"`
	StarsCount  int    `json:"starsCount"`
	ForksCount  int    `json:"forksCount"`
	Scorecard   struct {
		OverallScore *float64 `json:"overallScore"`
		Checks       []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"checks"`
	} `json:"scorecard"`
}
