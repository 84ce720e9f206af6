package health

import (
	"context"
	stderrors "errors"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/httputil"
	"github.com/depsentry/depsentry/pkg/registry"
	"github.com/depsentry/depsentry/pkg/registry/depsdev"
	"github.com/depsentry/depsentry/pkg/registry/github"
	"github.com/depsentry/depsentry/pkg/registry/npm"
	"github.com/depsentry/depsentry/pkg/registry/pypi"
)

// Systems lists the supported package management systems.
var Systems = []string{"npm", "pypi", "go"}

// freshWindow is how recently a version must have been published to be
// flagged as a fresh publish, a common marker of hijacked releases.
const freshWindow = 24 * time.Hour

type depsdevAPI interface {
	FetchVersion(ctx context.Context, system, pkg, version string, refresh bool) (*depsdev.VersionInfo, error)
	FetchDependents(ctx context.Context, system, pkg, version string, refresh bool) (int, error)
	FetchProject(ctx context.Context, projectID string, refresh bool) (*depsdev.ProjectInfo, error)
}

type npmAPI interface {
	FetchVersion(ctx context.Context, pkg, version string, refresh bool) (*npm.VersionInfo, error)
	FetchLatest(ctx context.Context, pkg string, refresh bool) (string, error)
}

type pypiAPI interface {
	FetchVersion(ctx context.Context, pkg, version string, refresh bool) (*pypi.VersionInfo, error)
	FetchLatest(ctx context.Context, pkg string, refresh bool) (string, error)
}

type githubAPI interface {
	FetchRepo(ctx context.Context, owner, repo string, refresh bool) (*github.RepoInfo, error)
}

// Checker assembles health reports from deps.dev, the package registries,
// and GitHub. Construct with [NewChecker].
type Checker struct {
	depsdev depsdevAPI
	npm     npmAPI
	pypi    pypiAPI
	github  githubAPI
	now     func() time.Time
}

// NewChecker creates a Checker whose registry clients share the given
// cache (nil disables caching). GitHub requests authenticate with the
// GITHUB_TOKEN environment variable when it is set.
func NewChecker(cache *httputil.Cache) *Checker {
	return &Checker{
		depsdev: depsdev.NewClient(cache),
		npm:     npm.NewClient(cache),
		pypi:    pypi.NewClient(cache),
		github:  github.NewClient(os.Getenv("GITHUB_TOKEN"), cache),
		now:     time.Now,
	}
}

// Check gathers all available metadata for one (system, package, version)
// and returns the assembled report.
//
// A package or version unknown to deps.dev is not an error: the report
// comes back with Found=false and every metric unset. Failures of the
// auxiliary sources (dependents, project data, registry lookups) degrade
// the report instead of failing it; only an unknown system, an invalid
// package name, or a deps.dev transport failure return an error.
func (c *Checker) Check(ctx context.Context, system, pkg, version string, refresh bool) (*Report, error) {
	system = strings.ToLower(strings.TrimSpace(system))
	if !slices.Contains(Systems, system) {
		return nil, errors.New(errors.ErrCodeInvalidSystem,
			"package manager %q is not supported (supported: %s)", system, strings.Join(Systems, ", "))
	}
	if err := errors.ValidatePackageName(pkg); err != nil {
		return nil, err
	}

	r := &Report{System: system, Package: pkg, Version: version}

	ver, err := c.depsdev.FetchVersion(ctx, system, pkg, version, refresh)
	if err != nil {
		if stderrors.Is(err, registry.ErrNotFound) {
			return r, nil
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s %s@%s", system, pkg, version)
	}
	r.Found = true
	r.AdvisoryIDs = ver.AdvisoryIDs
	r.PublishedAt = ver.PublishedAt
	r.FreshPublish = freshness(ver.PublishedAt, c.now())

	switch system {
	case "npm":
		if info, err := c.npm.FetchVersion(ctx, pkg, version, refresh); err == nil {
			r.Deprecated = info.Deprecated
			r.NPM = info
		}
		if latest, err := c.npm.FetchLatest(ctx, pkg, refresh); err == nil {
			r.Latest = latest
		}
	case "pypi":
		if info, err := c.pypi.FetchVersion(ctx, pkg, version, refresh); err == nil {
			r.Deprecated = info.Deprecated
		}
		if latest, err := c.pypi.FetchLatest(ctx, pkg, refresh); err == nil {
			r.Latest = latest
		}
	}
	r.UpToDate = compareVersions(version, r.Latest)

	if count, err := c.depsdev.FetchDependents(ctx, system, pkg, version, refresh); err == nil {
		r.Dependents = count
		r.DependentsKnown = true
	}

	if ver.ProjectID != "" {
		c.enrichProject(ctx, r, ver.ProjectID, refresh)
	}

	score := Score(r.Stars, r.Forks, r.Dependents,
		scoreOrZero(r.Maintained), scoreOrZero(r.Vulnerabilities))
	if r.OverallScore != nil {
		score = Combine(*r.OverallScore, score)
	}
	r.CustomScore = &score

	return r, nil
}

// enrichProject fills in description, popularity, and scorecard data.
// When deps.dev has no record of a GitHub-hosted project, stars and forks
// are recovered from the GitHub API instead.
func (c *Checker) enrichProject(ctx context.Context, r *Report, projectID string, refresh bool) {
	proj, err := c.depsdev.FetchProject(ctx, projectID, refresh)
	if err == nil {
		r.Description = proj.Description
		r.Stars = proj.Stars
		r.Forks = proj.Forks
		r.OverallScore = proj.OverallScore
		r.Maintained = proj.Maintained
		r.Vulnerabilities = proj.Vulnerabilities
		return
	}

	owner, repo, ok := github.SplitProjectID(projectID)
	if !ok {
		return
	}
	if info, err := c.github.FetchRepo(ctx, owner, repo, refresh); err == nil {
		r.Stars = info.Stars
		r.Forks = info.Forks
	}
}

func freshness(publishedAt string, now time.Time) string {
	if publishedAt == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return "N/A"
	}
	if now.Sub(t) < freshWindow {
		return "Yes"
	}
	return "No"
}

// compareVersions reports whether current is the registry's latest
// release. Versions that do not parse as semver yield "N/A".
func compareVersions(current, latest string) string {
	if current == "" || latest == "" {
		return "N/A"
	}
	cv, err := semver.NewVersion(current)
	if err != nil {
		return "N/A"
	}
	lv, err := semver.NewVersion(latest)
	if err != nil {
		return "N/A"
	}
	if cv.LessThan(lv) {
		return "No"
	}
	return "Yes"
}

func scoreOrZero(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s
}
