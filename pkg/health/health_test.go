package health

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/registry"
	"github.com/depsentry/depsentry/pkg/registry/depsdev"
	"github.com/depsentry/depsentry/pkg/registry/github"
	"github.com/depsentry/depsentry/pkg/registry/npm"
	"github.com/depsentry/depsentry/pkg/registry/pypi"
)

type stubDepsDev struct {
	version       *depsdev.VersionInfo
	versionErr    error
	dependents    int
	dependentsErr error
	project       *depsdev.ProjectInfo
	projectErr    error
}

func (s *stubDepsDev) FetchVersion(context.Context, string, string, string, bool) (*depsdev.VersionInfo, error) {
	return s.version, s.versionErr
}

func (s *stubDepsDev) FetchDependents(context.Context, string, string, string, bool) (int, error) {
	return s.dependents, s.dependentsErr
}

func (s *stubDepsDev) FetchProject(context.Context, string, bool) (*depsdev.ProjectInfo, error) {
	return s.project, s.projectErr
}

type stubNPM struct {
	version *npm.VersionInfo
	latest  string
	err     error
}

func (s *stubNPM) FetchVersion(context.Context, string, string, bool) (*npm.VersionInfo, error) {
	return s.version, s.err
}

func (s *stubNPM) FetchLatest(context.Context, string, bool) (string, error) {
	return s.latest, s.err
}

type stubPyPI struct {
	version *pypi.VersionInfo
	latest  string
	err     error
}

func (s *stubPyPI) FetchVersion(context.Context, string, string, bool) (*pypi.VersionInfo, error) {
	return s.version, s.err
}

func (s *stubPyPI) FetchLatest(context.Context, string, bool) (string, error) {
	return s.latest, s.err
}

type stubGitHub struct {
	repo *github.RepoInfo
	err  error
}

func (s *stubGitHub) FetchRepo(context.Context, string, string, bool) (*github.RepoInfo, error) {
	return s.repo, s.err
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newTestChecker(dd *stubDepsDev) *Checker {
	return &Checker{
		depsdev: dd,
		npm:     &stubNPM{err: registry.ErrNetwork},
		pypi:    &stubPyPI{err: registry.ErrNetwork},
		github:  &stubGitHub{err: registry.ErrNetwork},
		now:     fixedNow,
	}
}

func TestCheckInvalidSystem(t *testing.T) {
	checker := newTestChecker(&stubDepsDev{})

	_, err := checker.Check(context.Background(), "cargo", "serde", "1.0.0", false)
	if !errors.Is(err, errors.ErrCodeInvalidSystem) {
		t.Errorf("Check() error = %v, want INVALID_SYSTEM", err)
	}
}

func TestCheckInvalidPackageName(t *testing.T) {
	checker := newTestChecker(&stubDepsDev{})

	_, err := checker.Check(context.Background(), "npm", "../../../etc/passwd", "1.0.0", false)
	if !errors.Is(err, errors.ErrCodeInvalidPackage) {
		t.Errorf("Check() error = %v, want INVALID_PACKAGE", err)
	}
}

func TestCheckNotFound(t *testing.T) {
	checker := newTestChecker(&stubDepsDev{
		versionErr: fmt.Errorf("%w: pypi package ghost@0.0.1", registry.ErrNotFound),
	})

	report, err := checker.Check(context.Background(), "pypi", "ghost", "0.0.1", false)
	if err != nil {
		t.Fatalf("Check() error: %v (unknown versions must not fail)", err)
	}
	if report.Found {
		t.Error("Found = true, want false")
	}
}

func TestCheckNetworkError(t *testing.T) {
	checker := newTestChecker(&stubDepsDev{versionErr: registry.ErrNetwork})

	_, err := checker.Check(context.Background(), "pypi", "flask", "3.0.0", false)
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("Check() error = %v, want NETWORK_ERROR", err)
	}
}

func TestCheckFullReport(t *testing.T) {
	overall, maintained, vulns := 6.7, 10.0, 9.0
	dd := &stubDepsDev{
		version: &depsdev.VersionInfo{
			ProjectID:   "github.com/pallets/flask",
			AdvisoryIDs: []string{"GHSA-m2qf-hxjv-5gpq"},
			PublishedAt: "2024-03-15T10:00:00Z", // two hours before fixedNow
		},
		dependents: 90210,
		project: &depsdev.ProjectInfo{
			Description:     "web framework",
			Stars:           66000,
			Forks:           16000,
			OverallScore:    &overall,
			Maintained:      &maintained,
			Vulnerabilities: &vulns,
		},
	}
	checker := newTestChecker(dd)
	checker.pypi = &stubPyPI{version: &pypi.VersionInfo{}, latest: "3.0.2"}

	report, err := checker.Check(context.Background(), "pypi", "flask", "3.0.0", false)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}

	if !report.Found {
		t.Fatal("Found = false, want true")
	}
	if report.Stars != 66000 || report.Forks != 16000 {
		t.Errorf("stars/forks = %d/%d", report.Stars, report.Forks)
	}
	if !report.DependentsKnown || report.Dependents != 90210 {
		t.Errorf("dependents = %d (known=%v)", report.Dependents, report.DependentsKnown)
	}
	if report.FreshPublish != "Yes" {
		t.Errorf("FreshPublish = %q, want Yes", report.FreshPublish)
	}
	if report.Latest != "3.0.2" || report.UpToDate != "No" {
		t.Errorf("latest/uptodate = %q/%q", report.Latest, report.UpToDate)
	}

	// Components saturate popularity and dependents, so the custom score
	// is 10*0.25 + 10*0.2 + 9*0.3 + 10*0.25 = 9.7, averaged with 6.7 -> 8.2.
	if report.CustomScore == nil || *report.CustomScore != 8.2 {
		t.Errorf("CustomScore = %v, want 8.2", report.CustomScore)
	}
}

func TestCheckGitHubFallback(t *testing.T) {
	dd := &stubDepsDev{
		version: &depsdev.VersionInfo{
			ProjectID:   "github.com/tiny/project",
			PublishedAt: "2020-01-01T00:00:00Z",
		},
		dependentsErr: registry.ErrNetwork,
		projectErr:    fmt.Errorf("%w: project github.com/tiny/project", registry.ErrNotFound),
	}
	checker := newTestChecker(dd)
	checker.github = &stubGitHub{repo: &github.RepoInfo{Stars: 42, Forks: 7}}

	report, err := checker.Check(context.Background(), "go", "github.com/tiny/project", "v1.0.0", false)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if report.Stars != 42 || report.Forks != 7 {
		t.Errorf("stars/forks = %d/%d, want GitHub fallback values 42/7", report.Stars, report.Forks)
	}
	if report.DependentsKnown {
		t.Error("DependentsKnown = true, want false when the alpha endpoint fails")
	}
	if report.OverallScore != nil {
		t.Error("OverallScore should stay nil without project data")
	}
	if report.CustomScore == nil {
		t.Error("CustomScore should still be computed from fallback popularity")
	}
}

func TestCheckAuxiliaryFailuresDegrade(t *testing.T) {
	dd := &stubDepsDev{
		version:       &depsdev.VersionInfo{},
		dependentsErr: registry.ErrNetwork,
	}
	checker := newTestChecker(dd)

	report, err := checker.Check(context.Background(), "npm", "lonely-pkg", "1.0.0", false)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !report.Found {
		t.Error("Found = false, want true")
	}
	if report.Deprecated != "" || report.Latest != "" {
		t.Error("registry failures should leave fields empty")
	}
	if report.UpToDate != "N/A" {
		t.Errorf("UpToDate = %q, want N/A", report.UpToDate)
	}
	if report.FreshPublish != "N/A" {
		t.Errorf("FreshPublish = %q, want N/A without a publish time", report.FreshPublish)
	}
}

func TestFreshness(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		name        string
		publishedAt string
		want        string
	}{
		{"two hours old", "2024-03-15T10:00:00Z", "Yes"},
		{"just under a day", "2024-03-14T12:00:01Z", "Yes"},
		{"exactly a day", "2024-03-14T12:00:00Z", "No"},
		{"years old", "2020-01-01T00:00:00Z", "No"},
		{"empty", "", "N/A"},
		{"garbage", "not-a-timestamp", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := freshness(tt.publishedAt, now); got != tt.want {
				t.Errorf("freshness(%q) = %q, want %q", tt.publishedAt, got, tt.want)
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    string
	}{
		{"behind", "1.0.0", "2.0.0", "No"},
		{"current", "2.0.0", "2.0.0", "Yes"},
		{"ahead", "2.1.0", "2.0.0", "Yes"},
		{"v prefix", "v1.2.3", "1.2.3", "Yes"},
		{"partial version", "1.2", "1.3", "No"},
		{"no latest", "1.0.0", "", "N/A"},
		{"not semver", "abcdef", "1.0.0", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareVersions(tt.current, tt.latest); got != tt.want {
				t.Errorf("compareVersions(%q, %q) = %q, want %q", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}
