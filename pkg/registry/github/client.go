package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/depsentry/depsentry/pkg/httputil"
	"github.com/depsentry/depsentry/pkg/registry"
)

// RepoInfo holds the popularity metrics fetched from the GitHub repos API.
type RepoInfo struct {
	Stars int
	Forks int
}

// Client provides access to the GitHub API for repository popularity data.
// It handles HTTP requests with caching, automatic retries, and optional
// authentication.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits), and nil for cache to disable caching.
func NewClient(token string, cache *httputil.Cache) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  registry.NewClient("github", cache, headers),
		baseURL: "https://api.github.com",
	}
}

// FetchRepo retrieves star and fork counts for a repository.
func (c *Client) FetchRepo(ctx context.Context, owner, repo string, refresh bool) (*RepoInfo, error) {
	key := fmt.Sprintf("github:repo:%s/%s", owner, repo)

	var info RepoInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetchRepo(ctx, owner, repo, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetchRepo(ctx context.Context, owner, repo string, info *RepoInfo) error {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
		}
		return err
	}
	*info = RepoInfo{Stars: data.Stars, Forks: data.Forks}
	return nil
}

// SplitProjectID extracts owner and repo from a deps.dev project id of the
// form "github.com/owner/repo". Returns ok=false for ids hosted elsewhere.
func SplitProjectID(id string) (owner, repo string, ok bool) {
	rest, found := strings.CutPrefix(id, "github.com/")
	if !found {
		return "", "", false
	}
	owner, repo, found = strings.Cut(rest, "/")
	if !found || owner == "" || repo == "" {
		return "", "", false
	}
	repo, _, _ = strings.Cut(repo, "/")
	repo = strings.TrimSuffix(repo, ".git")
	return owner, repo, true
}

type repoResponse struct {
	Stars int `json:"stargazers_count"`
	Forks int `json:"forks_count"`
}
