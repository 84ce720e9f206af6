// Package github provides an HTTP client for the GitHub repos API.
//
// # Overview
//
// When deps.dev has no project record for a package, star and fork counts
// can still be recovered directly from GitHub for projects whose id is of
// the form "github.com/owner/repo". That fallback is this package's only
// job; full repository metadata stays with deps.dev.
//
// # Usage
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"), cache)
//
//	if owner, repo, ok := github.SplitProjectID(projectID); ok {
//	    info, err := client.FetchRepo(ctx, owner, repo, false)
//	    ...
//	}
//
// # Authentication
//
// Unauthenticated requests are limited to 60 per hour per IP. Supplying a
// personal access token raises the limit to 5000.
package github
