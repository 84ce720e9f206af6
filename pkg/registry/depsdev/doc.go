// Package depsdev provides an HTTP client for the deps.dev API.
//
// # Overview
//
// deps.dev (https://deps.dev) aggregates package metadata, security
// advisories, and OpenSSF scorecard results across ecosystems. This
// package uses the v3 API plus the v3alpha dependents endpoint.
//
// # Usage
//
//	client := depsdev.NewClient(cache)
//
//	info, err := client.FetchVersion(ctx, "pypi", "flask", "3.0.0", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if info.ProjectID != "" {
//	    proj, _ := client.FetchProject(ctx, info.ProjectID, false)
//	    fmt.Println(proj.Stars, proj.Forks)
//	}
//
// # Endpoints
//
//   - [Client.FetchVersion]: /v3/systems/{system}/packages/{pkg}/versions/{v}
//   - [Client.FetchDependents]: /v3alpha/.../versions/{v}:dependents
//   - [Client.FetchProject]: /v3/projects/{id}
//
// The dependents endpoint is alpha and may fail independently of the
// others; callers should degrade gracefully when it does.
package depsdev
