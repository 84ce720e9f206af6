// Package pypi provides an HTTP client for the PyPI JSON API.
//
// # Overview
//
// This package fetches release metadata from the Python Package Index
// (https://pypi.org). PyPI has no first-class deprecation field; the
// conventional signal is the trove classifier
// "Development Status :: 7 - Inactive", which [Client.FetchVersion]
// translates into a deprecation note.
//
// # Usage
//
//	client := pypi.NewClient(cache)
//
//	info, err := client.FetchVersion(ctx, "flask", "3.0.0", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if info.Deprecated != "" {
//	    fmt.Println("deprecated:", info.Deprecated)
//	}
//
// Package names are normalized following PEP 503 before any request.
// [Client.FetchLatest] returns the project's current release version for
// up-to-date comparisons.
package pypi
