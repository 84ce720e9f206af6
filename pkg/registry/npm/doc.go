// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches install-safety metadata from the npm registry
// (https://registry.npmjs.org): deprecation notices and the lifecycle
// scripts a package runs at install time. Postinstall scripts are the
// classic vehicle for supply-chain payloads, so they are surfaced
// explicitly.
//
// # Usage
//
//	client := npm.NewClient(cache)
//
//	info, err := client.FetchVersion(ctx, "left-pad", "1.3.0", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if info.HasPostinstall() {
//	    fmt.Println("postinstall:", info.PostinstallCmd)
//	}
//
// [Client.FetchLatest] returns the "latest" dist-tag from the packument
// for up-to-date comparisons.
package npm
