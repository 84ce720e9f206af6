// Package health assembles supply-chain health reports for packages.
//
// # Overview
//
// A health report answers "should I trust this dependency?" for one
// exact (system, package, version) triple. It combines:
//
//   - deps.dev version metadata: security advisories, publish time
//   - deps.dev project metadata: description, stars, forks, OpenSSF scorecard
//   - deps.dev dependents count (how much of the ecosystem relies on it)
//   - npm: deprecation notices and install lifecycle scripts
//   - PyPI: the "Development Status :: 7 - Inactive" classifier
//   - GitHub: stars/forks fallback for projects deps.dev doesn't track
//
// # Usage
//
//	checker := health.NewChecker(cache)
//	report, err := checker.Check(ctx, "npm", "event-stream", "3.3.6", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range report.Lines() {
//	    fmt.Printf("%s: %s\n", line.Key, line.Value)
//	}
//
// # Scoring
//
// Beyond relaying the OpenSSF scorecard aggregate, [Score] computes a
// custom 0-10 health score that weighs security higher than popularity,
// and [Combine] averages the two when both exist. Missing inputs default
// to zero rather than failing the report.
//
// # Degradation
//
// Only deps.dev is load-bearing: a version it doesn't know yields a
// "Not Found" report (not an error), and failures of every auxiliary
// source simply leave the corresponding fields unset.
package health
