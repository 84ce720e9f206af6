package health

import (
	"strconv"
	"strings"

	"github.com/depsentry/depsentry/pkg/registry/npm"
)

// maxCmdLen caps how much of a postinstall command the report shows.
const maxCmdLen = 160

// Report holds everything gathered for one (system, package, version).
//
// Found is false when deps.dev has no record of the version; the report
// then renders as a "Not Found" skeleton and every metric stays at its
// zero value. Pointer fields distinguish "zero" from "unknown".
type Report struct {
	System  string
	Package string
	Version string
	Found   bool

	Description     string
	Stars           int
	Forks           int
	Dependents      int
	DependentsKnown bool

	OverallScore    *float64 // deps.dev scorecard aggregate
	Maintained      *float64 // OpenSSF "Maintained" check
	Vulnerabilities *float64 // OpenSSF "Vulnerabilities" check
	CustomScore     *float64 // blended score, see Score

	AdvisoryIDs  []string
	Deprecated   string
	PublishedAt  string
	FreshPublish string // "Yes", "No", or "N/A"
	Latest       string
	UpToDate     string // "Yes", "No", or "N/A"

	NPM *npm.VersionInfo // npm install-script details, nil outside npm
}

// Line is one key/value row of a rendered report.
type Line struct {
	Key   string
	Value string
}

// Lines renders the report as ordered key/value rows, ready for styled
// terminal output.
func (r *Report) Lines() []Line {
	if !r.Found {
		return r.notFoundLines()
	}

	lines := []Line{
		{"Package", r.Package},
		{"Version", r.Version},
		{"Package Health Score", formatScore(r.OverallScore)},
		{"Description", orNA(r.Description)},
		{"Popularity (Stars)", strconv.Itoa(r.Stars)},
		{"Popularity (Forks)", strconv.Itoa(r.Forks)},
		{"Dependents", r.formatDependents()},
		{"Maintained Score", formatScore(r.Maintained)},
	}

	if len(r.AdvisoryIDs) > 0 {
		lines = append(lines,
			Line{"Security Advisory Count", strconv.Itoa(len(r.AdvisoryIDs))},
			Line{"Security Advisory IDs", strings.Join(r.AdvisoryIDs, ", ")},
		)
	} else {
		lines = append(lines, Line{"Security Advisory", "None"})
	}

	deprecated := r.Deprecated
	if deprecated == "" {
		deprecated = "None"
	}
	lines = append(lines,
		Line{"Deprecated", deprecated},
		Line{"Custom Health Score", formatCustomScore(r.CustomScore)},
		Line{"Security Score (Vulnerabilities)", formatScore(r.Vulnerabilities)},
		Line{"Published At", orNA(r.PublishedAt)},
		Line{"Fresh Publish (<24h)", r.FreshPublish},
		Line{"Latest Version", orNA(r.Latest)},
		Line{"Up To Date", r.UpToDate},
	)

	if r.System == "npm" {
		lines = append(lines, r.npmLines()...)
	}
	return lines
}

func (r *Report) notFoundLines() []Line {
	return []Line{
		{"Package", r.Package},
		{"Version", r.Version},
		{"Package Health Score", "Not Found"},
		{"Description", "N/A"},
		{"Popularity (Stars)", "N/A"},
		{"Popularity (Forks)", "N/A"},
		{"Dependents", "N/A"},
		{"Maintained Score", "N/A"},
		{"Security Advisory", "None"},
		{"Security Score (Vulnerabilities)", "N/A"},
		{"Deprecated", "N/A"},
		{"Published At", "N/A"},
		{"Fresh Publish (<24h)", "N/A"},
	}
}

func (r *Report) npmLines() []Line {
	hasPostinstall := r.NPM != nil && r.NPM.HasPostinstall()

	lines := []Line{
		{"Has Postinstall", yesNo(hasPostinstall)},
	}
	lifecycle := "None"
	if r.NPM != nil && len(r.NPM.Lifecycle) > 0 {
		lifecycle = strings.Join(r.NPM.Lifecycle, ", ")
	}
	lines = append(lines, Line{"Lifecycle Scripts", lifecycle})
	if hasPostinstall {
		lines = append(lines, Line{"Postinstall Cmd", truncate(r.NPM.PostinstallCmd, maxCmdLen)})
	}
	return lines
}

func (r *Report) formatDependents() string {
	if !r.DependentsKnown {
		return "N/A"
	}
	return strconv.Itoa(r.Dependents)
}

func formatScore(s *float64) string {
	if s == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*s, 'g', -1, 64)
}

func formatCustomScore(s *float64) string {
	if s == nil {
		return "Unknown"
	}
	return strconv.FormatFloat(*s, 'f', 1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
