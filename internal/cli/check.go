package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/depsentry/depsentry/pkg/health"
	"github.com/depsentry/depsentry/pkg/lockfile"
	"github.com/depsentry/depsentry/pkg/observability"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		refresh bool
		noCache bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check <system> [package] [version]",
		Short: "Fetch a supply-chain health report for a package version",
		Long: `Check gathers supply-chain health signals for one exact package version:
security advisories, OpenSSF scorecard results, popularity, dependent
count, deprecation status, publish freshness, and (for npm) install
lifecycle scripts.

With only a system argument, check reads parsed_deps.txt from a previous
depsentry diff run and lets you pick the dependency interactively.

Set GITHUB_TOKEN to raise the rate limit of the GitHub fallback lookups.`,
		Example: `  depsentry check pypi flask 3.0.0
  depsentry check npm @babel/core 7.23.0
  depsentry check npm`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			observability.SetRegistryHooks(logRegistryHooks{c.Logger})
			defer observability.SetRegistryHooks(nil)

			system := args[0]
			var pkg, version string
			switch len(args) {
			case 3:
				pkg, version = args[1], args[2]
			case 2:
				return fmt.Errorf("a version is required when a package is given (supported systems: %s)",
					strings.Join(health.Systems, ", "))
			case 1:
				id, err := pickDependency()
				if err != nil {
					return err
				}
				if id == nil {
					return nil
				}
				pkg, version = id.Name, id.Version
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			checker := health.NewChecker(newCache(noCache))

			sp := newSpinnerWithContext(ctx, fmt.Sprintf("Checking %s %s@%s...", system, pkg, version))
			sp.Start()
			report, err := checker.Check(ctx, system, pkg, version, refresh)
			sp.Stop()
			if err != nil {
				if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
					printError("Timed out after %s, retry with a larger --timeout", timeout)
				}
				return err
			}

			printNewline()
			for _, line := range report.Lines() {
				printReportLine(line.Key, line.Value)
			}
			if !report.Found {
				printNewline()
				printWarning("deps.dev has no record of %s %s@%s", system, pkg, version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the HTTP response cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the HTTP response cache entirely")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall deadline for registry requests")
	return cmd
}

// pickDependency opens an interactive picker over the diff artifact.
// Returns nil without error when there is nothing to pick or the user quits.
func pickDependency() (*lockfile.Identity, error) {
	ids, err := lockfile.ReadReport(lockfile.ReportFilename)
	if err != nil {
		return nil, fmt.Errorf("read %s (run depsentry diff first): %w", lockfile.ReportFilename, err)
	}
	if len(ids) == 0 {
		printInfo("No new or changed dependencies to check.")
		return nil, nil
	}

	final, err := tea.NewProgram(newDepPickerModel(ids)).Run()
	if err != nil {
		return nil, err
	}
	model, ok := final.(depPickerModel)
	if !ok {
		return nil, nil
	}
	return model.Selected, nil
}
