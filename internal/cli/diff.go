package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/lockfile"
	"github.com/depsentry/depsentry/pkg/observability"
)

// diffCommand creates the diff command.
func (c *CLI) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <lockfile>",
		Short: "Diff a lock file against its base-revision snapshot",
		Long: `Diff extracts the pinned dependencies from a lock file and from the
base-revision snapshot stored next to it (<lockfile>.base), then reports
every dependency that is new or changed in the candidate.

The result is written to parsed_deps.txt in the working directory, one
"name version" pair per line, ready for depsentry check.

Supported formats: poetry.lock, uv.lock, package-lock.json, yarn.lock,
requirements.txt, go.mod.`,
		Example: `  depsentry diff poetry.lock
  depsentry diff frontend/package-lock.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			observability.SetDiffHooks(logDiffHooks{c.Logger})
			defer observability.SetDiffHooks(nil)

			path := args[0]
			ex, err := lockfile.Detect(path, extractors()...)
			if err != nil {
				return err
			}
			c.Logger.Debug("detected format", "format", ex.Type(), "path", path)

			prog := newProgress(c.Logger)
			result, err := lockfile.Run(cmd.Context(), path, ex)
			if err != nil {
				if errors.Is(err, errors.ErrCodeMissingBase) {
					printWarning("No base snapshot found at %s", lockfile.BasePath(path))
				}
				return err
			}

			if err := result.WriteFile(lockfile.ReportFilename); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Diffed %s (%s)", path, result.Format))

			if len(result.Added) == 0 {
				printInfo("No new or changed dependencies.")
				return nil
			}

			printSuccess("Found %d new or changed dependencies", len(result.Added))
			for _, id := range result.Added {
				printDetail("%s %s", id.Name, id.Version)
			}
			printFile(lockfile.ReportFilename)
			return nil
		},
	}
}
