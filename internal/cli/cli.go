// Package cli implements the depsentry command-line interface.
//
// This package provides commands for diffing lock files against their
// base-revision snapshots, checking the supply-chain health of individual
// packages, and managing the HTTP response cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - diff: Extract dependencies from a lock file and diff against its base
//   - check: Fetch a supply-chain health report for one package version
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr; report output goes to stdout.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/depsentry/depsentry/pkg/buildinfo"
	"github.com/depsentry/depsentry/pkg/httputil"
	"github.com/depsentry/depsentry/pkg/lockfile"
	"github.com/depsentry/depsentry/pkg/lockfile/golang"
	"github.com/depsentry/depsentry/pkg/lockfile/javascript"
	"github.com/depsentry/depsentry/pkg/lockfile/python"
)

const (
	// appName is the application name used for directories and display.
	appName = "depsentry"

	// defaultCacheTTL is how long registry responses stay fresh on disk.
	defaultCacheTTL = 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "depsentry",
		Short:        "Depsentry audits lock file changes and package health",
		Long:         `Depsentry extracts pinned dependencies from lock files, diffs them against a base revision to surface new or changed packages, and fetches supply-chain health reports for the packages it finds.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.diffCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// extractors returns all registered lock file extraction strategies.
// Dispatch picks the first strategy whose suffix matches, so more
// specific names must come before generic ones.
func extractors() []lockfile.Extractor {
	return []lockfile.Extractor{
		python.NewPoetry(),
		python.NewUV(),
		python.NewRequirements(),
		javascript.NewPackageLock(),
		javascript.NewYarn(),
		golang.NewGoMod(),
	}
}

// newCache creates the shared HTTP response cache. A disabled or failing
// cache degrades to nil, which the registry clients treat as "no caching".
func newCache(noCache bool) *httputil.Cache {
	if noCache {
		return nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil
	}
	cache, err := httputil.NewCache(dir, defaultCacheTTL)
	if err != nil {
		return nil
	}
	return cache
}

// cacheDir returns the cache directory using XDG standard (~/.cache/depsentry/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
