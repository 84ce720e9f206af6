package lockfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/depsentry/depsentry/pkg/errors"
	"github.com/depsentry/depsentry/pkg/observability"
)

// ReportFilename is the fixed name of the diff artifact, written to the
// current working directory.
const ReportFilename = "parsed_deps.txt"

// baseSuffix locates the base-revision snapshot next to the candidate.
const baseSuffix = ".base"

// BasePath returns the path of the base-revision snapshot for a candidate
// lock file.
func BasePath(path string) string {
	return path + baseSuffix
}

// Result holds the outcome of diffing a candidate lock file against its
// base snapshot.
type Result struct {
	Format string     // Extractor type that produced this result
	Added  []Identity // Candidate − base, sorted by serialized identity
}

// Run diffs the lock file at path against its base snapshot using the
// given extraction strategy.
//
// Preconditions, checked in order, each fatal:
//   - the candidate file must exist (MISSING_CANDIDATE)
//   - the base snapshot at path+".base" must exist (MISSING_BASE); a
//     missing base makes "new or changed" diffing meaningless, so the run
//     aborts rather than reporting everything as new
//
// The two extraction passes share no parser state. The context is used
// only for observability hooks; extraction itself is synchronous local I/O.
func Run(ctx context.Context, path string, ex Extractor) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.New(errors.ErrCodeMissingCandidate, "%s does not exist", path)
	}
	basePath := BasePath(path)
	if _, err := os.Stat(basePath); err != nil {
		return nil, errors.New(errors.ErrCodeMissingBase, "%s does not exist", basePath)
	}

	baseSet, err := extract(ctx, ex, basePath)
	if err != nil {
		return nil, err
	}
	candidateSet, err := extract(ctx, ex, path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	added := Diff(baseSet, candidateSet)
	observability.Diff().OnDiffComplete(ctx, ex.Type(), len(added), time.Since(start))

	return &Result{Format: ex.Type(), Added: added}, nil
}

func extract(ctx context.Context, ex Extractor, path string) (Set, error) {
	observability.Diff().OnExtractStart(ctx, ex.Type(), path)
	start := time.Now()
	set, err := ex.Extract(path)
	observability.Diff().OnExtractComplete(ctx, ex.Type(), path, set.Len(), time.Since(start), err)
	return set, err
}

// Write serializes the diff to w, one "name version" line per added
// identity, in the result's sorted order.
func (r *Result) Write(w io.Writer) error {
	for _, id := range r.Added {
		if _, err := fmt.Fprintf(w, "%s %s\n", id.Name, id.Version); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the diff artifact to path, replacing any previous run's
// artifact.
func (r *Result) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return r.Write(f)
}

// ReadReport parses a previously written diff artifact back into
// identities. Lines that do not split into exactly a name and a version
// are skipped.
func ReadReport(path string) ([]Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Identity
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		out = append(out, Identity{Name: fields[0], Version: fields[1]})
	}
	return out, scanner.Err()
}
