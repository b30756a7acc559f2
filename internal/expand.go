// Package pathutils expands heterogeneous path specifications (files, directories and glob masks)
// into a deduplicated list of absolute file paths.
package pathutils

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gemini-testing/path-utils/internal/entry"
	"github.com/gemini-testing/path-utils/internal/except"
	"github.com/gemini-testing/path-utils/internal/fspath"
	"github.com/gemini-testing/path-utils/internal/mask"
	"golang.org/x/sync/errgroup"
)

var (
	IsMask     = mask.IsMask
	IsAllMasks = mask.IsAllMasks
)

var (
	// ErrNoMatch is returned in strict mode when a specification matches no paths.
	ErrNoMatch = errors.New("cannot find files")

	ErrNotFound    = entry.ErrNotFound
	ErrIO          = except.ErrIO
	ErrInvalidMask = mask.ErrInvalidMask

	errInvalidOptions = errors.New("invalid options")
)

var (
	// fileSystem is swapped out for testing. Paths handed to it are absolute paths stripped of their
	// leading separator.
	fileSystem fs.FS = os.DirFS("/")

	getwd = os.Getwd
)

// Options configures an expansion. The zero value is valid and uses defaults throughout.
type Options struct {
	// Directory against which relative specifications are resolved. Defaults to the current
	// working directory, a relative root is resolved against it.
	Root string `yaml:"root,omitempty"`
	// Allowed file extensions, including their leading dot. All files are kept when empty.
	Formats []string `yaml:"formats,omitempty"`
	// Handling of specifications which match nothing.
	Policy MatchPolicy `yaml:"policy,omitempty"`
	// Maximum number of concurrent tasks per stage. Unbounded when not positive.
	Concurrency int `yaml:"concurrency,omitempty"`
	// Options forwarded to the glob engine.
	Glob mask.GlobOptions `yaml:"glob,omitempty"`
}

func (o Options) withDefaults() (Options, error) {
	if !o.Policy.IsAMatchPolicy() {
		return o, fmt.Errorf("%w: unknown policy %v", errInvalidOptions, o.Policy)
	}
	if !filepath.IsAbs(o.Root) {
		cwd, err := getwd()
		if err != nil {
			return o, fmt.Errorf("%w: no working directory: %v", errInvalidOptions, err)
		}
		o.Root = fspath.Resolve(cwd, o.Root)
	}
	o.Root = filepath.Clean(o.Root)
	return o, nil
}

// Expand resolves specifications into the absolute paths of the regular files they denote.
//
// Each specification is first matched as a mask (literal paths match themselves), then every
// matched path is resolved: files stand for themselves, directories for all the files they
// contain. Both stages run their tasks concurrently; the first failure cancels the remaining ones
// and is returned. The output contains no duplicates and is ordered by first occurrence, following
// specification order and lexical order within each specification.
func Expand(ctx context.Context, opts Options, specs ...string) ([]string, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	slog.Debug(
		"Expanding specifications.",
		slog.Any("specs", specs),
		slog.String("root", opts.Root),
		slog.String("policy", opts.Policy.String()),
	)

	matcher, err := mask.NewMatcher(fileSystem, opts.Root, opts.Glob)
	if err != nil {
		return nil, err
	}
	matched, err := processPaths(ctx, opts.Concurrency, specs, func(_ context.Context, spec string) ([]string, error) {
		paths, err := matcher.Match(spec)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			if opts.Policy == MatchPolicyStrict {
				return nil, fmt.Errorf("%w for specification `%s`", ErrNoMatch, spec)
			}
			slog.Debug("Ignoring unmatched specification.", slog.String("spec", spec))
		}
		return paths, nil
	})
	if err != nil {
		return nil, err
	}

	formats := entry.NewFormats(opts.Formats)
	files, err := processPaths(ctx, opts.Concurrency, matched, func(ctx context.Context, fp string) ([]string, error) {
		return entry.Resolve(ctx, fileSystem, opts.Root, fp, formats)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug(fmt.Sprintf("Expanded %d specification(s) into %d file(s).", len(specs), len(files)))
	return files, nil
}

// processPaths runs fn concurrently over all paths and returns the concatenation of its results
// without duplicates. Results are concatenated in input order.
func processPaths(
	ctx context.Context,
	limit int,
	paths []string,
	fn func(context.Context, string) ([]string, error),
) ([]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([][]string, len(paths))
	for i, fp := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := fn(gctx, fp)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return uniq(slices.Concat(results...)), nil
}

// uniq drops all but the first occurrence of each path, in place.
func uniq(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	return slices.DeleteFunc(paths, func(fp string) bool {
		if seen[fp] {
			return true
		}
		seen[fp] = true
		return false
	})
}
