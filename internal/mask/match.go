package mask

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gemini-testing/path-utils/internal/except"
	"github.com/gemini-testing/path-utils/internal/fspath"
)

// ErrInvalidMask is returned when a mask cannot be parsed.
var ErrInvalidMask = errors.New("invalid mask")

// globFS is swapped out for testing.
var globFS = doublestar.Glob

// Matcher expands specifications into the concrete paths they match.
type Matcher struct {
	fsys   fs.FS
	root   fspath.Local
	opts   []doublestar.GlobOption
	ignore *ignorePredicate
}

// NewMatcher returns a Matcher resolving relative specifications against root, which must be
// absolute. fsys must be mounted at "/".
func NewMatcher(fsys fs.FS, root fspath.Local, opts GlobOptions) (*Matcher, error) {
	except.Must(filepath.IsAbs(root), "relative root %q", root)
	ignore, err := newIgnorePredicate(opts.Ignore)
	if err != nil {
		return nil, err
	}
	return &Matcher{fsys: fsys, root: root, opts: opts.engineOptions(), ignore: ignore}, nil
}

// Match returns the absolute paths matched by spec, which may be a mask or a literal path. An
// empty result is not an error: callers decide whether an unmatched spec is fatal. Paths are
// returned as reported by the glob engine, files and directories alike.
func (m *Matcher) Match(spec string) ([]fspath.Local, error) {
	pattern := trimTrailingSlashes(filepath.ToSlash(spec))
	if pattern == "" {
		return nil, nil
	}

	base, rest := pattern, "."
	if IsMask(pattern) {
		base, rest = doublestar.SplitPattern(pattern)
	}
	dir := fspath.Resolve(m.root, filepath.FromSlash(unescape(base)))
	sub, err := fs.Sub(m.fsys, fspath.Unrooted(dir))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", except.ErrIO, dir, err)
	}

	matches, err := globFS(sub, rest, m.opts...)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMask, spec)
		}
		return nil, fmt.Errorf("%w: %s: %w", except.ErrIO, spec, err)
	}

	paths := make([]fspath.Local, 0, len(matches))
	for _, match := range matches {
		fp := filepath.Join(dir, filepath.FromSlash(match))
		if m.ignore.ignores(m.root, fp) {
			continue
		}
		paths = append(paths, fp)
	}
	slog.Debug("Matched specification.", slog.String("spec", spec), slog.Int("count", len(paths)))
	return paths, nil
}

// Match is a convenience wrapper around a single-use Matcher.
func Match(fsys fs.FS, root fspath.Local, spec string, opts GlobOptions) ([]fspath.Local, error) {
	m, err := NewMatcher(fsys, root, opts)
	if err != nil {
		return nil, err
	}
	return m.Match(spec)
}

func trimTrailingSlashes(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" && p != "" {
		return "/"
	}
	return trimmed
}

// unescape drops the escaping backslashes from a pattern without metacharacters.
func unescape(p string) string {
	if !strings.Contains(p, `\`) {
		return p
	}
	var b strings.Builder
	escaped := false
	for _, c := range p {
		if !escaped && c == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(c)
	}
	return b.String()
}
