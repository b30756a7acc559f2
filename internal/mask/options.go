package mask

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// GlobOptions are forwarded to the glob engine. Every field is optional: a nil field is absent and
// is not forwarded at all.
type GlobOptions struct {
	// Masks of paths to drop from the matches. Relative masks apply to paths relative to the
	// expansion root, absolute masks to absolute paths.
	Ignore []string `yaml:"ignore,omitempty"`
	// Only match regular files, never directories.
	FilesOnly *bool `yaml:"filesOnly,omitempty"`
	// Match case-insensitively.
	CaseInsensitive *bool `yaml:"caseInsensitive,omitempty"`
	// Do not traverse symlinked directories while matching.
	NoFollow *bool `yaml:"noFollow,omitempty"`
	// Surface I/O errors hit while matching instead of skipping the offending entries.
	FailOnIOErrors *bool `yaml:"failOnIOErrors,omitempty"`
}

// engineOptions translates the set fields into doublestar options.
func (o GlobOptions) engineOptions() []doublestar.GlobOption {
	var opts []doublestar.GlobOption
	for _, opt := range []struct {
		flag *bool
		opt  func() doublestar.GlobOption
	}{
		{o.FilesOnly, doublestar.WithFilesOnly},
		{o.CaseInsensitive, doublestar.WithCaseInsensitive},
		{o.NoFollow, doublestar.WithNoFollow},
		{o.FailOnIOErrors, doublestar.WithFailOnIOErrors},
	} {
		if opt.flag != nil && *opt.flag {
			opts = append(opts, opt.opt())
		}
	}
	return opts
}

// ignorePredicate rejects paths matched by any of its masks.
type ignorePredicate struct {
	relative, absolute []glob.Glob
}

func newIgnorePredicate(masks []string) (*ignorePredicate, error) {
	var pred ignorePredicate
	for _, m := range masks {
		compiled, err := glob.Compile(filepath.ToSlash(m), '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMask, m, err)
		}
		if filepath.IsAbs(m) {
			pred.absolute = append(pred.absolute, compiled)
		} else {
			pred.relative = append(pred.relative, compiled)
		}
	}
	return &pred, nil
}

func (p *ignorePredicate) ignores(root, abs string) bool {
	for _, g := range p.absolute {
		if g.Match(filepath.ToSlash(abs)) {
			return true
		}
	}
	if len(p.relative) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range p.relative {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
