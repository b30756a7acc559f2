// Package entry turns concrete filesystem paths into the regular files they denote.
package entry

import "path/filepath"

// Formats is a set of allowed file extensions, including their leading dot. An empty set allows
// every file.
type Formats map[string]struct{}

// NewFormats returns the set of the provided extensions.
func NewFormats(exts []string) Formats {
	formats := make(Formats, len(exts))
	for _, ext := range exts {
		formats[ext] = struct{}{}
	}
	return formats
}

// Match returns true iff the extension of the path's final segment belongs to the set, or the set
// is empty. Paths without an extension never match a non-empty set.
func (f Formats) Match(fp string) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[filepath.Ext(fp)]
	return ok
}

// MatchesFormat is a functional alias for Formats.Match.
func MatchesFormat(fp string, formats Formats) bool {
	return formats.Match(fp)
}
