package fspath

import (
	"path/filepath"
	"strings"
)

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module.
type Local = string

// POSIX is a forward-slash delimited path representation. It is the format expected by functions in
// the path module and by io/fs.
type POSIX = string

// Resolve returns p if it is absolute, otherwise p joined onto root. The result is always cleaned.
func Resolve(root, p Local) Local {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// Unrooted converts an absolute path into the unrooted form accepted by a filesystem mounted at
// "/". The root itself maps to ".".
func Unrooted(abs Local) POSIX {
	rel := strings.TrimLeft(filepath.ToSlash(abs), "/")
	if rel == "" {
		return "."
	}
	return rel
}

// Rooted is the inverse of Unrooted.
func Rooted(fp POSIX) Local {
	if fp == "." {
		return string(filepath.Separator)
	}
	return filepath.FromSlash("/" + fp)
}
