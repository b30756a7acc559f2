package entry

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/gemini-testing/path-utils/internal/except"
	"github.com/gemini-testing/path-utils/internal/fspath"
)

// Resolve returns the absolute paths of the regular files denoted by p, keeping only those
// matching formats. A relative p is resolved against root, which must be absolute. A file
// resolves to itself and a directory to every file in its subtree. Missing paths are reported
// with ErrNotFound.
func Resolve(
	ctx context.Context,
	fsys fs.FS,
	root, p fspath.Local,
	formats Formats,
) ([]fspath.Local, error) {
	except.Must(filepath.IsAbs(root), "relative root %q", root)
	abs := fspath.Resolve(root, p)
	info, err := fs.Stat(fsys, fspath.Unrooted(abs))
	if err != nil {
		return nil, statError(abs, err)
	}

	var files []fspath.Local
	switch {
	case info.IsDir():
		files, err = Walk(ctx, fsys, abs)
		if err != nil {
			return nil, err
		}
	case info.Mode().IsRegular():
		files = []fspath.Local{abs}
	default:
		slog.Debug("Skipping irregular file.", slog.String("path", abs), slog.String("mode", info.Mode().String()))
	}
	return slices.DeleteFunc(files, func(fp fspath.Local) bool { return !formats.Match(fp) }), nil
}
