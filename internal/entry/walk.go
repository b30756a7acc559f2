package entry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gemini-testing/path-utils/internal/except"
	"github.com/gemini-testing/path-utils/internal/fspath"
)

// ErrNotFound is returned when a path does not exist.
var ErrNotFound = errors.New("no such file or directory")

// Walk returns the absolute paths of all regular files under dir, in lexical order. Symlinks are
// followed: links to files are reported as files and links to directories are traversed (each
// directory at most once per branch, so cycles terminate). Directories, dangling links and other
// irregular entries are never reported. Any read error aborts the walk.
func Walk(ctx context.Context, fsys fs.FS, dir fspath.Local) ([]fspath.Local, error) {
	slog.Debug("Walking directory.", slog.String("dir", dir))

	w := &walker{ctx: ctx, fsys: fsys}
	if err := w.walk(fspath.Unrooted(dir)); err != nil {
		return nil, err
	}
	slog.Debug(fmt.Sprintf("Found %d files.", len(w.files)), slog.String("dir", dir))
	return w.files, nil
}

type walker struct {
	ctx  context.Context
	fsys fs.FS
	// Roots of the walks in progress, outermost first.
	ancestors []fs.FileInfo
	files     []fspath.Local
}

func (w *walker) walk(root fspath.POSIX) error {
	info, err := fs.Stat(w.fsys, root)
	if err != nil {
		return statError(fspath.Rooted(root), err)
	}
	for _, ancestor := range w.ancestors {
		if os.SameFile(ancestor, info) {
			slog.Debug("Skipping symlink cycle.", slog.String("path", fspath.Rooted(root)))
			return nil
		}
	}
	w.ancestors = append(w.ancestors, info)
	defer func() { w.ancestors = w.ancestors[:len(w.ancestors)-1] }()

	return fs.WalkDir(w.fsys, root, func(fp fspath.POSIX, entry fs.DirEntry, err error) error {
		if err != nil {
			return statError(fspath.Rooted(fp), err)
		}
		if err := w.ctx.Err(); err != nil {
			return err
		}
		switch typ := entry.Type(); {
		case typ.IsRegular():
			w.files = append(w.files, fspath.Rooted(fp))
		case typ&fs.ModeSymlink != 0:
			return w.follow(fp)
		}
		return nil
	})
}

func (w *walker) follow(link fspath.POSIX) error {
	info, err := fs.Stat(w.fsys, link)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Skipping dangling symlink.", slog.String("path", fspath.Rooted(link)))
		return nil
	}
	if err != nil {
		return statError(fspath.Rooted(link), err)
	}
	switch {
	case info.IsDir():
		return w.walk(link)
	case info.Mode().IsRegular():
		w.files = append(w.files, fspath.Rooted(link))
	}
	return nil
}

func statError(fp fspath.Local, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, fp, err)
	}
	return fmt.Errorf("%w: %s: %w", except.ErrIO, fp, err)
}
