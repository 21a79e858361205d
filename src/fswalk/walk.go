// Package fswalk enumerates regular files under directory roots.
package fswalk

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"fsbench/src/log"
)

// FileEntry is a regular file discovered during enumeration. Size is the
// size recorded at discovery time and may be stale by the time the file is
// actually read.
type FileEntry struct {
	Path string
	Size int64
}

// Stats carries enumeration diagnostics that are not part of the headline
// numbers.
type Stats struct {
	DirsSkipped int64
}

// ValidateRoots checks that every root exists, is a directory and can be
// listed. A bad root must fail the run up front instead of counting as an
// empty tree.
func ValidateRoots(roots []string) error {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return errors.Wrapf(err, "invalid root %q", root)
		}
		if !info.IsDir() {
			return errors.Errorf("root %q is not a directory", root)
		}
		f, err := os.Open(root)
		if err != nil {
			return errors.Wrapf(err, "cannot open root %q", root)
		}
		_, err = f.ReadDir(1)
		f.Close()
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "cannot list root %q", root)
		}
	}
	return nil
}

// Walk enumerates every regular file reachable from the given roots and
// calls visit once per file, in name order within each directory. Directory
// symlinks are followed, but each directory identity is entered at most once
// per call, so link cycles and overlapping roots terminate and never
// double-count. It returns an error only when a root itself cannot be
// resolved or listed; failures below a root are skipped and tallied in
// Stats.DirsSkipped.
func Walk(roots []string, visit func(FileEntry)) (Stats, error) {
	w := &walker{
		visited: make(map[fileID]struct{}),
		visit:   visit,
	}
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return w.stats, errors.Wrapf(err, "resolve root %q", root)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return w.stats, errors.Wrapf(err, "stat root %q", root)
		}
		if !info.IsDir() {
			return w.stats, errors.Errorf("root %q is not a directory", root)
		}
		if !w.enter(abs, info) {
			log.Debug("root already visited, skipping", "root", root)
			continue
		}
		if err := w.walkRoot(abs); err != nil {
			return w.stats, err
		}
	}
	return w.stats, nil
}

type walker struct {
	visited map[fileID]struct{}
	visit   func(FileEntry)
	stats   Stats
}

// enter records a directory identity and reports whether it was new.
func (w *walker) enter(path string, info os.FileInfo) bool {
	id := identify(path, info)
	if _, seen := w.visited[id]; seen {
		return false
	}
	w.visited[id] = struct{}{}
	return true
}

// walkRoot lists a root directory. A root that cannot be listed fails the
// walk; everything below it descends through walkDir.
func (w *walker) walkRoot(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "cannot list root %q", dir)
	}
	w.walkEntries(dir, entries)
	return nil
}

// walkDir descends into one directory below a root. Listing failures here
// are skipped and tallied, never fatal.
func (w *walker) walkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.stats.DirsSkipped++
		log.Debug("skipping unreadable directory", "dir", dir, "err", err.Error())
		return
	}
	w.walkEntries(dir, entries)
}

func (w *walker) walkEntries(dir string, entries []fs.DirEntry) {
	for _, entry := range entries {
		w.walkEntry(filepath.Join(dir, entry.Name()), entry)
	}
}

func (w *walker) walkEntry(path string, entry fs.DirEntry) {
	switch {
	case entry.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			log.Debug("skipping broken symlink", "path", path, "err", err.Error())
			return
		}
		if info.IsDir() {
			if !w.enter(path, info) {
				log.Debug("directory already visited, skipping", "dir", path)
				return
			}
			w.walkDir(path)
			return
		}
		if info.Mode().IsRegular() {
			w.visit(FileEntry{Path: path, Size: info.Size()})
		}
	case entry.IsDir():
		info, err := entry.Info()
		if err != nil {
			w.stats.DirsSkipped++
			log.Debug("skipping vanished directory", "dir", path, "err", err.Error())
			return
		}
		if !w.enter(path, info) {
			log.Debug("directory already visited, skipping", "dir", path)
			return
		}
		w.walkDir(path)
	case entry.Type().IsRegular():
		info, err := entry.Info()
		if err != nil {
			log.Debug("skipping vanished file", "path", path, "err", err.Error())
			return
		}
		w.visit(FileEntry{Path: path, Size: info.Size()})
	default:
		// sockets, fifos and devices are not read targets
	}
}

// canonical resolves symlinks so the same directory reached through
// different link paths maps to one identity when stat data is unavailable.
func canonical(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return resolved
}
