//go:build unix

package fswalk

import (
	"os"
	"syscall"
)

// fileID identifies a directory across the paths that reach it. On Unix the
// device and inode pair is authoritative; path is only a fallback for
// filesystems whose stat data is unavailable.
type fileID struct {
	dev  uint64
	ino  uint64
	path string
}

func identify(path string, info os.FileInfo) fileID {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}
	}
	return fileID{path: canonical(path)}
}
