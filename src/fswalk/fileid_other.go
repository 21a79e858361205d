//go:build !unix

package fswalk

import "os"

// fileID identifies a directory across the paths that reach it. Without
// stat device/inode data the fully resolved path stands in.
type fileID struct {
	dev  uint64
	ino  uint64
	path string
}

func identify(path string, _ os.FileInfo) fileID {
	return fileID{path: canonical(path)}
}
