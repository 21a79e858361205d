//go:build linux || darwin

package sysinfo

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// fsTypeNames maps common statfs magic numbers to names. Anything unknown
// renders as the raw hex value.
var fsTypeNames = map[int64]string{
	0xef53:     "ext4",
	0x58465342: "xfs",
	0x9123683e: "btrfs",
	0x01021994: "tmpfs",
	0x6969:     "nfs",
	0x794c7630: "overlayfs",
	0x2fc12fc1: "zfs",
	0x4d44:     "vfat",
	0xf2f52010: "f2fs",
	0x65735546: "fuse",
	0xff534d42: "cifs",
}

func statPath(path string) (PathInfo, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return PathInfo{}, err
	}
	return PathInfo{
		Path:       path,
		FSType:     fsTypeName(int64(st.Type)),
		BlockSize:  int64(st.Bsize),
		TotalBytes: uint64(st.Blocks) * uint64(st.Bsize),
		FreeBytes:  uint64(st.Bavail) * uint64(st.Bsize),
	}, nil
}

func fsTypeName(magic int64) string {
	if name, ok := fsTypeNames[magic]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", magic)
}

func kernelVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return fmt.Sprintf("%s %s %s",
		cString(uts.Sysname[:]), cString(uts.Release[:]), cString(uts.Machine[:]))
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
