//go:build !linux && !darwin

package sysinfo

import (
	"fmt"
	"runtime"
)

func statPath(path string) (PathInfo, error) {
	return PathInfo{}, fmt.Errorf("filesystem details are not supported on %s", runtime.GOOS)
}

func kernelVersion() string {
	return runtime.GOOS + " " + runtime.GOARCH
}
