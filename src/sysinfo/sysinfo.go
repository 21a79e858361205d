// Package sysinfo inventories the host hardware and the filesystems behind
// given paths, so benchmark numbers can be compared across machines.
package sysinfo

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jaypipes/ghw"

	"fsbench/src/log"
)

// PathInfo describes the filesystem behind one path.
type PathInfo struct {
	Path       string
	FSType     string
	BlockSize  int64
	TotalBytes uint64
	FreeBytes  uint64
}

// Report is a point-in-time inventory. Probes are best effort: a field is
// nil or missing when its probe failed.
type Report struct {
	Kernel   string
	CPU      *ghw.CPUInfo
	Memory   *ghw.MemoryInfo
	Topology *ghw.TopologyInfo
	Block    *ghw.BlockInfo
	Paths    []PathInfo
}

// Collect gathers the inventory for the host and the given paths. Failed
// probes are logged and skipped so one unreadable sysfs entry does not hide
// the rest.
func Collect(paths []string) *Report {
	rep := &Report{Kernel: kernelVersion()}

	if cpu, err := ghw.CPU(); err != nil {
		log.Error(err, "failed to collect CPU information")
	} else {
		rep.CPU = cpu
	}
	if mem, err := ghw.Memory(); err != nil {
		log.Error(err, "failed to collect memory information")
	} else {
		rep.Memory = mem
	}
	if topology, err := ghw.Topology(); err != nil {
		log.Error(err, "failed to collect topology information")
	} else {
		rep.Topology = topology
	}
	if block, err := ghw.Block(); err != nil {
		log.Error(err, "failed to collect block device information")
	} else {
		rep.Block = block
	}

	for _, path := range paths {
		info, err := statPath(path)
		if err != nil {
			log.Error(err, "failed to collect filesystem information", "path", path)
			continue
		}
		rep.Paths = append(rep.Paths, info)
	}
	return rep
}

// Render writes the inventory as plain text.
func (r *Report) Render(w io.Writer) {
	if r.Kernel != "" {
		fmt.Fprintf(w, "kernel:   %s\n", r.Kernel)
	}
	if r.CPU != nil {
		fmt.Fprintf(w, "cpu:      %s\n", r.CPU.String())
	}
	if r.Memory != nil {
		fmt.Fprintf(w, "memory:   %s\n", r.Memory.String())
	}
	if r.Topology != nil {
		fmt.Fprintf(w, "topology: %s\n", r.Topology.String())
	}
	if r.Block != nil {
		fmt.Fprintf(w, "block:    %s\n", r.Block.String())
		for _, disk := range r.Block.Disks {
			fmt.Fprintf(w, "  %s %s driveType=%s controller=%s model=%q\n",
				disk.Name, humanize.IBytes(disk.SizeBytes),
				disk.DriveType, disk.StorageController, disk.Model)
		}
	}
	for _, p := range r.Paths {
		fmt.Fprintf(w, "path %q: fs=%s block_size=%d total=%s free=%s\n",
			p.Path, p.FSType, p.BlockSize,
			humanize.IBytes(p.TotalBytes), humanize.IBytes(p.FreeBytes))
	}
}
