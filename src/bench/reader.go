package bench

import (
	"io"
	"os"

	"fsbench/src/fswalk"
	"fsbench/src/log"
	"fsbench/src/metrics"
)

// DefaultBufferSize is the read chunk size in bytes unless configured
// otherwise.
const DefaultBufferSize = 64 * 1024

// Outcome is the per-file result of the read phase. Bytes counts what the
// read calls actually delivered, which may be nonzero even when Err is set.
type Outcome struct {
	Path  string
	Bytes int64
	Err   error
}

// readFile reads one file to EOF in chunks through buf. The recorded entry
// size never feeds the byte count; it only bounds runaway reads of files
// that grew since they were listed.
func readFile(entry fswalk.FileEntry, buf []byte) Outcome {
	out := Outcome{Path: entry.Path}

	log.Trace("open file", "path", entry.Path)
	f, err := os.Open(entry.Path)
	if err != nil {
		out.Err = err
		return out
	}
	defer f.Close()

	log.Trace("begin reading file", "path", entry.Path, "recorded_size", entry.Size)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			out.Bytes += int64(n)
			log.Trace("read chunk", "path", entry.Path, "chunk", n, "total", out.Bytes)
		}
		if err == io.EOF {
			if out.Bytes < entry.Size {
				log.Debug("file truncated since listing",
					"path", entry.Path, "recorded_size", entry.Size, "read", out.Bytes)
			}
			return out
		}
		if err != nil {
			out.Err = err
			return out
		}
		if out.Bytes > entry.Size {
			log.Debug("file extended since listing, stopping to avoid unbounded read",
				"path", entry.Path, "recorded_size", entry.Size, "read", out.Bytes)
			return out
		}
	}
}

// fold records one outcome in the aggregator. Exactly one of the processed
// or failed counters moves per file; partial bytes are credited either way.
func fold(agg *metrics.Aggregator, out Outcome) {
	agg.Read.AddBytes(out.Bytes)
	if out.Err != nil {
		agg.ReadFailures.Add(1)
		log.Debug("error reading file", "path", out.Path, "err", out.Err.Error())
		return
	}
	agg.Read.AddFiles(1)
	log.Trace("done reading file", "path", out.Path)
}
