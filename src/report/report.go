// Package report renders benchmark results. Formatting only; nothing in
// here is timed or measured.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fsbench/src/bench"
)

// bytesPerMB is the reporting unit for byte totals and rates: decimal
// megabytes, 1 MB = 1,000,000 bytes.
const bytesPerMB = 1e6

// Write renders the header and the two phase lines:
//
//	-- reading ["a", "b"] using 4 threads
//	-- list: 12741 files/s  (38224 files in 3.0001225 s)
//	-- read: 289 MB/s   6370 files/s  (1734.420916 MB in 6.0007187 s)
//
// Rates carry no decimals; totals and elapsed seconds print the shortest
// representation of their exact value. Empty or unmeasurably fast phases
// report 0 rates.
func Write(w io.Writer, res *bench.Result) error {
	if _, err := fmt.Fprintf(w, "-- reading %s using %d threads\n",
		formatRoots(res.Roots), res.Threads); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "-- list: %.0f files/s  (%d files in %s s)\n",
		res.List.FilesPerSecond(),
		res.List.Files,
		formatFloat(res.List.Elapsed.Seconds())); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "-- read: %.0f MB/s   %.0f files/s  (%s MB in %s s)\n",
		res.Read.BytesPerSecond()/bytesPerMB,
		res.Read.FilesPerSecond(),
		formatFloat(float64(res.Read.Bytes)/bytesPerMB),
		formatFloat(res.Read.Elapsed.Seconds()))
	return err
}

// formatRoots renders the root paths as given, quoted, bracketed.
func formatRoots(roots []string) string {
	quoted := make([]string, len(roots))
	for i, root := range roots {
		quoted[i] = strconv.Quote(root)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatFloat prints the shortest decimal form that round-trips, never
// scientific notation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
