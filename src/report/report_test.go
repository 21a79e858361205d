package report_test

import (
	"strings"
	"testing"
	"time"

	"fsbench/src/bench"
	"fsbench/src/metrics"
	"fsbench/src/report"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		res  bench.Result
		want string
	}{
		{
			name: "typical run",
			res: bench.Result{
				Roots:   []string{"/data"},
				Threads: 16,
				List:    metrics.Snapshot{Files: 38224, Elapsed: 3000122500 * time.Nanosecond},
				Read:    metrics.Snapshot{Files: 38224, Bytes: 1734420916, Elapsed: 6000718700 * time.Nanosecond},
			},
			want: "-- reading [\"/data\"] using 16 threads\n" +
				"-- list: 12741 files/s  (38224 files in 3.0001225 s)\n" +
				"-- read: 289 MB/s   6370 files/s  (1734.420916 MB in 6.0007187 s)\n",
		},
		{
			name: "small tree keeps exact totals",
			res: bench.Result{
				Roots:   []string{"."},
				Threads: 1,
				List:    metrics.Snapshot{Files: 3, Elapsed: 500 * time.Millisecond},
				Read:    metrics.Snapshot{Files: 3, Bytes: 60, Elapsed: 250 * time.Millisecond},
			},
			want: "-- reading [\".\"] using 1 threads\n" +
				"-- list: 6 files/s  (3 files in 0.5 s)\n" +
				"-- read: 0 MB/s   12 files/s  (0.00006 MB in 0.25 s)\n",
		},
		{
			name: "empty tree reports zero rates",
			res: bench.Result{
				Roots:   []string{"/empty"},
				Threads: 4,
			},
			want: "-- reading [\"/empty\"] using 4 threads\n" +
				"-- list: 0 files/s  (0 files in 0 s)\n" +
				"-- read: 0 MB/s   0 files/s  (0 MB in 0 s)\n",
		},
		{
			name: "multiple roots as given",
			res: bench.Result{
				Roots:   []string{"data", "logs"},
				Threads: 2,
				List:    metrics.Snapshot{Files: 10, Elapsed: time.Second},
				Read:    metrics.Snapshot{Files: 10, Bytes: 2000000, Elapsed: 2 * time.Second},
			},
			want: "-- reading [\"data\", \"logs\"] using 2 threads\n" +
				"-- list: 10 files/s  (10 files in 1 s)\n" +
				"-- read: 1 MB/s   5 files/s  (2 MB in 2 s)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			if err := report.Write(&buf, &tt.res); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() output:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}
