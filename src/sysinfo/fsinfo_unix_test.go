//go:build linux || darwin

package sysinfo

import "testing"

func TestFSTypeName(t *testing.T) {
	tests := []struct {
		name  string
		magic int64
		want  string
	}{
		{name: "ext4", magic: 0xef53, want: "ext4"},
		{name: "tmpfs", magic: 0x01021994, want: "tmpfs"},
		{name: "unknown renders as hex", magic: 0xdeadbeef, want: "0xdeadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fsTypeName(tt.magic); got != tt.want {
				t.Errorf("fsTypeName(%#x) = %q, want %q", tt.magic, got, tt.want)
			}
		})
	}
}

func TestCString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "nul terminated", in: []byte{'L', 'i', 'n', 'u', 'x', 0, 0, 0}, want: "Linux"},
		{name: "no terminator", in: []byte{'x', '8', '6'}, want: "x86"},
		{name: "empty", in: []byte{0}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cString(tt.in); got != tt.want {
				t.Errorf("cString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatPath(t *testing.T) {
	info, err := statPath(t.TempDir())
	if err != nil {
		t.Fatalf("statPath() error = %v", err)
	}
	if info.FSType == "" {
		t.Error("FSType is empty")
	}
	if info.TotalBytes == 0 {
		t.Error("TotalBytes = 0, want > 0")
	}
	if info.BlockSize <= 0 {
		t.Errorf("BlockSize = %d, want > 0", info.BlockSize)
	}
}
