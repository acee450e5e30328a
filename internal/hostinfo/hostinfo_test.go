package hostinfo

import (
	"runtime"
	"testing"
)

func TestCollect(t *testing.T) {
	info := Collect()

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", info.Architecture, runtime.GOARCH)
	}
	if info.CPUThreads < 1 {
		t.Errorf("CPUThreads = %d", info.CPUThreads)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}

func TestFormatRAM(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{16 * 1024 * 1024 * 1024, "16.0 GiB"},
		{512 * 1024 * 1024, "512 MiB"},
	}
	for _, tc := range cases {
		if got := FormatRAM(tc.bytes); got != tc.want {
			t.Errorf("FormatRAM(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}
