// Package hostinfo captures the hardware context a benchmark ran on, so that
// numbers from different machines are comparable.
package hostinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info describes the machine a benchmark ran on.
type Info struct {
	Hostname     string `json:"hostname" yaml:"hostname"`
	OS           string `json:"os" yaml:"os"`
	Architecture string `json:"arch" yaml:"arch"`
	CPUModel     string `json:"cpu_model" yaml:"cpu_model"`
	CPUThreads   int    `json:"cpu_threads" yaml:"cpu_threads"`
	CPUMHz       int    `json:"cpu_mhz,omitempty" yaml:"cpu_mhz,omitempty"`
	RAMBytes     uint64 `json:"ram_bytes" yaml:"ram_bytes"`
	GoVersion    string `json:"go_version" yaml:"go_version"`
}

// Collect gathers host information. Fields that cannot be detected are left
// at their zero value rather than failing the run.
func Collect() Info {
	info := Info{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		CPUThreads:   runtime.NumCPU(),
		GoVersion:    runtime.Version(),
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
		info.CPUMHz = int(cpus[0].Mhz)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAMBytes = vm.Total
	}

	return info
}

// FormatRAM renders a byte count as a human-readable size.
func FormatRAM(bytes uint64) string {
	const gib = 1024 * 1024 * 1024
	if bytes >= gib {
		return fmt.Sprintf("%.1f GiB", float64(bytes)/float64(gib))
	}
	return fmt.Sprintf("%.0f MiB", float64(bytes)/float64(1024*1024))
}
