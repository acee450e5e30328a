//go:build !linux && !windows

package clock

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

var self, _ = process.NewProcess(int32(os.Getpid()))

// Process returns the CPU time (user + system) consumed by this process.
// On platforms without a native process CPU clock the reading comes from
// gopsutil, which is coarser than the linux/windows implementations.
func Process() Sample {
	if self == nil {
		return 0
	}
	times, err := self.Times()
	if err != nil {
		return 0
	}
	return Sample((times.User + times.System) * float64(time.Second))
}
