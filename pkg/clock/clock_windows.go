//go:build windows

package clock

import "golang.org/x/sys/windows"

// Process returns the CPU time (user + kernel) consumed by this process.
func Process() Sample {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return 0
	}
	return Sample(filetimeNanos(kernel) + filetimeNanos(user))
}

// filetimeNanos converts a FILETIME interval (100ns units) to nanoseconds.
func filetimeNanos(ft windows.Filetime) int64 {
	return (int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)) * 100
}
