// Package clock provides the time sources that timing targets are bound to.
//
// A Sample is only meaningful when diffed against another Sample taken from
// the same source: Real samples sit on the monotonic wall-clock timeline,
// Process samples on the process CPU-time timeline.
package clock

import "time"

// Sample is an instant on one source's timeline, in nanoseconds.
type Sample int64

// epoch anchors Real samples so they stay monotonic regardless of wall-clock
// adjustments (time.Since uses the monotonic reading).
var epoch = time.Now()

// Real returns the current monotonic wall-clock reading.
func Real() Sample {
	return Sample(time.Since(epoch))
}

// Diff returns the elapsed time between two samples from the same source.
func Diff(start, end Sample) time.Duration {
	return time.Duration(end - start)
}
