package bench

import (
	"time"

	"github.com/psantana5/benchpress/pkg/clock"
)

// Target is a configured zero-argument callable producing one result per
// invocation.
type Target[T any] func() T

// Time runs pre, samples the clock around payload, runs post, and returns
// the diff of the two samples:
//
//	pre(); start := now(); payload(); end := now(); post()
//
// pre and post may be nil. Panics from payload or the hooks propagate
// unmodified; no sample is recorded for an abandoned round.
func Time[S, T any](now func() S, diff func(start, end S) T, payload, pre, post func()) T {
	if pre != nil {
		pre()
	}
	start := now()
	payload()
	end := now()
	if post != nil {
		post()
	}
	return diff(start, end)
}

// RealTime binds payload to the monotonic wall clock. pre and post run
// outside the timed window and may be nil.
func RealTime(payload, pre, post func()) Target[time.Duration] {
	return func() time.Duration {
		return Time(clock.Real, clock.Diff, payload, pre, post)
	}
}

// ProcTime binds payload to the process CPU-time clock (user + system), so
// time spent blocked or preempted does not count.
func ProcTime(payload, pre, post func()) Target[time.Duration] {
	return func() time.Duration {
		return Time(clock.Process, clock.Diff, payload, pre, post)
	}
}
