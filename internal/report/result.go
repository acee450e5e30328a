// Package report turns collected round durations into the summaries the CLI
// prints and exports.
package report

import (
	"slices"
	"time"

	"github.com/psantana5/benchpress/internal/hostinfo"
	"github.com/psantana5/benchpress/pkg/reduce"
)

// Summary is the per-target outcome of one benchmark run. Set once, never
// updated.
type Summary struct {
	Target string `json:"target" yaml:"target"`
	Case   string `json:"case,omitempty" yaml:"case,omitempty"`
	Rounds int    `json:"rounds" yaml:"rounds"`

	Min     time.Duration `json:"min_ns" yaml:"min_ns"`
	Max     time.Duration `json:"max_ns" yaml:"max_ns"`
	Avg     time.Duration `json:"avg_ns" yaml:"avg_ns"`
	Median  time.Duration `json:"median_ns" yaml:"median_ns"`
	ExclAvg time.Duration `json:"excl_avg_ns" yaml:"excl_avg_ns"`
	Stddev  float64       `json:"stddev_ns" yaml:"stddev_ns"`
	NSD     float64       `json:"nsd" yaml:"nsd"`
}

// Summarize reduces one target's raw round durations. The excluded-outlier
// average trims the `excl` smallest and largest rounds.
func Summarize(target, benchCase string, rounds []time.Duration, excl int) Summary {
	// Reducers may reorder their input, so each works on its own copy.
	ext := reduce.MinMax(slices.Clone(rounds))
	return Summary{
		Target:  target,
		Case:    benchCase,
		Rounds:  len(rounds),
		Min:     ext.Min,
		Max:     ext.Max,
		Avg:     reduce.Avg(slices.Clone(rounds)),
		Median:  reduce.Median(slices.Clone(rounds)),
		ExclAvg: reduce.ExclAvg[time.Duration](excl)(slices.Clone(rounds)),
		Stddev:  reduce.Stddev(slices.Clone(rounds)),
		NSD:     reduce.NSD(slices.Clone(rounds)),
	}
}

// Report is the full outcome of a benchmark invocation.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Rounds      int           `json:"rounds" yaml:"rounds"`
	Host        hostinfo.Info `json:"host" yaml:"host"`
	Summaries   []Summary     `json:"results" yaml:"results"`
}

// New creates a report capturing the current host context.
func New(rounds int) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		Rounds:      rounds,
		Host:        hostinfo.Collect(),
	}
}

// Add appends per-target summaries to the report.
func (r *Report) Add(summaries ...Summary) {
	r.Summaries = append(r.Summaries, summaries...)
}
