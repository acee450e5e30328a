// Package export publishes benchmark results as Prometheus metrics, either
// scraped over HTTP during long runs or dumped in text format next to the
// report.
package export

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/psantana5/benchpress/internal/report"
)

// Exporter registers benchmark metrics on its own registry, so embedding
// applications never collide with it.
type Exporter struct {
	registry  *prometheus.Registry
	startTime time.Time

	runsTotal prometheus.Counter
	duration  *prometheus.GaugeVec
	nsd       *prometheus.GaugeVec
	uptime    prometheus.GaugeFunc

	mu     sync.RWMutex
	latest *report.Report
}

// New creates an exporter with an empty result set.
func New() *Exporter {
	e := &Exporter{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "benchpress_runs_total",
			Help: "Total benchmark runs observed by this exporter",
		}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchpress_target_duration_nanoseconds",
			Help: "Per-target duration statistics from the latest run",
		}, []string{"target", "case", "stat"}),
		nsd: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchpress_target_nsd",
			Help: "Normalized standard deviation (stddev/avg) per target",
		}, []string{"target", "case"}),
	}
	e.uptime = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "benchpress_exporter_uptime_seconds",
		Help: "Time since the exporter started",
	}, func() float64 {
		return time.Since(e.startTime).Seconds()
	})

	e.registry.MustRegister(e.runsTotal, e.duration, e.nsd, e.uptime)
	return e
}

// Observe records the results of one completed run.
func (e *Exporter) Observe(rep *report.Report) {
	e.mu.Lock()
	e.latest = rep
	e.mu.Unlock()

	e.runsTotal.Inc()
	for _, s := range rep.Summaries {
		e.duration.WithLabelValues(s.Target, s.Case, "min").Set(float64(s.Min))
		e.duration.WithLabelValues(s.Target, s.Case, "max").Set(float64(s.Max))
		e.duration.WithLabelValues(s.Target, s.Case, "avg").Set(float64(s.Avg))
		e.duration.WithLabelValues(s.Target, s.Case, "median").Set(float64(s.Median))
		e.duration.WithLabelValues(s.Target, s.Case, "excl_avg").Set(float64(s.ExclAvg))
		e.duration.WithLabelValues(s.Target, s.Case, "stddev").Set(s.Stddev)
		e.nsd.WithLabelValues(s.Target, s.Case).Set(s.NSD)
	}
}

// Latest returns the most recently observed report, or nil.
func (e *Exporter) Latest() *report.Report {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

// Handler serves the registry in Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// WriteText dumps all registered metrics in text exposition format.
func (e *Exporter) WriteText(w io.Writer) error {
	families, err := e.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
