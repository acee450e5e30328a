package export

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/psantana5/benchpress/internal/report"
)

func sampleReport() *report.Report {
	rounds := make([]time.Duration, 10)
	for i := range rounds {
		rounds[i] = time.Duration(i + 1)
	}
	rep := report.New(10)
	rep.Add(report.Summarize("mono", "unit", rounds, 1))
	return rep
}

func TestObserveAndWriteText(t *testing.T) {
	e := New()
	e.Observe(sampleReport())

	var buf bytes.Buffer
	if err := e.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"benchpress_runs_total 1",
		"benchpress_target_duration_nanoseconds",
		`target="mono"`,
		`stat="median"`,
		"benchpress_target_nsd",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q:\n%s", want, out)
		}
	}
}

func TestLatest(t *testing.T) {
	e := New()
	if e.Latest() != nil {
		t.Error("fresh exporter has a latest report")
	}
	rep := sampleReport()
	e.Observe(rep)
	if e.Latest() != rep {
		t.Error("Latest did not return the observed report")
	}
}

func TestServerRoutes(t *testing.T) {
	e := New()
	srv := NewServer("127.0.0.1:0", e)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		srv.Handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := get("/healthz"); rec.Code != http.StatusOK {
		t.Errorf("/healthz = %d, want 200", rec.Code)
	}
	if rec := get("/results"); rec.Code != http.StatusNotFound {
		t.Errorf("/results before any run = %d, want 404", rec.Code)
	}

	e.Observe(sampleReport())

	if rec := get("/results"); rec.Code != http.StatusOK {
		t.Errorf("/results = %d, want 200", rec.Code)
	} else if !strings.Contains(rec.Body.String(), `"mono"`) {
		t.Errorf("/results body missing target:\n%s", rec.Body.String())
	}
	if rec := get("/metrics"); rec.Code != http.StatusOK {
		t.Errorf("/metrics = %d, want 200", rec.Code)
	} else if !strings.Contains(rec.Body.String(), "benchpress_runs_total") {
		t.Errorf("/metrics body missing counter:\n%s", rec.Body.String())
	}
}
