package copybench

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/psantana5/benchpress/internal/logging"
)

func TestStrategiesCopyCorrectly(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	if err := GenerateSource(src, 100*KiB); err != nil {
		t.Fatalf("GenerateSource: %v", err)
	}
	want, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}

	for _, s := range Strategies() {
		t.Run(s.Name, func(t *testing.T) {
			dst := filepath.Join(dir, "dst_"+s.Name)
			if err := s.Copy(src, dst); err != nil {
				t.Fatalf("Copy: %v", err)
			}
			got, err := os.ReadFile(dst)
			if err != nil {
				t.Fatalf("read destination: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("destination differs from source (%d vs %d bytes)", len(got), len(want))
			}
		})
	}
}

func TestStrategiesOverwriteLargerDestination(t *testing.T) {
	// A stale larger destination from a previous round must not leak trailing
	// bytes into the copy.
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := GenerateSource(src, 4*KiB); err != nil {
		t.Fatalf("GenerateSource: %v", err)
	}

	for _, s := range Strategies() {
		t.Run(s.Name, func(t *testing.T) {
			if err := GenerateSource(dst, 16*KiB); err != nil {
				t.Fatalf("seed destination: %v", err)
			}
			if err := s.Copy(src, dst); err != nil {
				t.Fatalf("Copy: %v", err)
			}
			same, err := Equal(src, dst)
			if err != nil {
				t.Fatalf("Equal: %v", err)
			}
			if !same {
				t.Error("destination differs from source after overwrite")
			}
		})
	}
}

func TestGenerateSourceSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src")
	const size = 3*MiB + 123
	if err := GenerateSource(path, size); err != nil {
		t.Fatalf("GenerateSource: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Size() != size {
		t.Errorf("size = %d, want %d", st.Size(), size)
	}
}

func TestEqual(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	d := filepath.Join(dir, "d")

	if err := GenerateSource(a, 70*KiB); err != nil {
		t.Fatalf("GenerateSource: %v", err)
	}
	data, err := os.ReadFile(a)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(b, data, 0o644); err != nil {
		t.Fatalf("write copy: %v", err)
	}
	// Same size, one flipped byte.
	flipped := bytes.Clone(data)
	flipped[len(flipped)/2] ^= 0xff
	if err := os.WriteFile(c, flipped, 0o644); err != nil {
		t.Fatalf("write flipped: %v", err)
	}
	// Different size.
	if err := os.WriteFile(d, data[:len(data)-1], 0o644); err != nil {
		t.Fatalf("write truncated: %v", err)
	}

	cases := []struct {
		name string
		x, y string
		want bool
	}{
		{"identical", a, b, true},
		{"flipped byte", a, c, false},
		{"truncated", a, d, false},
		{"self", a, a, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Equal(tc.x, tc.y)
			if err != nil {
				t.Fatalf("Equal: %v", err)
			}
			if got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRunProducesSummaries(t *testing.T) {
	dir := t.TempDir()
	log := logging.NewLogger(logging.ERROR, false)
	log.SetOutput(io.Discard)

	cfg := Config{
		Rounds: 3,
		Excl:   1,
		Dir:    dir,
		Sizes:  []int64{1 * KiB, 4 * KiB},
		Verify: true,
	}
	rep, err := Run(cfg, log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := 2 * len(Strategies())
	if len(rep.Summaries) != want {
		t.Fatalf("got %d summaries, want %d", len(rep.Summaries), want)
	}
	for _, s := range rep.Summaries {
		if s.Rounds != cfg.Rounds {
			t.Errorf("%s/%s: rounds = %d, want %d", s.Target, s.Case, s.Rounds, cfg.Rounds)
		}
		if s.Min < 0 || s.Max < s.Min {
			t.Errorf("%s/%s: inconsistent extremes %v/%v", s.Target, s.Case, s.Min, s.Max)
		}
	}
}

func TestRunRejectsEmptyConfig(t *testing.T) {
	log := logging.NewLogger(logging.ERROR, false)
	log.SetOutput(io.Discard)

	if _, err := Run(Config{Rounds: 0, Sizes: []int64{KiB}}, log); err == nil {
		t.Error("expected error for zero rounds")
	}
	if _, err := Run(Config{Rounds: 1}, log); err == nil {
		t.Error("expected error for no sizes")
	}
	// A negative exclude count (reachable from config) must fail up front,
	// not crash after the benchmark has run.
	if _, err := Run(Config{Rounds: 1, Excl: -1, Sizes: []int64{KiB}}, log); err == nil {
		t.Error("expected error for negative exclude count")
	}
}

func TestSizeLabel(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{512, "512B"},
		{1 * KiB, "1KiB"},
		{32 * KiB, "32KiB"},
		{1 * MiB, "1MiB"},
		{3*KiB + 1, "3073B"},
	}
	for _, tc := range cases {
		if got := sizeLabel(tc.size); got != tc.want {
			t.Errorf("sizeLabel(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}
