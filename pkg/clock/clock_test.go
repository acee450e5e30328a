package clock

import (
	"testing"
	"time"
)

func TestDiff(t *testing.T) {
	if got := Diff(Sample(100), Sample(350)); got != 250*time.Nanosecond {
		t.Errorf("Diff = %v, want 250ns", got)
	}
	if got := Diff(Sample(0), Sample(0)); got != 0 {
		t.Errorf("Diff of equal samples = %v, want 0", got)
	}
}

func TestRealMonotonic(t *testing.T) {
	prev := Real()
	for i := 0; i < 1000; i++ {
		cur := Real()
		if cur < prev {
			t.Fatalf("Real went backwards: %d then %d", prev, cur)
		}
		prev = cur
	}
}

func TestRealAdvances(t *testing.T) {
	start := Real()
	time.Sleep(5 * time.Millisecond)
	if got := Diff(start, Real()); got < 5*time.Millisecond {
		t.Errorf("Real advanced %v across a 5ms sleep", got)
	}
}

func TestProcessAdvancesUnderLoad(t *testing.T) {
	start := Process()
	// Burn CPU until at least 10ms of wall time has passed; the process
	// clock must have moved by then.
	deadline := time.Now().Add(10 * time.Millisecond)
	x := 0
	for time.Now().Before(deadline) {
		x += x ^ 7
	}
	_ = x
	if got := Diff(start, Process()); got <= 0 {
		t.Errorf("Process advanced %v across a busy loop", got)
	}
}

func TestProcessMonotonic(t *testing.T) {
	prev := Process()
	for i := 0; i < 100; i++ {
		cur := Process()
		if cur < prev {
			t.Fatalf("Process went backwards: %d then %d", prev, cur)
		}
		prev = cur
	}
}
