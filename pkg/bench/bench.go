// Package bench runs timing targets for a number of rounds in a randomly
// interleaved order and reduces each target's results to a statistic.
//
// Interleaving matters: running each target's rounds back to back would let
// the first target benefit from warm caches while later targets absorb
// thermal drift. Shuffling all (target, round) slots into one uniform random
// order spreads that drift evenly across targets.
package bench

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/psantana5/benchpress/pkg/reduce"
)

var (
	// ErrNoRounds rejects calls with fewer than one round; reducers are
	// defined only for non-empty sequences.
	ErrNoRounds = errors.New("bench: rounds must be at least 1")
	// ErrNoTargets rejects calls with nothing to measure.
	ErrNoTargets = errors.New("bench: at least one target required")
	// ErrNilTarget rejects a nil entry in the target list.
	ErrNilTarget = errors.New("bench: nil target")
)

type config struct {
	seed   uint64
	seeded bool
}

// Option adjusts a single Run or One call.
type Option func(*config)

// WithSeed makes the execution-order shuffle deterministic. Without it every
// call seeds a fresh generator from the OS entropy source.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// Run invokes every target exactly rounds times, interleaving all
// len(targets)×rounds invocations in one uniformly shuffled order, and
// reduces each target's round results with fn. Statistics are returned in
// target-supply order regardless of execution order.
//
// A panic from any target aborts the whole run; results collected so far are
// discarded. Nothing here retries or cancels: a hung target hangs the run.
func Run[T, R any](rounds int, fn reduce.Func[T, R], targets []Target[T], opts ...Option) ([]R, error) {
	if rounds < 1 {
		return nil, ErrNoRounds
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	for i, t := range targets {
		if t == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilTarget, i)
		}
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// One generator per call, seeded exactly once. Reseeding per round would
	// correlate the shuffle with timing and undo its bias cancelling.
	rng := newRand(cfg)

	nf := len(targets)
	results := make([][]T, nf)
	for i := range results {
		results[i] = make([]T, rounds)
	}

	// Slot i maps to target i%nf, round i/nf; the shuffle reorders execution
	// while storage position stays keyed by round.
	for _, slot := range rng.Perm(nf * rounds) {
		results[slot%nf][slot/nf] = targets[slot%nf]()
	}

	stats := make([]R, nf)
	for i, seq := range results {
		stats[i] = fn(seq)
	}
	return stats, nil
}

// One is the single-target form of Run, returning the statistic directly.
func One[T, R any](rounds int, fn reduce.Func[T, R], target Target[T], opts ...Option) (R, error) {
	stats, err := Run(rounds, fn, []Target[T]{target}, opts...)
	if err != nil {
		var zero R
		return zero, err
	}
	return stats[0], nil
}

func newRand(cfg config) *rand.Rand {
	if cfg.seeded {
		return rand.New(rand.NewPCG(cfg.seed, 0))
	}
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand is documented never to fail on supported platforms;
		// the global generator is itself OS-entropy seeded.
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))
}
