package copybench

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/psantana5/benchpress/internal/logging"
	"github.com/psantana5/benchpress/internal/report"
	"github.com/psantana5/benchpress/pkg/bench"
	"github.com/psantana5/benchpress/pkg/reduce"
)

// Config controls one copy-benchmark run.
type Config struct {
	Rounds int     // rounds per strategy per size
	Excl   int     // outliers trimmed from each end for the excluded average
	Dir    string  // working directory for src/dst files
	Sizes  []int64 // source file sizes to sweep
	Verify bool    // compare src and dst after every round
}

// Target wraps the strategy as a wall-clock timing target. The destination
// is recreated before each round; with verify set the round's copy is
// compared byte for byte afterwards. A failing copy or verification aborts
// the run.
func (s Strategy) Target(src, dst string, verify bool) bench.Target[time.Duration] {
	pre := func() {
		if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
			panic(fmt.Errorf("copybench: remove %s: %w", dst, err))
		}
	}
	payload := func() {
		if err := s.Copy(src, dst); err != nil {
			panic(fmt.Errorf("copybench: %s: %w", s.Name, err))
		}
	}
	var post func()
	if verify {
		post = func() {
			same, err := Equal(src, dst)
			if err != nil {
				panic(fmt.Errorf("copybench: verify %s: %w", s.Name, err))
			}
			if !same {
				panic(fmt.Errorf("copybench: %s produced a different file", s.Name))
			}
		}
	}
	return bench.RealTime(payload, pre, post)
}

// Run sweeps every configured size over every strategy and summarizes the
// collected rounds.
func Run(cfg Config, log *logging.Logger) (*report.Report, error) {
	if cfg.Rounds < 1 {
		return nil, bench.ErrNoRounds
	}
	if cfg.Excl < 0 {
		return nil, fmt.Errorf("copybench: exclude count must be non-negative, got %d", cfg.Excl)
	}
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("copybench: no sizes configured")
	}

	src := filepath.Join(cfg.Dir, "src")
	dst := filepath.Join(cfg.Dir, "dst")
	defer os.Remove(src)
	defer os.Remove(dst)

	strategies := Strategies()
	rep := report.New(cfg.Rounds)

	for _, size := range cfg.Sizes {
		log.Info("generating source file", map[string]interface{}{
			"size": size, "path": src,
		})
		if err := GenerateSource(src, size); err != nil {
			return nil, fmt.Errorf("copybench: generate source: %w", err)
		}

		targets := make([]bench.Target[time.Duration], len(strategies))
		for i, s := range strategies {
			targets[i] = s.Target(src, dst, cfg.Verify)
		}

		log.Info("benchmarking", map[string]interface{}{
			"size": size, "strategies": len(strategies), "rounds": cfg.Rounds,
		})
		rounds, err := bench.Run(cfg.Rounds, reduce.Full[time.Duration], targets)
		if err != nil {
			return nil, err
		}

		for i, seq := range rounds {
			rep.Add(report.Summarize(strategies[i].Name, sizeLabel(size), seq, cfg.Excl))
		}
	}

	return rep, nil
}
