package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/benchpress/internal/copybench"
	"github.com/psantana5/benchpress/internal/export"
	"github.com/psantana5/benchpress/internal/report"
)

var (
	copyRounds  int
	copyExclude int
	copyDir     string
	copySizes   []string
	copyVerify  bool
	copyListen  string
	copyMetrics string
	copyReport  string
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Benchmark file-copy strategies",
	Long: `Benchmarks several file-copy strategies (buffered loops, io.Copy, whole-file,
and on linux sendfile/copy_file_range) against source files of the configured
sizes. All strategies are interleaved in one shuffled execution order so no
strategy systematically benefits from warm caches.`,
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().IntVarP(&copyRounds, "rounds", "r", 0, "rounds per strategy per size (default from config, 5)")
	copyCmd.Flags().IntVar(&copyExclude, "exclude", -1, "outliers trimmed from each end for the excluded average")
	copyCmd.Flags().StringVar(&copyDir, "dir", "", "working directory for benchmark files (default a temp dir)")
	copyCmd.Flags().StringSliceVar(&copySizes, "sizes", []string{"1KiB", "32KiB", "1MiB"}, "source file sizes to sweep")
	copyCmd.Flags().BoolVar(&copyVerify, "verify", true, "verify the copied file after every round")
	copyCmd.Flags().StringVar(&copyListen, "listen", "", "serve /metrics, /results and /healthz on this address after the run")
	copyCmd.Flags().StringVar(&copyMetrics, "metrics-file", "", "write metrics in Prometheus text format to this file")
	copyCmd.Flags().StringVar(&copyReport, "report-file", "", "write the rendered report to this file instead of stdout")
}

func runCopy(cmd *cobra.Command, args []string) error {
	rounds := copyRounds
	if rounds == 0 {
		rounds = viper.GetInt("rounds")
	}
	exclude := copyExclude
	if exclude < 0 {
		exclude = viper.GetInt("exclude")
	}

	sizes, err := parseSizes(copySizes)
	if err != nil {
		return err
	}

	dir := copyDir
	if dir == "" {
		dir, err = os.MkdirTemp("", "benchpress-copy-")
		if err != nil {
			return fmt.Errorf("failed to create working directory: %w", err)
		}
		defer os.RemoveAll(dir)
	}

	cfg := copybench.Config{
		Rounds: rounds,
		Excl:   exclude,
		Dir:    dir,
		Sizes:  sizes,
		Verify: copyVerify,
	}

	rep, err := copybench.Run(cfg, logger.WithField("component", "copybench"))
	if err != nil {
		return err
	}

	if err := writeReport(rep); err != nil {
		return err
	}

	if copyMetrics != "" || copyListen != "" {
		exporter := export.New()
		exporter.Observe(rep)

		if copyMetrics != "" {
			if err := writeMetricsFile(exporter, copyMetrics); err != nil {
				return err
			}
		}
		if copyListen != "" {
			return serveMetrics(exporter, copyListen)
		}
	}
	return nil
}

func writeReport(rep *report.Report) error {
	if copyReport == "" {
		return rep.Render(os.Stdout, OutputFormat())
	}
	f, err := os.Create(copyReport)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := rep.Render(f, OutputFormat()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMetricsFile(exporter *export.Exporter, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := exporter.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serveMetrics(exporter *export.Exporter, addr string) error {
	srv := export.NewServer(addr, exporter)
	logger.Info("serving results", map[string]interface{}{"addr": addr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

// parseSizes accepts plain byte counts and KiB/MiB/GiB suffixes.
func parseSizes(specs []string) ([]int64, error) {
	sizes := make([]int64, 0, len(specs))
	for _, spec := range specs {
		size, err := parseSize(spec)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func parseSize(spec string) (int64, error) {
	s := strings.TrimSpace(spec)
	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "GiB"):
		mult = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "GiB")
	case strings.HasSuffix(s, "MiB"):
		mult = 1024 * 1024
		s = strings.TrimSuffix(s, "MiB")
	case strings.HasSuffix(s, "KiB"):
		mult = 1024
		s = strings.TrimSuffix(s, "KiB")
	case strings.HasSuffix(s, "B"):
		s = strings.TrimSuffix(s, "B")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid size %q", spec)
	}
	return n * mult, nil
}
