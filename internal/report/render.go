package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Render writes the report in the requested format: table, json, yaml or csv.
func (r *Report) Render(w io.Writer, format string) error {
	switch format {
	case "", "table":
		return r.WriteTable(w)
	case "json":
		return r.WriteJSON(w)
	case "yaml":
		return r.WriteYAML(w)
	case "csv":
		return r.WriteCSV(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteTable renders a human-readable summary table.
func (r *Report) WriteTable(w io.Writer) error {
	fmt.Fprintf(w, "Host: %s (%s/%s, %d threads)\n", r.Host.Hostname, r.Host.OS, r.Host.Architecture, r.Host.CPUThreads)
	fmt.Fprintf(w, "Rounds per target: %d\n\n", r.Rounds)

	table := tablewriter.NewWriter(w)
	table.Header("Target", "Case", "Min", "Max", "Avg", "Median", "ExclAvg", "Stddev", "NSD")
	for _, s := range r.Summaries {
		table.Append(
			s.Target,
			s.Case,
			s.Min.String(),
			s.Max.String(),
			s.Avg.String(),
			s.Median.String(),
			s.ExclAvg.String(),
			time.Duration(s.Stddev).String(),
			fmt.Sprintf("%.4f", s.NSD),
		)
	}
	return table.Render()
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML renders the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// WriteCSV renders one row per summary, durations in nanoseconds.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"target", "case", "rounds", "min_ns", "max_ns", "avg_ns", "median_ns", "excl_avg_ns", "stddev_ns", "nsd"}); err != nil {
		return err
	}
	for _, s := range r.Summaries {
		row := []string{
			s.Target,
			s.Case,
			strconv.Itoa(s.Rounds),
			strconv.FormatInt(int64(s.Min), 10),
			strconv.FormatInt(int64(s.Max), 10),
			strconv.FormatInt(int64(s.Avg), 10),
			strconv.FormatInt(int64(s.Median), 10),
			strconv.FormatInt(int64(s.ExclAvg), 10),
			strconv.FormatFloat(s.Stddev, 'f', -1, 64),
			strconv.FormatFloat(s.NSD, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
