package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/psantana5/benchpress/internal/hostinfo"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the host context benchmarks run in",
	Long: `Prints the hardware context captured into every report: CPU model and
thread count, total RAM, OS and Go version. Useful when comparing numbers
across machines.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	info := hostinfo.Collect()

	switch OutputFormat() {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(info)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		table.Append("Hostname", info.Hostname)
		table.Append("OS/Arch", fmt.Sprintf("%s/%s", info.OS, info.Architecture))
		table.Append("CPU", fmt.Sprintf("%s (%d threads)", info.CPUModel, info.CPUThreads))
		if info.CPUMHz > 0 {
			table.Append("CPU MHz", fmt.Sprintf("%d", info.CPUMHz))
		}
		table.Append("RAM", hostinfo.FormatRAM(info.RAMBytes))
		table.Append("Go", info.GoVersion)
		return table.Render()
	}
}
