package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/benchpress/internal/logging"
)

var (
	cfgFile      string
	outputFormat string
	logLevel     string
	logJSON      bool

	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "benchpress",
	Short: "Micro-benchmarking harness",
	Long: `benchpress times zero-argument workloads over many rounds in a randomly
interleaved order and reduces the collected durations into summary statistics.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.benchpress/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table, json, yaml or csv")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON lines")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(filepath.Join(home, ".benchpress"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("benchpress")
	viper.AutomaticEnv()

	viper.SetDefault("rounds", 5)
	viper.SetDefault("exclude", 1)
	viper.SetDefault("verify", true)

	// Missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()

	if viper.GetString("output") != "" && !rootCmd.PersistentFlags().Changed("output") {
		outputFormat = viper.GetString("output")
	}

	logger = logging.NewLogger(logging.ParseLevel(logLevel), logJSON)
}

// OutputFormat returns the configured output format.
func OutputFormat() string {
	return outputFormat
}
