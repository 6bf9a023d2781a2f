package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet bool
)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Inspect and exercise fixed-size pool allocators",
	Long: `poolctl is a tool for inspecting pool allocator geometry and for
benchmarking allocate/free churn against the general-purpose allocator.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
