// Command chartctl lays out and renders chart files from the local disk.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartctl",
		Short: "Lay out and render time-series charts",
		Long: `chartctl reads data points from a .json, .csv or .xlsx file and
either renders the chart to SVG/PNG or prints the computed geometry as JSON.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCommand(), newGeometryCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
