package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "uniform-analytics",
		Short:        "Dashboard analytics for school uniform orders and stock",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newReportCmd())
	return root
}

// @title Uniform Analytics API
// @version 1.0
// @description Dashboard analytics over school uniform orders, production batches and schools.
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
