package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	"github.com/rogerio-castellano/uniform-analytics/internal/report"
)

type reportOptions struct {
	input    string
	xlsx     string
	timezone string
	category string
	chart    string
	year     int
}

func newReportCmd() *cobra.Command {
	var opts reportOptions
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the dashboard aggregate from an exported dataset",
		Long: "Reads a JSON file with orders, batches and schools and prints the aggregate as JSON. " +
			"With --chart or --year only the selected chart is printed. With --xlsx an Excel workbook is written instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "dataset JSON file")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write an Excel workbook to this path")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "calendar used to bucket orders")
	cmd.Flags().StringVar(&opts.category, "category", "", "chart category (sales or schools)")
	cmd.Flags().StringVar(&opts.chart, "chart", "", "chart within the category")
	cmd.Flags().IntVar(&opts.year, "year", 0, "year for the size demand chart")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runReport(out io.Writer, opts reportOptions) error {
	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer f.Close()

	ds, err := report.ReadDataset(f)
	if err != nil {
		return err
	}

	agg := analytics.NewAggregator(analytics.WithLocation(loc))
	snap := dashboard.Snapshot{
		Result:     agg.Recompute(ds.Orders, ds.Batches, ds.Schools),
		Generation: 1,
		ComputedAt: time.Now(),
	}

	if opts.xlsx != "" {
		if err := report.SaveWorkbook(opts.xlsx, snap); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Fprintf(out, "workbook written to %s\n", opts.xlsx)
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if opts.chart == "" && opts.category == "" && opts.year == 0 {
		return enc.Encode(snap)
	}

	year := opts.year
	if year < 0 {
		return errors.New("year must be positive")
	}
	if year == 0 {
		year = snap.Year
	}
	return enc.Encode(analytics.Select(snap.Result, analytics.Selection{
		Category: analytics.Category(opts.category),
		Chart:    analytics.Chart(opts.chart),
		Year:     year,
	}))
}
