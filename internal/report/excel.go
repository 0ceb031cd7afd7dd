// Package report renders a dashboard snapshot as an xlsx workbook.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
)

const (
	SheetSummary           = "Summary"
	SheetSizeDemand        = "Size Demand"
	SheetMonthlyRevenue    = "Monthly Revenue"
	SheetTopProducts       = "Top Products"
	SheetInventoryHealth   = "Inventory Health"
	SheetOrderDistribution = "Order Distribution"
)

// Workbook builds the workbook for snap. Callers must Close the returned file.
func Workbook(snap dashboard.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}

	writers := []func(*excelize.File, dashboard.Snapshot) error{
		writeSummary,
		writeSizeDemand,
		writeMonthlyRevenue,
		writeTopProducts,
		writeInventoryHealth,
		writeOrderDistribution,
	}
	for _, w := range writers {
		if err := w(f, snap); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook streams the workbook for snap to w.
func WriteWorkbook(w io.Writer, snap dashboard.Snapshot) error {
	f, err := Workbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook for snap to path.
func SaveWorkbook(path string, snap dashboard.Snapshot) error {
	f, err := Workbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRows fills sheet from A1, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, snap dashboard.Snapshot) error {
	s := snap.Summary
	return writeRows(f, SheetSummary, [][]any{
		{"Metric", "Value"},
		{"Generation", snap.Generation},
		{"Computed at", snap.ComputedAt.Format("2006-01-02 15:04:05 MST")},
		{"Current year", snap.Year},
		{"Total orders", s.TotalOrders},
		{"Undated orders", s.UndatedOrders},
		{"Total revenue", s.TotalRevenue},
		{"Current year revenue", s.CurrentYearRevenue},
		{"Total stock units", s.TotalStockUnits},
		{"In stock entries", s.InStockEntries},
		{"Low stock entries", s.LowStockEntries},
		{"Out of stock entries", s.OutOfStockEntries},
		{"Schools", s.SchoolCount},
		{"Batches", s.BatchCount},
	})
}

func writeSizeDemand(f *excelize.File, snap dashboard.Snapshot) error {
	rows := [][]any{{"Year", "Size", "Total sales", "Band"}}
	for _, y := range snap.Years {
		for _, d := range snap.SizeDemand[y] {
			rows = append(rows, []any{strconv.Itoa(y), d.Size, d.TotalSales, string(d.ColorBand)})
		}
	}
	return writeRows(f, SheetSizeDemand, rows)
}

func writeMonthlyRevenue(f *excelize.File, snap dashboard.Snapshot) error {
	rows := [][]any{{"Month", "Revenue"}}
	for _, m := range snap.MonthlyRevenue {
		rows = append(rows, []any{m.Month, m.Revenue})
	}
	return writeRows(f, SheetMonthlyRevenue, rows)
}

func writeTopProducts(f *excelize.File, snap dashboard.Snapshot) error {
	rows := [][]any{{"Rank", "Product", "Units sold"}}
	for i, p := range snap.TopProducts {
		rows = append(rows, []any{i + 1, p.Name, p.UnitsSold})
	}
	return writeRows(f, SheetTopProducts, rows)
}

func writeInventoryHealth(f *excelize.File, snap dashboard.Snapshot) error {
	rows := [][]any{{"School", "In stock", "Low stock", "Out of stock", "Total"}}
	for _, h := range snap.InventoryHealth {
		rows = append(rows, []any{h.SchoolName, h.InStock, h.LowStock, h.OutOfStock, h.Total()})
	}
	return writeRows(f, SheetInventoryHealth, rows)
}

func writeOrderDistribution(f *excelize.File, snap dashboard.Snapshot) error {
	rows := [][]any{{"School", "Orders"}}
	for _, c := range snap.OrderDistribution {
		rows = append(rows, []any{c.SchoolName, c.OrderCount})
	}
	return writeRows(f, SheetOrderDistribution, rows)
}
