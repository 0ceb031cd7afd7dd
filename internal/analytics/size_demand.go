package analytics

import (
	"slices"
	"strings"
)

// sizeDemandByYear returns the distinct order years, most recent first, and the demand rows
// for each. With no orders the current year is the only bucket.
func sizeDemandByYear(orders []datedOrder, currentYear int) ([]int, map[int][]SizeDemand) {
	byYear := make(map[int][]datedOrder)
	for _, o := range orders {
		y := o.year(currentYear)
		byYear[y] = append(byYear[y], o)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	if len(years) == 0 {
		years = append(years, currentYear)
	}
	slices.Sort(years)
	slices.Reverse(years)

	demand := make(map[int][]SizeDemand, len(years))
	for _, y := range years {
		demand[y] = sizeDemandRows(byYear[y])
	}
	return years, demand
}

func sizeDemandRows(orders []datedOrder) []SizeDemand {
	totals := make(map[string]int)
	var seen []string
	for _, o := range orders {
		for _, item := range o.order.Items {
			size := strings.TrimSpace(item.Size)
			if size == "" {
				continue
			}
			if _, ok := totals[size]; !ok {
				seen = append(seen, size)
			}
			totals[size] += item.Units()
		}
	}

	rows := make([]SizeDemand, 0, len(seen))
	for _, size := range seen {
		rows = append(rows, SizeDemand{
			Size:       size,
			TotalSales: totals[size],
			ColorBand:  demandBand(totals[size]),
		})
	}
	SortSizes(rows)
	return rows
}

// SortSizes orders rows by the canonical size table. Unknown sizes go last and keep their
// relative order.
func SortSizes(rows []SizeDemand) {
	slices.SortStableFunc(rows, func(a, b SizeDemand) int {
		return sizeRank(a.Size) - sizeRank(b.Size)
	})
}

// sizeRank matches the canonical table case-insensitively. Rows keep the size as ordered.
func sizeRank(size string) int {
	if r, ok := sizeOrder[strings.ToUpper(size)]; ok {
		return r
	}
	return len(sizeOrder)
}
