package analytics

import (
	"slices"
	"strings"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

// topProducts ranks item names by units sold across all orders.
func topProducts(orders []models.Order) []ProductSales {
	pos := make(map[string]int)
	ranked := make([]ProductSales, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				name = UnknownProduct
			}
			i, ok := pos[name]
			if !ok {
				i = len(ranked)
				pos[name] = i
				ranked = append(ranked, ProductSales{Name: name})
			}
			ranked[i].UnitsSold += item.Units()
		}
	}

	slices.SortStableFunc(ranked, func(a, b ProductSales) int {
		return b.UnitsSold - a.UnitsSold
	})
	ranked = ranked[:min(len(ranked), TopN)]
	for i := range ranked {
		ranked[i].Color = paletteColor(i)
	}
	return ranked
}
