package analytics

import (
	"slices"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

// inventoryHealth counts size entries per stock band for every known school. Batches of
// unknown schools are skipped. Schools with nothing counted are left out.
func inventoryHealth(batches []models.Batch, schools schoolIndex) []SchoolInventoryHealth {
	health := make([]SchoolInventoryHealth, len(schools.order))
	for i, s := range schools.order {
		health[i] = SchoolInventoryHealth{SchoolID: s.ID, SchoolName: s.Name}
	}

	for _, b := range batches {
		i, ok := schools.pos[b.SchoolID]
		if !ok {
			continue
		}
		for _, item := range b.Items {
			for _, size := range item.Sizes {
				switch ClassifyStock(size.Quantity) {
				case OutOfStock:
					health[i].OutOfStock++
				case LowStock:
					health[i].LowStock++
				default:
					health[i].InStock++
				}
			}
		}
	}

	health = slices.DeleteFunc(health, func(h SchoolInventoryHealth) bool {
		return h.Total() == 0
	})
	slices.SortStableFunc(health, func(a, b SchoolInventoryHealth) int {
		return b.Total() - a.Total()
	})
	return health[:min(len(health), TopN)]
}

// orderDistribution counts orders per known school.
func orderDistribution(orders []models.Order, schools schoolIndex) []SchoolOrderCount {
	counts := make([]SchoolOrderCount, len(schools.order))
	for i, s := range schools.order {
		counts[i] = SchoolOrderCount{SchoolID: s.ID, SchoolName: s.Name}
	}

	for _, o := range orders {
		if i, ok := schools.pos[o.SchoolID]; ok {
			counts[i].OrderCount++
		}
	}

	counts = slices.DeleteFunc(counts, func(c SchoolOrderCount) bool {
		return c.OrderCount == 0
	})
	slices.SortStableFunc(counts, func(a, b SchoolOrderCount) int {
		return b.OrderCount - a.OrderCount
	})
	counts = counts[:min(len(counts), TopN)]
	for i := range counts {
		counts[i].Color = paletteColor(i)
	}
	return counts
}
