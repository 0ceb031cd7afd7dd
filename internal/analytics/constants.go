package analytics

// Canonical size order used to sort demand rows. Sizes not listed sort after these.
var sizeOrder = map[string]int{
	"XS":  0,
	"S":   1,
	"M":   2,
	"L":   3,
	"XL":  4,
	"XXL": 5,
}

// Palette is the fixed chart palette, assigned cyclically by rank.
var Palette = [3]string{"#4F46E5", "#10B981", "#F59E0B"}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

const (
	// TopN bounds every ranked list.
	TopN = 5

	// Stock bands: quantity <= OutOfStockMax is out of stock, below InStockMin is low stock.
	OutOfStockMax = 0
	InStockMin    = 10

	highDemandAbove   = 150
	mediumDemandAbove = 75

	UnknownProduct = "Unknown Product"
)

type ColorBand string

const (
	BandHigh   ColorBand = "high"
	BandMedium ColorBand = "medium"
	BandLow    ColorBand = "low"
)

func demandBand(total int) ColorBand {
	switch {
	case total > highDemandAbove:
		return BandHigh
	case total > mediumDemandAbove:
		return BandMedium
	default:
		return BandLow
	}
}

func paletteColor(rank int) string {
	return Palette[rank%len(Palette)]
}

type StockBand int

const (
	OutOfStock StockBand = iota
	LowStock
	InStock
)

// ClassifyStock places a size quantity into its stock band.
func ClassifyStock(quantity int) StockBand {
	switch {
	case quantity <= OutOfStockMax:
		return OutOfStock
	case quantity < InStockMin:
		return LowStock
	default:
		return InStock
	}
}
