package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

// Dataset is an offline export of the three stores, as read by the report command.
type Dataset struct {
	Orders  []models.Order  `json:"orders"`
	Batches []models.Batch  `json:"batches"`
	Schools []models.School `json:"schools"`
}

func ReadDataset(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return ds, nil
}
