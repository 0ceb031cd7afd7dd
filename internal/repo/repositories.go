package repo

import (
	"context"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

// OrderRepository defines the read and write operations on the order store.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	Create(ctx context.Context, order models.Order) (models.Order, error)
	Delete(ctx context.Context, id string) error
}

// BatchRepository defines the read and write operations on the batch store.
type BatchRepository interface {
	List(ctx context.Context) ([]models.Batch, error)
	GetByID(ctx context.Context, id string) (models.Batch, error)
	Create(ctx context.Context, batch models.Batch) (models.Batch, error)
	Delete(ctx context.Context, id string) error
}

// SchoolRepository defines the read and write operations on the school store.
type SchoolRepository interface {
	List(ctx context.Context) ([]models.School, error)
	GetByID(ctx context.Context, id string) (models.School, error)
	Create(ctx context.Context, school models.School) (models.School, error)
	Delete(ctx context.Context, id string) error
}
