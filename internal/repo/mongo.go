package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	OrdersCollection  = "orders"
	BatchesCollection = "batches"
	SchoolsCollection = "schools"
)

// mongoStore reads and writes one collection. Documents are keyed by their string _id.
type mongoStore[T any] struct {
	coll     *mongo.Collection
	id       func(*T) *string
	notFound error
}

func (s *mongoStore[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.coll.Name(), err)
	}
	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.coll.Name(), err)
	}
	return items, nil
}

func (s *mongoStore[T]) GetByID(ctx context.Context, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var item T
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item, s.notFound
	}
	return item, err
}

func (s *mongoStore[T]) Create(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if id := s.id(&item); *id == "" {
		*id = uuid.NewString()
	}
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		var zero T
		return zero, uniqueViolation(err)
	}
	return item, nil
}

func (s *mongoStore[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return s.notFound
	}
	return nil
}

type MongoOrderRepository struct {
	*mongoStore[models.Order]
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{&mongoStore[models.Order]{
		coll:     db.Collection(OrdersCollection),
		id:       func(o *models.Order) *string { return &o.ID },
		notFound: ErrOrderNotFound,
	}}
}

type MongoBatchRepository struct {
	*mongoStore[models.Batch]
}

func NewMongoBatchRepository(db *mongo.Database) *MongoBatchRepository {
	return &MongoBatchRepository{&mongoStore[models.Batch]{
		coll:     db.Collection(BatchesCollection),
		id:       func(b *models.Batch) *string { return &b.ID },
		notFound: ErrBatchNotFound,
	}}
}

type MongoSchoolRepository struct {
	*mongoStore[models.School]
}

func NewMongoSchoolRepository(db *mongo.Database) *MongoSchoolRepository {
	return &MongoSchoolRepository{&mongoStore[models.School]{
		coll:     db.Collection(SchoolsCollection),
		id:       func(s *models.School) *string { return &s.ID },
		notFound: ErrSchoolNotFound,
	}}
}
