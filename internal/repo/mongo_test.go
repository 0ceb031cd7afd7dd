package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

func testMongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	database := client.Database("uniform_analytics_test")
	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return database
}

func TestMongoOrderRepository(t *testing.T) {
	database := testMongoDatabase(t)
	ctx := context.Background()
	r := NewMongoOrderRepository(database)

	created, err := r.Create(ctx, models.Order{SchoolID: "s1", CreatedAt: models.EpochSeconds(1700000000), TotalAmount: 12.5})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = r.Create(ctx, models.Order{ID: created.ID, SchoolID: "s1"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EpochSeconds(1700000000), got.CreatedAt)

	require.NoError(t, r.Delete(ctx, created.ID))
	assert.ErrorIs(t, r.Delete(ctx, created.ID), ErrOrderNotFound)
}

func TestMongoOrderRepository_MixedTimestampDocuments(t *testing.T) {
	database := testMongoDatabase(t)
	ctx := context.Background()
	native := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	_, err := database.Collection(OrdersCollection).InsertMany(ctx, []any{
		bson.D{{Key: "_id", Value: "a"}, {Key: "schoolId", Value: "s1"}, {Key: "createdAt", Value: native}},
		bson.D{{Key: "_id", Value: "b"}, {Key: "schoolId", Value: "s1"}, {Key: "createdAt", Value: bson.D{{Key: "seconds", Value: int64(1700000000)}, {Key: "nanoseconds", Value: 0}}}},
		bson.D{{Key: "_id", Value: "c"}, {Key: "schoolId", Value: "s1"}},
	})
	require.NoError(t, err)

	orders, err := NewMongoOrderRepository(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	kinds := map[string]models.TimestampKind{}
	for _, o := range orders {
		kinds[o.ID] = o.CreatedAt.Kind
	}
	assert.Equal(t, map[string]models.TimestampKind{
		"a": models.TimestampNative,
		"b": models.TimestampEpochSeconds,
		"c": models.TimestampMissing,
	}, kinds)
}
