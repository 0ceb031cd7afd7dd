package repo

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

func testPostgres(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	database, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// The schema is created by db.Connect; these tests only need it to exist.
	_, err = database.Exec(`TRUNCATE orders, batches, schools`)
	if err != nil {
		t.Skipf("schema not available: %v", err)
	}
	t.Cleanup(func() { database.Exec(`TRUNCATE orders, batches, schools`) })
	return database
}

func TestPostgresRepositories(t *testing.T) {
	database := testPostgres(t)
	ctx := context.Background()

	schools := NewPostgresSchoolRepository(database)
	_, err := schools.Create(ctx, models.School{ID: "s1", Name: "Hillside"})
	require.NoError(t, err)
	_, err = schools.Create(ctx, models.School{ID: "s1", Name: "Again"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	batches := NewPostgresBatchRepository(database)
	b, err := batches.Create(ctx, models.Batch{SchoolID: "s1", Items: []models.BatchItem{{Name: "Polo", Sizes: []models.SizeStock{{Size: "M", Quantity: 3}}}}})
	require.NoError(t, err)
	gotBatch, err := batches.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, gotBatch)

	orders := NewPostgresOrderRepository(database)
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	_, err = orders.Create(ctx, models.Order{ID: "o1", SchoolID: "s1", CreatedAt: models.EpochSeconds(at.Unix()), TotalAmount: 9.5})
	require.NoError(t, err)
	_, err = orders.Create(ctx, models.Order{ID: "o2", SchoolID: "s1"})
	require.NoError(t, err)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	got, ok := all[0].CreatedAt.Time()
	require.True(t, ok)
	assert.True(t, got.Equal(at))
	assert.Equal(t, models.TimestampMissing, all[1].CreatedAt.Kind)

	require.NoError(t, orders.Delete(ctx, "o1"))
	_, err = orders.GetByID(ctx, "o1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
