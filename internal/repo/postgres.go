package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	query := `SELECT id, school_id, created_at, total_amount, items FROM orders ORDER BY created_at NULLS LAST, id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	query := `SELECT id, school_id, created_at, total_amount, items FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	query := `INSERT INTO orders (id, school_id, created_at, total_amount, items) VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to encode order items: %w", err)
	}

	var createdAt *time.Time
	if t, ok := o.CreatedAt.Time(); ok {
		createdAt = &t
	}

	if _, err := r.db.ExecContext(ctx, query, o.ID, o.SchoolID, createdAt, o.TotalAmount, items); err != nil {
		return models.Order{}, uniqueViolation(err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "orders", id, ErrOrderNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o         models.Order
		createdAt sql.NullTime
		items     []byte
	)
	if err := row.Scan(&o.ID, &o.SchoolID, &createdAt, &o.TotalAmount, &items); err != nil {
		return models.Order{}, err
	}
	if createdAt.Valid {
		o.CreatedAt = models.NativeTime(createdAt.Time)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode items of order %s: %w", o.ID, err)
	}
	return o, nil
}

type PostgresBatchRepository struct {
	db *sql.DB
}

func NewPostgresBatchRepository(db *sql.DB) *PostgresBatchRepository {
	return &PostgresBatchRepository{db: db}
}

func (r *PostgresBatchRepository) List(ctx context.Context) ([]models.Batch, error) {
	query := `SELECT id, school_id, items FROM batches ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	batches := []models.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *PostgresBatchRepository) GetByID(ctx context.Context, id string) (models.Batch, error) {
	query := `SELECT id, school_id, items FROM batches WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	b, err := scanBatch(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Batch{}, ErrBatchNotFound
	}
	return b, err
}

func (r *PostgresBatchRepository) Create(ctx context.Context, b models.Batch) (models.Batch, error) {
	query := `INSERT INTO batches (id, school_id, items) VALUES ($1, $2, $3)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	items, err := json.Marshal(b.Items)
	if err != nil {
		return models.Batch{}, fmt.Errorf("failed to encode batch items: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, b.ID, b.SchoolID, items); err != nil {
		return models.Batch{}, uniqueViolation(err)
	}
	return b, nil
}

func (r *PostgresBatchRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "batches", id, ErrBatchNotFound)
}

func scanBatch(row rowScanner) (models.Batch, error) {
	var (
		b     models.Batch
		items []byte
	)
	if err := row.Scan(&b.ID, &b.SchoolID, &items); err != nil {
		return models.Batch{}, err
	}
	if err := json.Unmarshal(items, &b.Items); err != nil {
		return models.Batch{}, fmt.Errorf("failed to decode items of batch %s: %w", b.ID, err)
	}
	return b, nil
}

type PostgresSchoolRepository struct {
	db *sql.DB
}

func NewPostgresSchoolRepository(db *sql.DB) *PostgresSchoolRepository {
	return &PostgresSchoolRepository{db: db}
}

func (r *PostgresSchoolRepository) List(ctx context.Context) ([]models.School, error) {
	query := `SELECT id, name FROM schools ORDER BY name, id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schools: %w", err)
	}
	defer rows.Close()

	schools := []models.School{}
	for rows.Next() {
		var s models.School
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

func (r *PostgresSchoolRepository) GetByID(ctx context.Context, id string) (models.School, error) {
	query := `SELECT id, name FROM schools WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var s models.School
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.School{}, ErrSchoolNotFound
	}
	return s, err
}

func (r *PostgresSchoolRepository) Create(ctx context.Context, s models.School) (models.School, error) {
	query := `INSERT INTO schools (id, name) VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name); err != nil {
		return models.School{}, uniqueViolation(err)
	}
	return s, nil
}

func (r *PostgresSchoolRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "schools", id, ErrSchoolNotFound)
}

// deleteByID removes one row; table is always one of the package's own table names.
func deleteByID(ctx context.Context, db *sql.DB, table, id string, notFound error) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
