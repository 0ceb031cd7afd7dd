package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrBatchNotFound         = errors.New("batch not found")
	ErrSchoolNotFound        = errors.New("school not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

const pgUniqueViolation = "23505"

// uniqueViolation maps driver-specific duplicate key errors to ErrDuplicatedValueUnique.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicatedValueUnique
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicatedValueUnique
	}
	return err
}
