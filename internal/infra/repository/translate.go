package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
)

// Postgres error codes surfaced by pgx when a constraint races past the
// application-level pre-checks.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError classifies driver-level failures into the business error
// kinds. Already-classified errors pass through untouched; the unique-index
// path is the backstop for duplicate-key races the pre-checks cannot win.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundError("not_found", "Record not found.")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.UniqueConflict("duplicate_value", "A record with the same unique value already exists.")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return httperr.Referential("foreign_key_violation", "Operation violates a referential constraint.")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return httperr.UniqueConflict("duplicate_value", "A record with the same unique value already exists.")
		case pgForeignKeyViolation:
			return httperr.Referential("foreign_key_violation", "Operation violates a referential constraint.")
		}
	}

	return err
}

// exists reports whether a row of the given model with this id is present.
func exists[T any](tx *gorm.DB, id uint) (bool, error) {
	var count int64
	var model T
	if err := tx.Model(&model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
