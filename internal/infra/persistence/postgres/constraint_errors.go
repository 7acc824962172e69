// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrClass is the store-agnostic classification of a persistence error.
// Callers switch on these values instead of matching vendor error strings;
// the SQLSTATE codes stay confined to this adapter.
type ErrClass int

const (
	// ErrClassOther is any failure without a specific classification.
	ErrClassOther ErrClass = iota
	// ErrClassUndefinedObject: the referenced table/object does not exist
	// (SQLSTATE 42P01), e.g. dropping a table that was never created.
	ErrClassUndefinedObject
	// ErrClassDuplicateObject: the table/object already exists
	// (SQLSTATE 42P07), e.g. re-creating an existing table.
	ErrClassDuplicateObject
	// ErrClassUniqueViolation: a row-level uniqueness constraint was
	// violated (SQLSTATE 23505), e.g. inserting a taken username.
	ErrClassUniqueViolation
)

const (
	sqlstateUniqueViolation = "23505"
	sqlstateUndefinedTable  = "42P01"
	sqlstateDuplicateTable  = "42P07"
)

// Classify translates a raw persistence error into its ErrClass.
func Classify(err error) ErrClass {
	if err == nil {
		return ErrClassOther
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrClassUniqueViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateUniqueViolation:
			return ErrClassUniqueViolation
		case sqlstateUndefinedTable:
			return ErrClassUndefinedObject
		case sqlstateDuplicateTable:
			return ErrClassDuplicateObject
		}
	}

	return ErrClassOther
}

func isUniqueConstraintViolation(err error) bool {
	return Classify(err) == ErrClassUniqueViolation
}
