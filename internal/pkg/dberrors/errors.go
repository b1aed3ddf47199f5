package dberrors

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// MySQL server error numbers the repositories care about.
const (
	ErDupEntry             uint16 = 1062
	ErRowIsReferenced      uint16 = 1451
	ErNoReferencedRow      uint16 = 1452
	ErCheckConstraintFails uint16 = 3819
)

func mysqlNumber(err error) (uint16, bool) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number, true
	}
	return 0, false
}

// IsDuplicateError reports a unique key violation.
func IsDuplicateError(err error) bool {
	n, ok := mysqlNumber(err)
	return ok && n == ErDupEntry
}

// IsMissingReferenceError reports an insert/update pointing at a parent row that does not exist.
func IsMissingReferenceError(err error) bool {
	n, ok := mysqlNumber(err)
	return ok && n == ErNoReferencedRow
}

// IsReferencedError reports a delete blocked by child rows.
func IsReferencedError(err error) bool {
	n, ok := mysqlNumber(err)
	return ok && n == ErRowIsReferenced
}

// IsCheckViolation reports a CHECK constraint failure (MySQL 8.0.16+).
func IsCheckViolation(err error) bool {
	n, ok := mysqlNumber(err)
	return ok && n == ErCheckConstraintFails
}

// Classify maps a driver error onto the application error taxonomy. notFound is
// returned for sql.ErrNoRows and missing foreign references, conflict for
// duplicate keys. Anything unrecognised becomes a storage error.
func Classify(err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return notFound
	case IsDuplicateError(err):
		return conflict
	case IsMissingReferenceError(err):
		return apperrors.NewCustomError(apperrors.ErrResourceNotFound, "referenced record does not exist")
	case IsReferencedError(err):
		return apperrors.NewConflictError("record is still referenced by other records")
	case IsCheckViolation(err):
		return apperrors.NewValidationError("value violates a constraint")
	default:
		return apperrors.NewStorageError(err)
	}
}
