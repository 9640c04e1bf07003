package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Names of the partial unique indexes guarding open transfers.
const (
	openPackageIndex = "transfer_records_open_package_uq"
	openCodeIndex    = "transfer_records_open_code_uq"
)

// IsDuplicate - signals that the error is a duplicate key violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == codeUniqueViolation
}

// IsForeignKey - signals that a referenced row is missing.
func IsForeignKey(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == codeForeignKeyViolation
}

// violatedConstraint returns the constraint name of a unique violation, if any.
func violatedConstraint(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == codeUniqueViolation {
		return pgerr.ConstraintName
	}
	return ""
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
