package postgres

import (
	"errors"
	"fmt"
	"strings"

	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation       = "23505"
	pgInsufficientPrivilege = "42501"
)

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

func isPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgInsufficientPrivilege
	}
	return strings.Contains(err.Error(), "row-level security")
}

// storeError classifies a driver error into the error taxonomy. Callers
// check for duplicates themselves when they have a domain error for it.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isPermissionDenied(err):
		return fmt.Errorf("%s: %w", op, appErrors.ErrPermissionDenied)
	case isDuplicateKey(err):
		return fmt.Errorf("%s: %w", op, appErrors.ErrDuplicateKey)
	default:
		return appErrors.Wrap(op, err)
	}
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
