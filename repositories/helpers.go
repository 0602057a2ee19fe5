package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const (
	pgUniqueViolation = "23505"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// mapUniqueViolation turns a unique_violation on constraint into conflictError.
func mapUniqueViolation(err error, constraint string, conflictError error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		if constraint == "" || pqErr.Constraint == constraint {
			return conflictError
		}
	}
	return err
}
