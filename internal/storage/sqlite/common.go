package sqlite

import (
	"context"
	"database/sql"

	apperrors "task-planner/internal/errors"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// HandleDatabaseError converts database errors to structured app errors.
// Context cancellation surfaces as a timeout instead of a storage failure.
func HandleDatabaseError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if timeout := apperrors.FromContext(operation, err); apperrors.IsErrorType(timeout, apperrors.ErrorTypeTimeout) {
		return timeout
	}
	return apperrors.NewStorageError(operation, err)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, q querier, query string, scanFunc func(Rows) ([]T, error), entityType string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan "+entityType, err)
	}

	return results, nil
}

// ExecuteBatch runs query once per argument list, stopping at the first failure.
func ExecuteBatch(ctx context.Context, q querier, query string, entityType string, argsList [][]any) error {
	for _, args := range argsList {
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return HandleDatabaseError("write "+entityType, err)
		}
	}
	return nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
