package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/rdinit/hackathonService/pkg/errors"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation || errors.Is(err, gorm.ErrForeignKeyViolated)
}

// translateError maps a store error onto an application error code.
// Unique violations become CONFLICT, foreign-key violations and missing rows
// NOT_FOUND, check violations INVALID_ARGUMENT, cancelled contexts TIMEOUT and
// everything else INTERNAL.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	code := apperrors.ErrInternal
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), isForeignKeyViolation(err):
		code = apperrors.ErrNotFound
	case isUniqueViolation(err):
		code = apperrors.ErrConflict
	case pgCode(err) == pgCheckViolation:
		code = apperrors.ErrInvalidArgument
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		code = apperrors.ErrTimeout
	}
	return apperrors.NewAppError(code, message, err)
}
