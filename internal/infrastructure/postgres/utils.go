package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/shopping-api/internal/domain"
)

// Querier abstrae pool y transacción: los repositorios funcionan igual con
// *pgxpool.Pool o pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE que el adaptador reconoce. Fuera de este archivo nadie
// inspecciona códigos del motor.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
)

// translateError traduce una falla del driver a la taxonomía de dominio.
// El clasificador HTTP solo hace pattern-matching sobre estos valores.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	// Pool agotado o deadline de adquisición: transitorio, reintentable.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, domain.ErrUnavailable)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		case pgErr.Code == codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrForeignKey)
		case pgErr.Code == codeNotNullViolation, pgErr.Code == codeCheckViolation:
			return fmt.Errorf("%s (%s): %w", op, pgErr.ConstraintName, domain.ErrCheckFailed)
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception
			return fmt.Errorf("%s: %w", op, domain.ErrUnavailable)
		}
		return domain.NewStorageError(op, pgErr)
	}
	if pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrUnavailable)
	}
	return domain.NewStorageError(op, err)
}
