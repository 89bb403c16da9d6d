package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

// txBeginner abre transacciones; lo satisface *pgxpool.Pool.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL: begin →
// fn(repos atados a la tx) → commit, con rollback diferido garantizado. Las
// operaciones actuales son de una sola sentencia, pero cualquier operación
// futura que abarque varias debe pasar por aquí.
type TxRunner struct {
	db txBeginner
}

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(db txBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translateError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewCategoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
