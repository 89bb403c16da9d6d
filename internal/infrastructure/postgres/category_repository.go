package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/shopping-api/internal/domain/entity"
	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT category_id, category_name FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, translateError("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, translateError("list categories", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list categories", err)
	}
	return list, nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no hay fila.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT category_id, category_name FROM categories WHERE category_id = $1`, id).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError("get category", err)
	}
	return &c, nil
}
