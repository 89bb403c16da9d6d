package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/shopping-api/internal/domain/entity"
	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// selectProduct proyección común: producto más el nombre de su categoría
// resuelto con LEFT JOIN (NULL si no tiene categoría).
const selectProduct = `
	SELECT p.product_id, p.product_name, COALESCE(p.description, ''), p.price,
	       p.stock_quantity, p.category_id, c.category_name, p.created_at, p.updated_at
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.category_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.CategoryID, &p.CategoryName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, translateError(op, err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return list, nil
}

// List devuelve todos los productos ordenados por id ascendente. Sin
// paginación: aceptable a esta escala, límite conocido.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.queryProducts(ctx, "list products", selectProduct+` ORDER BY p.product_id`)
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no hay fila.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, selectProduct+` WHERE p.product_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError("get product", err)
	}
	return p, nil
}

// Create inserta las cinco columnas escribibles y devuelve el id generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (product_name, description, price, stock_quantity, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.StockQuantity, product.CategoryID,
	).Scan(&id)
	if err != nil {
		return 0, translateError("insert product", err)
	}
	return id, nil
}

// UpdatePartial ejecuta un único UPDATE con los campos presentes del patch.
// Patch vacío: (false, nil) sin emitir escritura.
func (r *ProductRepo) UpdatePartial(ctx context.Context, id int64, patch entity.ProductPatch) (bool, error) {
	sql, args, ok := buildProductUpdate(id, patch)
	if !ok {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return false, translateError("update product", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina por id; false si no había fila (idempotente).
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return false, translateError("delete product", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByCategory lista los productos de una categoría ordenados por nombre.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.queryProducts(ctx, "list products by category",
		selectProduct+` WHERE p.category_id = $1 ORDER BY p.product_name`, categoryID)
}

// ListLowStock lista productos con stock_quantity < threshold, los más agotados primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.queryProducts(ctx, "list low stock products",
		selectProduct+` WHERE p.stock_quantity < $1 ORDER BY p.stock_quantity ASC`, threshold)
}

// AdjustStock aplica el delta en un solo UPDATE atómico; el CHECK de la tabla
// impide dejar el stock negativo.
func (r *ProductRepo) AdjustStock(ctx context.Context, id int64, delta int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = now() WHERE product_id = $1`,
		id, delta)
	if err != nil {
		return false, translateError("adjust stock", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CheckStock lee el stock actual y lo compara con lo requerido. Resultado de
// tres vías: producto inexistente y stock insuficiente son casos distintos.
func (r *ProductRepo) CheckStock(ctx context.Context, id int64, required int) (repository.StockCheck, error) {
	var stock int
	err := r.q.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE product_id = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.StockProductNotFound, nil
		}
		return 0, translateError("check stock", err)
	}
	if stock >= required {
		return repository.StockSufficient, nil
	}
	return repository.StockInsufficient, nil
}
