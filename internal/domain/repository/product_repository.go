package repository

import (
	"context"

	"github.com/jhoicas/shopping-api/internal/domain/entity"
)

// StockCheck resultado de verificar disponibilidad de stock. Producto
// inexistente y stock insuficiente son casos distintos; un bool los
// confundiría y el caller no podría responder 404.
type StockCheck int

const (
	StockSufficient StockCheck = iota
	StockInsufficient
	StockProductNotFound
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Convención: GetByID devuelve (nil, nil) cuando no hay fila; los errores
// siempre son de la taxonomía de dominio, nunca del driver.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// UpdatePartial aplica solo los campos presentes del patch en un único
	// UPDATE. Patch vacío: (false, nil) sin tocar el storage. El bool indica
	// si alguna fila coincidió.
	UpdatePartial(ctx context.Context, id int64, patch entity.ProductPatch) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	// AdjustStock incrementa o decrementa stock_quantity de forma atómica
	// (un solo UPDATE, sin read-modify-write). Delta puede ser negativo.
	AdjustStock(ctx context.Context, id int64, delta int) (bool, error)
	CheckStock(ctx context.Context, id int64, required int) (StockCheck, error)
}
