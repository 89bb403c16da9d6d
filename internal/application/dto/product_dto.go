package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/shopping-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Price y StockQuantity
// son punteros para distinguir "ausente" de cero (cero es válido).
type CreateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	CategoryID    *int64           `json:"category_id"`
}

// UpdateProductRequest entrada de actualización parcial. Cada campo distingue
// ausente / null explícito / valor (ver entity.Field); solo los presentes se
// escriben.
type UpdateProductRequest struct {
	Name          entity.Field[string]          `json:"name,omitzero"`
	Description   entity.Field[string]          `json:"description,omitzero"`
	Price         entity.Field[decimal.Decimal] `json:"price,omitzero"`
	StockQuantity entity.Field[int]             `json:"stock_quantity,omitzero"`
	CategoryID    entity.Field[int64]           `json:"category_id,omitzero"`
}

// Patch convierte la request al patch de dominio.
func (r UpdateProductRequest) Patch() entity.ProductPatch {
	return entity.ProductPatch{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		CategoryID:    r.CategoryID,
	}
}

// AdjustStockRequest entrada para el ajuste atómico de stock.
type AdjustStockRequest struct {
	Delta *int `json:"delta"`
}

// ProductResponse salida de un producto, con el nombre de la categoría
// resuelto por JOIN (omitido si no tiene categoría).
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    *int64          `json:"category_id"`
	CategoryName  *string         `json:"category_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockCheckResponse salida de la consulta de disponibilidad.
type StockCheckResponse struct {
	ProductID  int64  `json:"product_id"`
	Required   int    `json:"required"`
	Sufficient bool   `json:"sufficient"`
	Status     string `json:"status"` // "sufficient" | "insufficient"
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToProductResponse mapea la entidad a la respuesta.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductResponses mapea una lista de entidades.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}
