package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/domain"
	"github.com/jhoicas/shopping-api/internal/domain/entity"
	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral por defecto para el listado de stock bajo.
const DefaultLowStockThreshold = 5

// ProductUseCase casos de uso CRUD para productos. La validación de negocio
// vive aquí, antes de tocar el storage, para dar mensajes accionables en vez
// de depender de los NOT NULL del motor.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos ordenados por id, con category_name resuelto.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Create valida, inserta y relee el producto recién creado por su id generado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "es requerido y no puede ser vacío"
	}
	if in.Price == nil {
		fields["price"] = "es requerido"
	} else if in.Price.IsNegative() {
		fields["price"] = "no puede ser negativo"
	}
	if in.StockQuantity == nil {
		fields["stock_quantity"] = "es requerido"
	} else if *in.StockQuantity < 0 {
		fields["stock_quantity"] = "no puede ser negativo"
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	product := &entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         *in.Price,
		StockQuantity: *in.StockQuantity,
		CategoryID:    in.CategoryID,
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(created), nil
}

// Update aplica una actualización parcial. Devuelve false si el producto no
// existe o si el patch viene vacío (no-op, sin escritura).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (bool, error) {
	if err := validatePatch(in); err != nil {
		return false, err
	}
	return uc.repo.UpdatePartial(ctx, id, in.Patch())
}

// validatePatch rechaza null explícito en columnas NOT NULL y valores fuera de
// rango antes de llegar al motor.
func validatePatch(in dto.UpdateProductRequest) error {
	fields := map[string]string{}
	if in.Name.Set {
		if in.Name.Null || in.Name.Value == "" {
			fields["name"] = "no puede ser vacío ni null"
		}
	}
	if in.Price.Set {
		if in.Price.Null {
			fields["price"] = "no puede ser null"
		} else if in.Price.Value.Cmp(decimal.Zero) < 0 {
			fields["price"] = "no puede ser negativo"
		}
	}
	if in.StockQuantity.Set {
		if in.StockQuantity.Null {
			fields["stock_quantity"] = "no puede ser null"
		} else if in.StockQuantity.Value < 0 {
			fields["stock_quantity"] = "no puede ser negativo"
		}
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}

// Delete elimina por id. false si no había fila (idempotente, no es error).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// ListByCategory lista los productos de una categoría ordenados por nombre.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID int64) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// ListLowStock lista productos con stock_quantity < threshold, los más
// agotados primero. threshold <= 0 usa el valor por defecto.
func (uc *ProductUseCase) ListLowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	list, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// AdjustStock aplica un delta atómico al stock. false si el producto no existe.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id int64, delta int) (bool, error) {
	return uc.repo.AdjustStock(ctx, id, delta)
}

// CheckStock verifica disponibilidad con resultado de tres vías.
func (uc *ProductUseCase) CheckStock(ctx context.Context, id int64, required int) (repository.StockCheck, error) {
	if required < 0 {
		return 0, domain.NewValidationError(map[string]string{"required": "no puede ser negativo"})
	}
	return uc.repo.CheckStock(ctx, id, required)
}
