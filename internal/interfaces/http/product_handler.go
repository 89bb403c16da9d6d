package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/application/usecase"
	"github.com/jhoicas/shopping-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para Product. Cada handler hace
// una sola llamada al caso de uso (create hace insert + relectura adentro) y
// deja que las fallas suban al clasificador global.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// parseID lee un parámetro de ruta como entero positivo.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.FailResponse{Success: false, Message: msg})
}

func productNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.FailResponse{Success: false, Message: "Product not found"})
}

// List godoc
// @Summary      Listar todos los productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(items))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.FailResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Invalid product id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if out == nil {
		return productNotFound(c)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.StatusResponse
// @Failure      409   {object}  dto.StatusResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailResponse{Success: false, Message: "Invalid request body"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Success: true,
		Message: "Product created successfully",
		Data:    out,
	})
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Description  Solo los campos presentes en el body se modifican; un body vacío no escribe nada.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      404   {object}  dto.FailResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Invalid product id")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailResponse{Success: false, Message: "Invalid request body"})
	}
	updated, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	if !updated {
		return productNotFound(c)
	}
	return c.JSON(dto.OKMessage("Product updated successfully"))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.FailResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Invalid product id")
	}
	deleted, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return productNotFound(c)
	}
	return c.JSON(dto.OKMessage("Product deleted successfully"))
}

// ListByCategory godoc
// @Summary      Listar productos por categoría
// @Tags         products
// @Produce      json
// @Param        categoryId  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return invalidID(c, "Invalid category id")
	}
	items, err := h.uc.ListByCategory(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(items))
}

// ListLowStock godoc
// @Summary      Listar productos con stock bajo
// @Tags         products
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de stock"  default(5)
// @Success      200  {object}  dto.DataResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) ListLowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", usecase.DefaultLowStockThreshold)
	if threshold <= 0 {
		threshold = usecase.DefaultLowStockThreshold
	}
	items, err := h.uc.ListLowStock(c.UserContext(), threshold)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{
		Success: true,
		Message: fmt.Sprintf("Products with stock below %d", threshold),
		Data:    items,
	})
}

// AdjustStock godoc
// @Summary      Ajustar stock (delta atómico)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta (puede ser negativo)"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.FailResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Invalid product id")
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil || in.Delta == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailResponse{Success: false, Message: "delta is required"})
	}
	adjusted, err := h.uc.AdjustStock(c.UserContext(), id, *in.Delta)
	if err != nil {
		return err
	}
	if !adjusted {
		return productNotFound(c)
	}
	return c.JSON(dto.OKMessage("Stock adjusted successfully"))
}

// CheckStock godoc
// @Summary      Verificar disponibilidad de stock
// @Tags         products
// @Produce      json
// @Param        id        path   int  true   "ID del producto"
// @Param        required  query  int  false  "Cantidad requerida"  default(1)
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.FailResponse
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) CheckStock(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "Invalid product id")
	}
	required := c.QueryInt("required", 1)
	result, err := h.uc.CheckStock(c.UserContext(), id, required)
	if err != nil {
		return err
	}
	if result == repository.StockProductNotFound {
		return productNotFound(c)
	}
	out := dto.StockCheckResponse{
		ProductID:  id,
		Required:   required,
		Sufficient: result == repository.StockSufficient,
		Status:     "sufficient",
	}
	if result == repository.StockInsufficient {
		out.Status = "insufficient"
	}
	return c.JSON(dto.OK(out))
}
