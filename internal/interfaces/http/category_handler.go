package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/application/usecase"
)

// CategoryHandler lectura de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(items))
}
